package analysis

import (
	"maps"
	"math"
	"slices"
	"strings"
	"unicode"
)

// ScoreSimilarity returns the TF-IDF cosine similarity of a and b as a
// percentage rounded to two decimals.
//
// IDF is computed over the two documents only, so terms shared by both are
// weighted down relative to terms unique to one of them. Scores are not
// comparable across calls with different document pairs.
func ScoreSimilarity(a, b string) float64 {
	return round(cosineSimilarity(a, b)*100, 2)
}

// cosineSimilarity returns the raw cosine in [0, 1]. A zero vector on either
// side yields 0. Sums run over the sorted vocabulary so that repeated calls
// give bit-identical results.
func cosineSimilarity(a, b string) float64 {
	docs := [2]map[string]float64{termCounts(a), termCounts(b)}

	df := make(map[string]int)
	for _, doc := range docs {
		for term := range doc {
			df[term]++
		}
	}
	vocabulary := slices.Sorted(maps.Keys(df))

	const n = float64(len(docs))
	var vecs [2][]float64
	for i, doc := range docs {
		vecs[i] = make([]float64, len(vocabulary))
		for j, term := range vocabulary {
			// Smoothed IDF: ln((1+n)/(1+df)) + 1.
			idf := math.Log((1+n)/(1+float64(df[term]))) + 1
			vecs[i][j] = doc[term] * idf
		}
	}

	normA, normB := norm(vecs[0]), norm(vecs[1])
	if normA == 0 || normB == 0 {
		return 0
	}

	var dot float64
	for j := range vocabulary {
		dot += vecs[0][j] * vecs[1][j]
	}

	sim := dot / (normA * normB)
	if math.IsNaN(sim) {
		return 0
	}
	return math.Min(math.Max(sim, 0), 1)
}

func norm(vec []float64) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// termCounts lowercases text, splits it into word tokens of at least two
// characters and counts the ones that are not stop words.
func termCounts(text string) map[string]float64 {
	counts := make(map[string]float64)
	for _, token := range tokenize(strings.ToLower(text)) {
		if len([]rune(token)) < 2 || stopWords[token] {
			continue
		}
		counts[token]++
	}
	return counts
}

// tokenize splits text into maximal runs of letters, digits and underscores.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
