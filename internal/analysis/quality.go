package analysis

import (
	"math"
	"regexp"
	"strings"
)

const (
	maxAvgSentenceLength = 25
	minKeywordDensity    = 0.01

	// Credit given to a completeness component when its cue is absent.
	educationAbsentCredit  = 0.3
	experienceAbsentCredit = 0.4
	contactAbsentCredit    = 0.3

	densityWeight      = 200
	completenessWeight = 70
	qualityScale       = 140
	maxQualityScore    = 100
)

// Quality suggestions in the order they are reported.
const (
	SuggestShorterSentences = "Use shorter sentences for better readability."
	SuggestMoreKeywords     = "Add more role-specific technical keywords."
	SuggestEducation        = "Include an Education section with degree and institution."
	SuggestExperience       = "Add professional or project experience to strengthen the profile."
	SuggestContact          = "Include contact details like email, phone, or LinkedIn."
	SuggestNothing          = "Looks strong overall!"
)

var (
	wordPattern       = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentenceEndings   = regexp.MustCompile(`[.!?]`)
	educationPattern  = regexp.MustCompile(`education|bachelor|master|degree`)
	experiencePattern = regexp.MustCompile(`experience|internship|project`)
	contactPattern    = regexp.MustCompile(`email|phone|linkedin`)
)

// ScoreQuality scores features with the default keyword list.
func ScoreQuality(features ResumeFeatures) QualityReport {
	return defaultAnalyzer.ScoreQuality(features)
}

// ScoreQuality rates the summary preview of a resume by keyword density,
// sentence length and the presence of education, experience and contact cues.
func (a *Analyzer) ScoreQuality(features ResumeFeatures) QualityReport {
	text := strings.ToLower(features.SummaryPreview)

	words := len(wordPattern.FindAllStringIndex(text, -1))
	sentences := max(len(sentenceEndings.FindAllStringIndex(text, -1)), 1)
	avgSentenceLength := round(float64(words)/float64(sentences), 2)

	keywords := make(map[string]int, len(a.keywords))
	hits := 0
	for _, keyword := range a.keywords {
		n := strings.Count(text, keyword)
		keywords[keyword] = n
		hits += n
	}
	density := float64(hits) / float64(max(words, 1))

	hasEducation := educationPattern.MatchString(text)
	hasExperience := experiencePattern.MatchString(text)
	hasContact := contactPattern.MatchString(text)

	completeness := (credit(hasEducation, educationAbsentCredit) +
		credit(hasExperience, experienceAbsentCredit) +
		credit(hasContact, contactAbsentCredit)) / 3

	score := round((density*densityWeight+completeness*completenessWeight)*100/qualityScale, 2)
	score = math.Min(score, maxQualityScore)

	suggestions := make([]string, 0)
	if avgSentenceLength > maxAvgSentenceLength {
		suggestions = append(suggestions, SuggestShorterSentences)
	}
	if density < minKeywordDensity {
		suggestions = append(suggestions, SuggestMoreKeywords)
	}
	if !hasEducation {
		suggestions = append(suggestions, SuggestEducation)
	}
	if !hasExperience {
		suggestions = append(suggestions, SuggestExperience)
	}
	if !hasContact {
		suggestions = append(suggestions, SuggestContact)
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, SuggestNothing)
	}

	return QualityReport{
		QualityScore:      score,
		KeywordDensity:    round(density, 3),
		AvgSentenceLength: avgSentenceLength,
		Completeness:      round(completeness*100, 2),
		KeywordsUsed:      keywords,
		Suggestions:       suggestions,
	}
}

func credit(present bool, absent float64) float64 {
	if present {
		return 1
	}
	return absent
}
