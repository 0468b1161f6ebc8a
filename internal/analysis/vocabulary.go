package analysis

import "strings"

// DefaultSkills is the skill vocabulary matched against resume text.
var DefaultSkills = []string{
	"python", "java", "c++", "sql", "html", "css", "javascript",
	"react", "node", "machine learning", "data analysis",
	"flask", "django", "tensorflow", "pytorch", "communication",
	"leadership", "problem solving",
}

// DefaultKeywords are the domain keywords counted by the quality scorer.
var DefaultKeywords = []string{
	"python", "machine learning", "data", "project", "api", "flask", "sql",
}

// Vocabulary holds the static term lists used by an Analyzer.
type Vocabulary struct {
	Skills   []string
	Keywords []string
}

// Analyzer runs the extraction and scoring operations with a fixed vocabulary.
// The zero value is not usable; use New or Default.
type Analyzer struct {
	skills   []string
	keywords []string
}

var defaultAnalyzer = New(Vocabulary{})

// New returns an Analyzer for the given vocabulary. Empty lists fall back
// to DefaultSkills and DefaultKeywords. Terms are lowercased and
// de-duplicated, keeping their first position.
func New(vocab Vocabulary) *Analyzer {
	skills := normalizeTerms(vocab.Skills)
	if len(skills) == 0 {
		skills = normalizeTerms(DefaultSkills)
	}

	keywords := normalizeTerms(vocab.Keywords)
	if len(keywords) == 0 {
		keywords = normalizeTerms(DefaultKeywords)
	}

	return &Analyzer{skills: skills, keywords: keywords}
}

// Default returns the Analyzer backed by the built-in vocabulary.
func Default() *Analyzer {
	return defaultAnalyzer
}

// Skills returns a copy of the skill vocabulary.
func (a *Analyzer) Skills() []string {
	return append([]string(nil), a.skills...)
}

// Keywords returns a copy of the quality keyword list.
func (a *Analyzer) Keywords() []string {
	return append([]string(nil), a.keywords...)
}

func normalizeTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	result := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		result = append(result, term)
	}
	return result
}
