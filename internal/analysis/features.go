package analysis

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	nameScanLines = 5
	previewTokens = 50
)

var (
	emailPattern = regexp.MustCompile(`[\p{L}\p{N}_.-]+@[\p{L}\p{N}_.-]+`)
	phonePattern = regexp.MustCompile(`\+?\p{Nd}[\p{Nd}\-\s\p{Z}\v]{8,}\p{Nd}`)
)

// ExtractFeatures extracts features from text with the default vocabulary.
func ExtractFeatures(text string) ResumeFeatures {
	return defaultAnalyzer.ExtractFeatures(text)
}

// ExtractFeatures pulls name, email, phone and skills out of raw resume text.
// Fields that cannot be found are filled with sentinels.
func (a *Analyzer) ExtractFeatures(text string) ResumeFeatures {
	return ResumeFeatures{
		Name:           ExtractName(text),
		Email:          ExtractEmail(text),
		Phone:          ExtractPhone(text),
		Skills:         a.ExtractSkills(text),
		SummaryPreview: SummaryPreview(text),
	}
}

// ExtractName returns the first of the leading five lines that has two or
// three tokens and starts with an uppercase letter.
func ExtractName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		tokens := len(strings.Fields(line))
		if tokens != 2 && tokens != 3 {
			continue
		}
		first, _ := utf8.DecodeRuneInString(line)
		if unicode.IsUpper(first) {
			return strings.TrimSpace(line)
		}
	}

	return UnknownName
}

// ExtractEmail returns the first email-like token. The address is not validated.
func ExtractEmail(text string) string {
	if match := emailPattern.FindString(text); match != "" {
		return match
	}
	return NotFound
}

// ExtractPhone returns the first run of at least ten digits, dashes and
// spaces that starts and ends with a digit. Long numeric sequences such
// as IDs match as well.
func ExtractPhone(text string) string {
	if match := phonePattern.FindString(text); match != "" {
		return match
	}
	return NotFound
}

// ExtractSkills matches text against the default skill vocabulary.
func ExtractSkills(text string) []string {
	return defaultAnalyzer.ExtractSkills(text)
}

// ExtractSkills returns the sorted vocabulary terms contained in text,
// ignoring case, or the NoSkillsFound sentinel.
func (a *Analyzer) ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	found := make([]string, 0)
	for _, skill := range a.skills {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}

	if len(found) == 0 {
		return []string{NoSkillsFound}
	}

	sort.Strings(found)
	return found
}

// SummaryPreview joins the first 50 whitespace-separated tokens of text.
func SummaryPreview(text string) string {
	tokens := strings.Fields(text)
	if len(tokens) > previewTokens {
		tokens = tokens[:previewTokens]
	}
	return strings.Join(tokens, " ")
}
