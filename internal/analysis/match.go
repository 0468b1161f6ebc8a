package analysis

import (
	"sort"
	"strings"
)

const (
	similarityWeight = 0.6
	skillWeight      = 0.4

	requiredWeight  = 0.7
	preferredWeight = 0.3

	strongThreshold   = 75
	moderateThreshold = 50
)

// ScoreMatch scores features against job with the default vocabulary.
func ScoreMatch(features ResumeFeatures, job JobDescription) MatchReport {
	return defaultAnalyzer.ScoreMatch(features, job)
}

// ScoreMatch combines the lexical similarity of the resume and the job with
// the share of required and preferred job skills found in the resume.
//
// Skills are compared as exact strings, so "Python" in a job does not match
// the extracted "python". Job skills listed twice count once. Matched and
// missing lists are sorted.
func (a *Analyzer) ScoreMatch(features ResumeFeatures, job JobDescription) MatchReport {
	resumeText := strings.ToLower(features.SummaryPreview + " " + strings.Join(features.Skills, " "))
	jobText := strings.ToLower(strings.Join([]string{
		job.Title,
		job.Description,
		strings.Join(job.Skills.Required, " "),
		strings.Join(job.Skills.Preferred, " "),
	}, " "))

	similarity := cosineSimilarity(resumeText, jobText)

	have := make(map[string]bool, len(features.Skills))
	for _, skill := range features.Skills {
		have[skill] = true
	}

	matchedRequired, missingRequired := splitSkills(job.Skills.Required, have)
	matchedPreferred, missingPreferred := splitSkills(job.Skills.Preferred, have)

	skillScore := requiredWeight*ratio(len(matchedRequired), len(matchedRequired)+len(missingRequired)) +
		preferredWeight*ratio(len(matchedPreferred), len(matchedPreferred)+len(missingPreferred))

	overall := round((similarity*similarityWeight+skillScore*skillWeight)*100, 2)

	return MatchReport{
		OverallScore: overall,
		Similarity:   round(similarity*100, 2),
		SkillsMatch: SkillsMatch{
			RequiredSkillsMatched:  matchedRequired,
			PreferredSkillsMatched: matchedPreferred,
			MissingRequired:        missingRequired,
			MissingPreferred:       missingPreferred,
		},
		Recommendation: Recommend(overall),
	}
}

// Recommend maps an overall score to a recommendation. Both thresholds are
// exclusive: 75 is a moderate match and 50 is a weak one.
func Recommend(score float64) string {
	switch {
	case score > strongThreshold:
		return StrongMatch
	case score > moderateThreshold:
		return ModerateMatch
	default:
		return WeakMatch
	}
}

// splitSkills de-duplicates wanted and partitions it into the skills present
// in have and the ones missing from it.
func splitSkills(wanted []string, have map[string]bool) (matched, missing []string) {
	matched, missing = make([]string, 0), make([]string, 0)
	seen := make(map[string]bool, len(wanted))

	for _, skill := range wanted {
		if seen[skill] {
			continue
		}
		seen[skill] = true

		if have[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

// ratio returns n/total with an empty total counted as one.
func ratio(n, total int) float64 {
	if total == 0 {
		total = 1
	}
	return float64(n) / float64(total)
}
