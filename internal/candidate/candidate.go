// Package candidate holds scored resumes and the reports built from them.
package candidate

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spigell/resume-scorer/internal/analysis"
)

const (
	CandidatePathField           = "Path"
	CandidateRecommendationField = "Recommendation"
)

type Candidates struct {
	Items []*Candidate
}

// Candidate is a resume file scored against one job.
type Candidate struct {
	ID       string                   `json:"id"`
	Path     string                   `json:"path"`
	FileName string                   `json:"file_name"`
	Features analysis.ResumeFeatures  `json:"features"`
	Match    analysis.MatchReport     `json:"matchingResults"`
	Quality  analysis.QualityReport   `json:"analysis"`
	Job      *analysis.JobDescription `json:"-"`
}

func (c *Candidate) GetStringField(name string) string {
	switch name {
	case CandidatePathField:
		return c.Path
	case CandidateRecommendationField:
		return c.Match.Recommendation
	default:
		return ""
	}
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

// Sort orders candidates by overall score, best first. Ties are broken by path.
func (c *Candidates) Sort() {
	sort.SliceStable(c.Items, func(i, j int) bool {
		a, b := c.Items[i], c.Items[j]
		if a.Match.OverallScore != b.Match.OverallScore {
			return a.Match.OverallScore > b.Match.OverallScore
		}
		return a.Path < b.Path
	})
}

// Exclude removes candidates whose field matches one of targets and returns
// the removed paths. Order of the remaining candidates is preserved.
func (c *Candidates) Exclude(name string, targets []string) []string {
	drop := make(map[string]bool, len(targets))
	for _, target := range targets {
		drop[target] = true
	}

	return c.Keep(func(candidate *Candidate) bool {
		return !drop[candidate.GetStringField(name)]
	})
}

// Keep retains the candidates for which keep returns true and returns the
// paths of the removed ones.
func (c *Candidates) Keep(keep func(*Candidate) bool) []string {
	var excluded []string
	kept := c.Items[:0]
	for _, candidate := range c.Items {
		if keep(candidate) {
			kept = append(kept, candidate)
			continue
		}
		excluded = append(excluded, candidate.Path)
	}
	clear(c.Items[len(kept):])
	c.Items = kept
	return excluded
}

// ReportByRecommendation groups a short summary of each candidate by its
// match recommendation.
func (c *Candidates) ReportByRecommendation() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, candidate := range c.Items {
		key := candidate.Match.Recommendation
		report[key] = append(report[key], map[string]string{
			"name":              candidate.Features.Name,
			"email":             candidate.Features.Email,
			"file":              candidate.Path,
			"overall_score":     fmt.Sprintf("%.2f", candidate.Match.OverallScore),
			"similarity":        fmt.Sprintf("%.2f", candidate.Match.Similarity),
			"quality_score":     fmt.Sprintf("%.2f", candidate.Quality.QualityScore),
			"missing_required":  fmt.Sprint(candidate.Match.SkillsMatch.MissingRequired),
			"missing_preferred": fmt.Sprint(candidate.Match.SkillsMatch.MissingPreferred),
		})
	}
	return report
}

func (c *Candidates) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "candidates_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	return file.Name(), nil
}
