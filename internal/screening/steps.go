package screening

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/analysis"
	"github.com/spigell/resume-scorer/internal/candidate"
)

type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

type excludeFileFilter struct {
	toggle
	path string
}

// NewExcludeFile creates a filter that removes candidates listed in the exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, c *candidate.Candidates) (*candidate.Candidates, Step, error) {
	initial := c.Len()
	if f.path == "" {
		return c, Step{Initial: initial, Left: c.Len()}, nil
	}

	excluded, err := candidate.GetExcludedFromFile(f.path)
	if err != nil {
		return c, Step{}, fmt.Errorf("getting excluded candidates from file: %w", err)
	}

	removed := c.Exclude(candidate.CandidatePathField, excluded.Paths())
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding candidates based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_candidates", removed),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(removed), Left: c.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type minimumScoreFilter struct {
	toggle
	minimum float64
}

// NewMinimumScore creates a filter that removes candidates scoring below the configured minimum.
func NewMinimumScore() Filter {
	return &minimumScoreFilter{}
}

func (f *minimumScoreFilter) Name() string { return "minimum_score" }

func (f *minimumScoreFilter) Validate(cfg *Config) error {
	f.minimum = 0
	if cfg == nil {
		return nil
	}
	if cfg.MinimumScore < 0 || cfg.MinimumScore > 100 {
		return fmt.Errorf("minimum score must be within [0, 100], got %.2f", cfg.MinimumScore)
	}
	f.minimum = cfg.MinimumScore
	return nil
}

func (f *minimumScoreFilter) Apply(_ context.Context, deps Deps, c *candidate.Candidates) (*candidate.Candidates, Step, error) {
	initial := c.Len()
	if f.minimum == 0 {
		return c, Step{Initial: initial, Left: c.Len()}, nil
	}

	removed := c.Keep(func(cand *candidate.Candidate) bool {
		return cand.Match.OverallScore >= f.minimum
	})
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding candidates below minimum score",
			zap.Float64("minimum_score", f.minimum),
			zap.Strings("excluded_candidates", removed),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(removed), Left: c.Len()}, nil
}

func (f *minimumScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"minimum_score": fmt.Sprintf("%.2f", f.minimum)},
	}
}

type recommendationFilter struct {
	toggle
	allowed []string
}

// NewRecommendation creates a filter that keeps only the configured recommendations.
func NewRecommendation() Filter {
	return &recommendationFilter{}
}

func (f *recommendationFilter) Name() string { return "recommendation" }

func (f *recommendationFilter) Validate(cfg *Config) error {
	f.allowed = nil
	if cfg == nil {
		return nil
	}

	for _, rec := range cfg.Recommendations {
		canonical, ok := canonicalRecommendation(rec)
		if !ok {
			return fmt.Errorf("unknown recommendation %q", rec)
		}
		f.allowed = append(f.allowed, canonical)
	}
	return nil
}

func (f *recommendationFilter) Apply(_ context.Context, deps Deps, c *candidate.Candidates) (*candidate.Candidates, Step, error) {
	initial := c.Len()
	if len(f.allowed) == 0 {
		return c, Step{Initial: initial, Left: c.Len()}, nil
	}

	allowed := make(map[string]bool, len(f.allowed))
	for _, rec := range f.allowed {
		allowed[rec] = true
	}

	removed := c.Keep(func(cand *candidate.Candidate) bool {
		return allowed[cand.GetStringField(candidate.CandidateRecommendationField)]
	})
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding candidates by recommendation",
			zap.Strings("allowed_recommendations", f.allowed),
			zap.Strings("excluded_candidates", removed),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(removed), Left: c.Len()}, nil
}

func (f *recommendationFilter) Status() Status {
	details := map[string]string{}
	if len(f.allowed) > 0 {
		details["recommendations"] = strings.Join(f.allowed, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type requiredSkillsFilter struct {
	toggle
	requireAll bool
}

// NewRequiredSkills creates a filter that removes candidates missing any required job skill.
func NewRequiredSkills() Filter {
	return &requiredSkillsFilter{}
}

func (f *requiredSkillsFilter) Name() string { return "required_skills" }

func (f *requiredSkillsFilter) Validate(cfg *Config) error {
	f.requireAll = cfg != nil && cfg.RequireAllRequired
	return nil
}

func (f *requiredSkillsFilter) Apply(_ context.Context, deps Deps, c *candidate.Candidates) (*candidate.Candidates, Step, error) {
	initial := c.Len()
	if !f.requireAll {
		return c, Step{Initial: initial, Left: c.Len()}, nil
	}

	removed := c.Keep(func(cand *candidate.Candidate) bool {
		return len(cand.Match.SkillsMatch.MissingRequired) == 0
	})
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding candidates missing required skills",
			zap.Strings("excluded_candidates", removed),
			zap.Int("candidates_left", c.Len()),
		)
	}

	return c, Step{Initial: initial, Dropped: len(removed), Left: c.Len()}, nil
}

func (f *requiredSkillsFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"require_all_required": strconv.FormatBool(f.requireAll)},
	}
}

func canonicalRecommendation(rec string) (string, bool) {
	for _, known := range []string{analysis.StrongMatch, analysis.ModerateMatch, analysis.WeakMatch} {
		if strings.EqualFold(strings.TrimSpace(rec), known) {
			return known, true
		}
	}
	return "", false
}
