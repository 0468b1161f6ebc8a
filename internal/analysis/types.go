// Package analysis turns raw resume text into structured features and scores
// them against job descriptions and a set of resume quality heuristics.
//
// All functions are pure: they do no I/O, keep no shared state and never
// return errors. Degenerate input yields sentinel values and zero scores.
package analysis

const (
	UnknownName   = "Unknown"
	NotFound      = "Not found"
	NoSkillsFound = "None found"
)

// Recommendation categories for a match report.
const (
	StrongMatch   = "Strong Match"
	ModerateMatch = "Moderate Match"
	WeakMatch     = "Weak Match"
)

// ResumeFeatures is the structured record extracted from resume text.
type ResumeFeatures struct {
	Name           string   `json:"name" jsonschema:"candidate name or Unknown"`
	Email          string   `json:"email" jsonschema:"first email found or Not found"`
	Phone          string   `json:"phone" jsonschema:"first phone number found or Not found"`
	Skills         []string `json:"skills" jsonschema:"matched vocabulary skills, sorted; [None found] when empty"`
	SummaryPreview string   `json:"summary_preview" jsonschema:"first 50 whitespace-delimited tokens"`
}

// JobSkills lists the skills a job posting asks for.
type JobSkills struct {
	Required  []string `json:"required,omitempty" mapstructure:"required" validate:"dive,required"`
	Preferred []string `json:"preferred,omitempty" mapstructure:"preferred" validate:"dive,required"`
}

// JobDescription is supplied by the caller.
type JobDescription struct {
	Title       string    `json:"title,omitempty" mapstructure:"title" validate:"required_without=Description"`
	Company     string    `json:"company,omitempty" mapstructure:"company"`
	Description string    `json:"description,omitempty" mapstructure:"description" validate:"required_without=Title"`
	Skills      JobSkills `json:"skills,omitempty" mapstructure:"skills"`
}

// SkillsMatch explains which job skills were found in the resume.
type SkillsMatch struct {
	RequiredSkillsMatched  []string `json:"requiredSkillsMatched"`
	PreferredSkillsMatched []string `json:"preferredSkillsMatched"`
	MissingRequired        []string `json:"missingRequired"`
	MissingPreferred       []string `json:"missingPreferred"`
}

// MatchReport is the result of scoring resume features against a job.
type MatchReport struct {
	OverallScore   float64     `json:"overallScore"`
	Similarity     float64     `json:"similarity"`
	SkillsMatch    SkillsMatch `json:"skillsMatch"`
	Recommendation string      `json:"recommendation"`
}

// QualityReport is the result of the resume quality heuristics.
type QualityReport struct {
	QualityScore      float64        `json:"qualityScore"`
	KeywordDensity    float64        `json:"keywordDensity"`
	AvgSentenceLength float64        `json:"avgSentenceLength"`
	Completeness      float64        `json:"completeness"`
	KeywordsUsed      map[string]int `json:"keywordsUsed"`
	Suggestions       []string       `json:"suggestions"`
}
