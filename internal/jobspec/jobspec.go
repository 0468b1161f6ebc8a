// Package jobspec loads job descriptions from YAML or JSON files.
//
// A file holds either a single job or a list under the "jobs" key:
//
//	title: Data Scientist
//	description: Build models in Python
//	skills:
//	  required: [python, sql]
//	  preferred: [tensorflow]
package jobspec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/xeipuuv/gojsonschema"

	"github.com/spigell/resume-scorer/internal/analysis"
)

const jobsKey = "jobs"

var (
	ErrNoJobs      = errors.New("no jobs defined")
	ErrJobNotFound = errors.New("job not found")
)

var validate = validator.New()

// ValidationError lists every problem found in a job file.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single problem at a field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Load reads a job file. The format is picked from the file extension.
func Load(path string) ([]analysis.JobDescription, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading job file %s: %w", path, err)
	}

	jobs, err := FromMap(v.AllSettings())
	if err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}

	return jobs, nil
}

// FromMap checks raw settings against the job schema, decodes and validates
// them.
func FromMap(settings map[string]any) ([]analysis.JobDescription, error) {
	if len(settings) == 0 {
		return nil, ErrNoJobs
	}

	if err := checkSchema(settings); err != nil {
		return nil, err
	}

	var raw any
	if list, ok := settings[jobsKey]; ok {
		raw = list
	} else {
		raw = []any{settings}
	}

	var jobs []analysis.JobDescription
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &jobs,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding jobs: %w", err)
	}

	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}

	for i := range jobs {
		jobs[i] = Normalize(jobs[i])
		if err := Validate(jobs[i]); err != nil {
			return nil, fmt.Errorf("job #%d: %w", i+1, err)
		}
	}

	return jobs, nil
}

// Normalize trims text fields and drops blank skill entries.
func Normalize(job analysis.JobDescription) analysis.JobDescription {
	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	job.Description = strings.TrimSpace(job.Description)
	job.Skills.Required = trimSkills(job.Skills.Required)
	job.Skills.Preferred = trimSkills(job.Skills.Preferred)
	return job
}

// Validate checks that a job has a title or a description.
func Validate(job analysis.JobDescription) error {
	err := validate.Struct(job)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed on the %q rule", fe.Tag()),
		})
	}
	return ve
}

// Select returns the job with the given title, ignoring case.
func Select(jobs []analysis.JobDescription, title string) (analysis.JobDescription, error) {
	for _, job := range jobs {
		if strings.EqualFold(job.Title, strings.TrimSpace(title)) {
			return job, nil
		}
	}
	return analysis.JobDescription{}, fmt.Errorf("%w: %q", ErrJobNotFound, title)
}

// Titles returns the job titles in file order.
func Titles(jobs []analysis.JobDescription) []string {
	titles := make([]string, 0, len(jobs))
	for _, job := range jobs {
		titles = append(titles, job.Title)
	}
	return titles
}

func checkSchema(settings map[string]any) error {
	result, err := schema.Validate(gojsonschema.NewGoLoader(settings))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}

func trimSkills(skills []string) []string {
	if skills == nil {
		return nil
	}
	result := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill = strings.TrimSpace(skill); skill != "" {
			result = append(result, skill)
		}
	}
	return result
}
