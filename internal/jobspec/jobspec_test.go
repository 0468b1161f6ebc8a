package jobspec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/resume-scorer/internal/analysis"
)

func writeJobFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSingleYAML(t *testing.T) {
	t.Parallel()

	path := writeJobFile(t, "job.yaml", `
title: " Data Scientist "
company: Acme
description: Build machine learning models in Python
skills:
  required: [python, " sql ", ""]
  preferred:
    - tensorflow
`)

	jobs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	assert.Equal(t, analysis.JobDescription{
		Title:       "Data Scientist",
		Company:     "Acme",
		Description: "Build machine learning models in Python",
		Skills: analysis.JobSkills{
			Required:  []string{"python", "sql"},
			Preferred: []string{"tensorflow"},
		},
	}, jobs[0])
}

func TestLoadJobsListJSON(t *testing.T) {
	t.Parallel()

	path := writeJobFile(t, "jobs.json", `{
  "jobs": [
    {"title": "Backend Engineer", "skills": {"required": ["java"]}},
    {"description": "Frontend work with React"}
  ]
}`)

	jobs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, []string{"Backend Engineer", ""}, Titles(jobs))
	assert.Equal(t, []string{"java"}, jobs[0].Skills.Required)
	assert.Nil(t, jobs[1].Skills.Required)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("schema violation", func(t *testing.T) {
		t.Parallel()
		path := writeJobFile(t, "job.yaml", "title: Dev\nskills:\n  required: python\n")
		_, err := Load(path)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve), "got %v", err)
		assert.NotEmpty(t, ve.Errors)
	})

	t.Run("missing title and description", func(t *testing.T) {
		t.Parallel()
		path := writeJobFile(t, "job.yaml", "company: Acme\n")
		_, err := Load(path)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve), "got %v", err)
		assert.Len(t, ve.Errors, 2)
	})

	t.Run("empty jobs list", func(t *testing.T) {
		t.Parallel()
		path := writeJobFile(t, "jobs.yaml", "jobs: []\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		path := writeJobFile(t, "job.yaml", "")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrNoJobs)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		assert.Error(t, err)
	})
}

func TestSelect(t *testing.T) {
	t.Parallel()

	jobs := []analysis.JobDescription{{Title: "Backend Engineer"}, {Title: "Data Scientist"}}

	job, err := Select(jobs, " data scientist")
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", job.Title)

	_, err = Select(jobs, "Designer")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(analysis.JobDescription{Title: "Dev"}))
	assert.NoError(t, Validate(analysis.JobDescription{Description: "Write code"}))
	assert.Error(t, Validate(analysis.JobDescription{Company: "Acme"}))
}
