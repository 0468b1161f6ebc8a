package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-scorer/internal/analysis"
)

func TestNewAnalyzerLogsVocabulary(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)

	config := &Config{Vocabulary: &VocabularyConfig{
		Skills:   []string{" Go ", "go", "Kubernetes"},
		Keywords: nil,
	}}
	a := newAnalyzer(config, zap.New(core))

	entries := observed.FilterMessage("using vocabulary").All()
	require.Len(t, entries, 1)

	ctx := entries[0].ContextMap()
	assert.Equal(t, []interface{}{"go", "kubernetes"}, ctx["skills"])
	assert.Len(t, ctx["keywords"], len(analysis.DefaultKeywords))
	assert.Equal(t, []string{"go", "kubernetes"}, a.ExtractSkills("Go services on Kubernetes"))
}
