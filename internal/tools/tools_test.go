package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/resume-scorer/internal/analysis"
)

func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := NewServer("test", nil, nil)
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func call[T any](t *testing.T, session *mcp.ClientSession, name string, args any) (T, *mcp.CallToolResult) {
	t.Helper()

	var out T
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	if result.IsError {
		return out, result
	}

	data, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &out))
	return out, result
}

func TestListTools(t *testing.T) {
	session := connect(t)

	list, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(list.Tools))
	for _, tool := range list.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"extract_features", "score_similarity", "score_match", "score_quality"}, names)
}

func TestExtractFeaturesTool(t *testing.T) {
	session := connect(t)

	features, _ := call[analysis.ResumeFeatures](t, session, "extract_features", map[string]any{
		"text": "John Smith\njohn@x.com\n+1 555-123-4567\nPython, SQL, Leadership",
	})

	assert.Equal(t, "John Smith", features.Name)
	assert.Equal(t, "john@x.com", features.Email)
	assert.Equal(t, []string{"leadership", "python", "sql"}, features.Skills)
}

func TestScoreSimilarityTool(t *testing.T) {
	session := connect(t)

	result, _ := call[SimilarityResult](t, session, "score_similarity", map[string]any{
		"text_a": "python",
		"text_b": "python sql",
	})
	assert.Equal(t, 57.97, result.Similarity)
}

func TestScoreMatchTool(t *testing.T) {
	session := connect(t)

	result, _ := call[MatchResult](t, session, "score_match", map[string]any{
		"text": "Jane Doe\nPython developer",
		"job": map[string]any{
			"title":  "Backend Engineer",
			"skills": map[string]any{"required": []string{"python", "sql"}},
		},
	})

	assert.Equal(t, "Backend Engineer", result.JobTitle)
	assert.Equal(t, "N/A", result.Company)
	assert.Equal(t, []string{"python"}, result.MatchingResults.SkillsMatch.RequiredSkillsMatched)
	assert.Equal(t, []string{"sql"}, result.MatchingResults.SkillsMatch.MissingRequired)

	_, errResult := call[MatchResult](t, session, "score_match", map[string]any{
		"text": "Jane Doe",
		"job":  map[string]any{"company": "Acme"},
	})
	assert.True(t, errResult.IsError)
}

func TestScoreQualityTool(t *testing.T) {
	session := connect(t)

	report, _ := call[analysis.QualityReport](t, session, "score_quality", map[string]any{"text": ""})
	assert.Equal(t, 16.67, report.QualityScore)
	assert.NotEmpty(t, report.Suggestions)
}
