// Package tools exposes the resume scoring operations as MCP tools.
package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/analysis"
	"github.com/spigell/resume-scorer/internal/jobspec"
	"github.com/spigell/resume-scorer/internal/logger"
)

const serverName = "resume-scorer"

// TextInput is the argument of the single-document tools.
type TextInput struct {
	Text string `json:"text" jsonschema:"plain text extracted from a resume"`
}

// SimilarityInput holds the two texts to compare.
type SimilarityInput struct {
	TextA string `json:"text_a" jsonschema:"first text"`
	TextB string `json:"text_b" jsonschema:"second text"`
}

// SimilarityResult is the output of score_similarity.
type SimilarityResult struct {
	Similarity float64 `json:"similarity" jsonschema:"TF-IDF cosine similarity in percent, 0-100"`
}

// MatchInput holds a resume text and the job to score it against.
type MatchInput struct {
	Text string                  `json:"text" jsonschema:"plain text extracted from a resume"`
	Job  analysis.JobDescription `json:"job" jsonschema:"job description with required and preferred skills"`
}

// MatchResult is the output of score_match.
type MatchResult struct {
	JobTitle        string               `json:"jobTitle"`
	Company         string               `json:"company"`
	MatchingResults analysis.MatchReport `json:"matchingResults"`
}

// NewServer returns an MCP server with all scoring tools registered.
func NewServer(version string, analyzer *analysis.Analyzer, log *zap.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	Register(server, analyzer, log)
	return server
}

// Serve runs server over stdin/stdout until the client disconnects or ctx
// is cancelled.
func Serve(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// Register adds extract_features, score_similarity, score_match and
// score_quality to server.
func Register(server *mcp.Server, analyzer *analysis.Analyzer, log *zap.Logger) {
	if analyzer == nil {
		analyzer = analysis.Default()
	}
	log = logger.OrNop(log)
	readOnly := &mcp.ToolAnnotations{ReadOnlyHint: true}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_features",
		Description: "Extract name, email, phone, known skills and a 50-word preview from resume text. Missing fields are returned as Unknown, Not found or [None found].",
		Annotations: readOnly,
	}, func(_ context.Context, _ *mcp.CallToolRequest, input TextInput) (*mcp.CallToolResult, *analysis.ResumeFeatures, error) {
		features := analyzer.ExtractFeatures(input.Text)
		log.Debug("extract_features called", zap.Int("skills", len(features.Skills)))
		return nil, &features, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_similarity",
		Description: "Compute the TF-IDF cosine similarity of two texts as a percentage. IDF is computed over the two texts only.",
		Annotations: readOnly,
	}, func(_ context.Context, _ *mcp.CallToolRequest, input SimilarityInput) (*mcp.CallToolResult, *SimilarityResult, error) {
		return nil, &SimilarityResult{Similarity: analysis.ScoreSimilarity(input.TextA, input.TextB)}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_match",
		Description: "Score resume text against a job description. Returns an overall 0-100 score, the text similarity, matched and missing skills and a Strong/Moderate/Weak recommendation.",
		Annotations: readOnly,
	}, func(_ context.Context, _ *mcp.CallToolRequest, input MatchInput) (*mcp.CallToolResult, *MatchResult, error) {
		job := jobspec.Normalize(input.Job)
		if err := jobspec.Validate(job); err != nil {
			return nil, nil, fmt.Errorf("invalid job: %w", err)
		}

		report := analyzer.ScoreMatch(analyzer.ExtractFeatures(input.Text), job)
		logger.WithCommonFields(log, "", job.Title).Debug("score_match called",
			zap.Float64("overall_score", report.OverallScore),
			zap.String("recommendation", report.Recommendation),
		)

		return nil, &MatchResult{
			JobTitle:        job.Title,
			Company:         CompanyOrDefault(job.Company),
			MatchingResults: report,
		}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_quality",
		Description: "Rate the quality of resume text by keyword density, sentence length and presence of education, experience and contact details. Returns a 0-100 score and suggestions.",
		Annotations: readOnly,
	}, func(_ context.Context, _ *mcp.CallToolRequest, input TextInput) (*mcp.CallToolResult, *analysis.QualityReport, error) {
		report := analyzer.ScoreQuality(analyzer.ExtractFeatures(input.Text))
		return nil, &report, nil
	})
}

// CompanyOrDefault returns company or "N/A" when it is empty.
func CompanyOrDefault(company string) string {
	if company == "" {
		return "N/A"
	}
	return company
}
