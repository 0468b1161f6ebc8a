package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/analysis"
	"github.com/spigell/resume-scorer/internal/logger"
)

type qualityOutput struct {
	ResumeID string                 `json:"resumeId"`
	FileName string                 `json:"fileName"`
	Analysis analysis.QualityReport `json:"analysis"`
}

var qualityCmd = &cobra.Command{
	Use:   "quality <file>",
	Short: "Rate the quality of a resume and suggest improvements",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log, config := setup()

		doc, err := newExtractor(config).Extract(context.Background(), args[0])
		if err != nil {
			log.Fatal("extracting text", zap.Error(err))
		}

		analyzer := newAnalyzer(config, log)
		report := analyzer.ScoreQuality(analyzer.ExtractFeatures(doc.Text))

		logger.WithCommonFields(log, doc.Path, "").Info("scored resume quality",
			zap.Float64("quality_score", report.QualityScore),
			zap.Int("suggestions", len(report.Suggestions)),
		)

		out := qualityOutput{ResumeID: doc.ID, FileName: doc.FileName, Analysis: report}
		if err := printJSON(cmd.OutOrStdout(), out); err != nil {
			log.Fatal("printing result", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(qualityCmd)
}
