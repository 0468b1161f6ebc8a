package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/analysis"
	"github.com/spigell/resume-scorer/internal/anonymize"
	"github.com/spigell/resume-scorer/internal/textsource"
)

type extractOutput struct {
	*textsource.Document
	Features analysis.ResumeFeatures `json:"features"`
}

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract name, contacts and skills from a resume file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger, config := setup()

		doc, err := newExtractor(config).Extract(context.Background(), args[0])
		if err != nil {
			logger.Fatal("extracting text", zap.Error(err))
		}

		if anon, _ := cmd.Flags().GetBool("anonymize"); anon {
			doc.Text = anonymize.Text(doc.Text)
			doc.Preview = anonymize.Text(doc.Preview)
		}

		out := extractOutput{
			Document: doc,
			Features: newAnalyzer(config, logger).ExtractFeatures(doc.Text),
		}

		if err := printJSON(cmd.OutOrStdout(), out); err != nil {
			logger.Fatal("printing result", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().BoolP("anonymize", "a", false, "redact emails, phones and profile links before extraction")
}
