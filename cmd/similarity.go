package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/analysis"
	"github.com/spigell/resume-scorer/internal/tools"
)

var similarityCmd = &cobra.Command{
	Use:   "similarity <fileA> <fileB>",
	Short: "Print the TF-IDF cosine similarity of two documents",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		logger, config := setup()
		extractor := newExtractor(config)

		texts := make([]string, 0, len(args))
		for _, path := range args {
			doc, err := extractor.Extract(context.Background(), path)
			if err != nil {
				logger.Fatal("extracting text", zap.Error(err))
			}
			texts = append(texts, doc.Text)
		}

		result := tools.SimilarityResult{Similarity: analysis.ScoreSimilarity(texts[0], texts[1])}
		if err := printJSON(cmd.OutOrStdout(), result); err != nil {
			logger.Fatal("printing result", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(similarityCmd)
}
