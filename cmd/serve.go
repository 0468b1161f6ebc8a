package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring tools over MCP on stdin/stdout",
	Run: func(_ *cobra.Command, _ []string) {
		logger, config := setup()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		server := tools.NewServer(version, newAnalyzer(config, logger), logger)

		logger.Info("starting the mcp server", zap.String("version", version), zap.String("transport", "stdio"))

		if err := tools.Serve(ctx, server); err != nil && ctx.Err() == nil {
			logger.Fatal("serving mcp", zap.Error(err))
		}

		logger.Info("mcp server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
