package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/candidate"
	"github.com/spigell/resume-scorer/internal/screening"
)

const (
	PromptPrint                  = "Print candidates"
	PromptReportByRecommendation = "Report by recommendation"
	PromptCandidatesToFile       = "Dump candidates to file"
	PromptAppendToExcludeFile    = "Append all candidates to exclude file"
	PromptFilters                = "Show filters"
	PromptExit                   = "Exit"
)

var errExit = errors.New("exit requested")

var screenCmd = &cobra.Command{
	Use:   "screen <files or directories...>",
	Short: "Score a batch of resumes against a job and screen them",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		screen(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	addJobFlags(screenCmd)
	screenCmd.Flags().BoolP("yes", "y", false, "print the screened candidates without asking what to do")
	screenCmd.Flags().Float64("minimum-score", 0, "drop candidates with an overall score below this value")
	screenCmd.Flags().StringSlice("recommendation", nil, "keep only these recommendations")
	screenCmd.Flags().Bool("require-all-required", false, "drop candidates missing any required skill")
	screenCmd.Flags().StringP("exclude-file", "e", "", "special file with candidates to exclude. Default is unset.")
	screenCmd.Flags().StringSlice("disable-filter", nil, "names of screening filters to disable")
	screenCmd.Flags().Int("concurrency", 0, "number of documents processed at once")

	viper.BindPFlag("screening.minimum-score", screenCmd.Flags().Lookup("minimum-score"))
	viper.BindPFlag("screening.recommendations", screenCmd.Flags().Lookup("recommendation"))
	viper.BindPFlag("screening.require-all-required", screenCmd.Flags().Lookup("require-all-required"))
	viper.BindPFlag("screening.exclude-file", screenCmd.Flags().Lookup("exclude-file"))
}

func screen(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, config := setup()

	logger.Info("starting the screening", zap.String("version", version))

	jobs, err := selectJobs(cmd)
	if err != nil {
		logger.Fatal("selecting a job", zap.Error(err))
	}
	job := jobs[0]

	files, err := candidate.CollectFiles(args)
	if err != nil {
		logger.Fatal("collecting files", zap.Error(err))
	}

	if len(files) == 0 {
		logger.Info("exiting", zap.String("reason", "no supported documents found"))
		return
	}

	concurrency := config.Batch.Concurrency
	if flagValue, _ := cmd.Flags().GetInt("concurrency"); flagValue > 0 {
		concurrency = flagValue
	}

	candidates, err := candidate.Evaluate(ctx, newExtractor(config), newAnalyzer(config, logger), job, files, concurrency, logger)
	if err != nil {
		logger.Fatal("evaluating candidates", zap.Error(err))
	}

	steps := screening.Default()
	disabled, _ := cmd.Flags().GetStringSlice("disable-filter")
	for _, name := range disabled {
		screening.DisableByName(steps, name, "disabled by flag")
	}

	candidates, err = screening.Run(ctx, config.Screening, screening.Deps{Logger: logger}, steps, candidates)
	if err != nil {
		logger.Fatal("screening failed", zap.Error(err))
	}
	candidates.Sort()

	if candidates.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates left after filters"))
		return
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		if err := printJSON(cmd.OutOrStdout(), candidates); err != nil {
			logger.Fatal("printing result", zap.Error(err))
		}
		return
	}

	items := []string{PromptPrint, PromptReportByRecommendation, PromptCandidatesToFile, PromptFilters}
	if config.Screening.ExcludeFile != "" {
		items = append(items, PromptAppendToExcludeFile)
	}
	prompt := promptui.Select{
		Label: "Procced?",
		Items: append(items, PromptExit),
	}

	for {
		logger.Info("current list of candidates", zap.Int("count", candidates.Len()))

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(cmd, action, logger, config, candidates, steps); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(cmd *cobra.Command, action string, logger *zap.Logger, config *Config, candidates *candidate.Candidates, steps []screening.Filter) error {
	switch action {
	case PromptPrint:
		return printJSON(cmd.OutOrStdout(), candidates)
	case PromptReportByRecommendation:
		return printJSON(cmd.OutOrStdout(), candidates.ReportByRecommendation())
	case PromptFilters:
		return printJSON(cmd.OutOrStdout(), screening.Describe(steps))
	case PromptCandidatesToFile:
		filename, err := candidates.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		excludeFile := config.Screening.ExcludeFile
		excluded, err := candidate.GetExcludedFromFile(excludeFile)
		if err != nil {
			return err
		}

		excluded.Append(candidates.ToExcluded())
		if err := excluded.ToFile(excludeFile); err != nil {
			return err
		}

		logger.Info("appended to exclude file", zap.String("filename", excludeFile), zap.Int("count", candidates.Len()))
		return errExit
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
