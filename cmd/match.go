package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/analysis"
	"github.com/spigell/resume-scorer/internal/jobspec"
	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/tools"
)

type matchOutput struct {
	ResumeID string `json:"resumeId"`
	tools.MatchResult
}

var matchCmd = &cobra.Command{
	Use:   "match <resume>",
	Short: "Score a resume against job descriptions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log, config := setup()

		jobs, err := selectJobs(cmd)
		if err != nil {
			log.Fatal("selecting jobs", zap.Error(err))
		}

		doc, err := newExtractor(config).Extract(context.Background(), args[0])
		if err != nil {
			log.Fatal("extracting text", zap.Error(err))
		}

		analyzer := newAnalyzer(config, log)
		features := analyzer.ExtractFeatures(doc.Text)

		results := make([]matchOutput, 0, len(jobs))
		for _, job := range jobs {
			report := analyzer.ScoreMatch(features, job)

			logger.WithCommonFields(log, doc.Path, job.Title).Info("scored resume",
				zap.Float64("overall_score", report.OverallScore),
				zap.String("recommendation", report.Recommendation),
			)

			results = append(results, matchOutput{
				ResumeID: doc.ID,
				MatchResult: tools.MatchResult{
					JobTitle:        job.Title,
					Company:         tools.CompanyOrDefault(job.Company),
					MatchingResults: report,
				},
			})
		}

		var out any = results
		if len(results) == 1 {
			out = results[0]
		}
		if err := printJSON(cmd.OutOrStdout(), out); err != nil {
			log.Fatal("printing result", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	addJobFlags(matchCmd)
	matchCmd.Flags().Bool("all", false, "score against every job in the job file")
}

func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().String("job", "", "a YAML or JSON file with one job or a jobs list")
	cmd.Flags().String("title", "", "title of the job to use when the job file holds several")
	cmd.MarkFlagRequired("job")
}

// selectJobs loads the job file and picks the jobs to score against: the one
// named by --title, all of them with --all, the only one, or one chosen
// interactively.
func selectJobs(cmd *cobra.Command) ([]analysis.JobDescription, error) {
	path, _ := cmd.Flags().GetString("job")
	jobs, err := jobspec.Load(path)
	if err != nil {
		return nil, err
	}

	if title, _ := cmd.Flags().GetString("title"); strings.TrimSpace(title) != "" {
		job, err := jobspec.Select(jobs, title)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(jobspec.Titles(jobs), ", "))
		}
		return []analysis.JobDescription{job}, nil
	}

	if flag := cmd.Flags().Lookup("all"); flag != nil && flag.Value.String() == "true" {
		return jobs, nil
	}

	if len(jobs) == 1 {
		return jobs, nil
	}

	labels := make([]string, 0, len(jobs))
	for i, job := range jobs {
		label := job.Title
		if label == "" {
			label = fmt.Sprintf("job #%d", i+1)
		}
		if job.Company != "" {
			label += " / " + job.Company
		}
		labels = append(labels, label)
	}

	jobPrompt := promptui.Select{
		Label: "Choose a job and press ENTER",
		Items: labels,
	}

	idx, _, err := jobPrompt.Run()
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(jobs) {
		return nil, errors.New("no job selected")
	}

	return []analysis.JobDescription{jobs[idx]}, nil
}
