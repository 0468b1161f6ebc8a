package candidate

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-scorer/internal/analysis"
	"github.com/spigell/resume-scorer/internal/anonymize"
	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/textsource"
	"github.com/spigell/resume-scorer/internal/utils"
)

const (
	DefaultConcurrency = 4
	logPreviewLength   = 120
)

// Evaluate extracts and scores every file against job, running up to limit
// extractions at once. Files that cannot be read are logged and skipped. The
// result keeps the order of paths.
func Evaluate(ctx context.Context, src textsource.Source, analyzer *analysis.Analyzer, job analysis.JobDescription, paths []string, limit int, log *zap.Logger) (*Candidates, error) {
	if analyzer == nil {
		analyzer = analysis.Default()
	}
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	log = logger.OrNop(log)

	results := make([]*Candidate, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			docLog := logger.WithCommonFields(log, path, job.Title)

			doc, err := src.Extract(gCtx, path)
			if err != nil {
				if gCtx.Err() != nil {
					return gCtx.Err()
				}
				docLog.Warn("skipping document", zap.Error(err))
				return nil
			}

			docLog.Debug("extracted text",
				zap.String("preview", utils.TruncateForLog(anonymize.Text(doc.Text), logPreviewLength)),
			)

			results[i] = Score(analyzer, doc, job)

			docLog.Debug("scored document",
				zap.Float64("overall_score", results[i].Match.OverallScore),
				zap.Float64("quality_score", results[i].Quality.QualityScore),
				zap.String("recommendation", results[i].Match.Recommendation),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluating candidates: %w", err)
	}

	candidates := &Candidates{Items: make([]*Candidate, 0, len(paths))}
	for _, result := range results {
		if result != nil {
			candidates.Items = append(candidates.Items, result)
		}
	}

	log.Info("evaluated candidates",
		zap.Int("files", len(paths)),
		zap.Int("scored", candidates.Len()),
	)

	return candidates, nil
}

// Score runs extraction, matching and quality scoring on a single document.
func Score(analyzer *analysis.Analyzer, doc *textsource.Document, job analysis.JobDescription) *Candidate {
	features := analyzer.ExtractFeatures(doc.Text)

	return &Candidate{
		ID:       doc.ID,
		Path:     doc.Path,
		FileName: doc.FileName,
		Features: features,
		Match:    analyzer.ScoreMatch(features, job),
		Quality:  analyzer.ScoreQuality(features),
		Job:      &job,
	}
}

// CollectFiles expands directories in paths into the supported documents
// they contain. Explicit file arguments are kept as given.
func CollectFiles(paths []string) ([]string, error) {
	files := make([]string, 0, len(paths))
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !stat.IsDir() {
			add(path)
			continue
		}

		var found []string
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && textsource.IsAllowed(filepath.Ext(p)) {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", path, err)
		}

		sort.Strings(found)
		for _, p := range found {
			add(p)
		}
	}

	return files, nil
}
