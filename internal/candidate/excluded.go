package candidate

import (
	"encoding/json"
	"errors"
	"os"
	"time"
)

type ExcludedCandidates struct {
	Items []*ExcludedCandidate
}

type ExcludedCandidate struct {
	Path       string
	Name       string
	JobTitle   string
	ExcludedAt time.Time
}

func (c *Candidates) ToExcluded() *ExcludedCandidates {
	excluded := &ExcludedCandidates{}
	for _, candidate := range c.Items {
		entry := &ExcludedCandidate{
			Path:       candidate.Path,
			Name:       candidate.Features.Name,
			ExcludedAt: time.Now().UTC(),
		}
		if candidate.Job != nil {
			entry.JobTitle = candidate.Job.Title
		}
		excluded.Items = append(excluded.Items, entry)
	}
	return excluded
}

// GetExcludedFromFile reads an exclude file. A missing or empty file yields
// an empty list.
func GetExcludedFromFile(path string) (*ExcludedCandidates, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &ExcludedCandidates{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedCandidates{}, nil
	}

	var excluded ExcludedCandidates
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedCandidates) Append(s *ExcludedCandidates) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedCandidates) Paths() []string {
	paths := make([]string, 0, len(e.Items))
	for _, candidate := range e.Items {
		paths = append(paths, candidate.Path)
	}
	return paths
}

func (e *ExcludedCandidates) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
