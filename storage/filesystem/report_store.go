package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/udclean/storage"
)

// report is the on-disk layout of one run.
type report struct {
	Run        storage.Run         `json:"run"`
	Rejections []storage.Rejection `json:"rejections"`
}

// ReportStore keeps one JSON file per run in a directory.
type ReportStore struct {
	dir string
}

var _ storage.ReportRepository = (*ReportStore)(nil)

// NewReportStore creates a filesystem report store, creating dir if needed.
func NewReportStore(dir string) (*ReportStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &ReportStore{dir: dir}, nil
}

func (s *ReportStore) path(runId string) string {
	return filepath.Join(s.dir, runId+".json")
}

func (s *ReportStore) Write(run storage.Run, rejections []storage.Rejection) error {
	data, err := json.MarshalIndent(report{Run: run, Rejections: rejections}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path(run.Id), data, 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", run.Id, err)
	}
	return nil
}

func (s *ReportStore) Runs() ([]storage.Run, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var runs []storage.Run
	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}

		r, err := readReport(filepath.Join(s.dir, file.Name()))
		if err != nil {
			return nil, err
		}
		runs = append(runs, r.Run)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Started.Before(runs[j].Started)
	})

	return runs, nil
}

func (s *ReportStore) Run(id string) (storage.Run, error) {
	r, err := readReport(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.Run{}, fmt.Errorf("%w: %s", storage.ErrRunNotFound, id)
		}
		return storage.Run{}, err
	}
	return r.Run, nil
}

func (s *ReportStore) Rejections(runId string, match string) ([]storage.Rejection, error) {
	r, err := readReport(s.path(runId))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storage.ErrRunNotFound, runId)
		}
		return nil, err
	}

	if match == "" {
		return r.Rejections, nil
	}

	var res []storage.Rejection
	for _, rej := range r.Rejections {
		if strings.Contains(rej.SentId, match) {
			res = append(res, rej)
		}
	}
	return res, nil
}

// readReport reads a report JSON from the given path and unmarshals it.
func readReport(path string) (report, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return report{}, fmt.Errorf("IO error: %w", err)
	}

	var r report
	if err := json.Unmarshal(f, &r); err != nil {
		return report{}, fmt.Errorf("JSON decoding error in %s: %w", filepath.Base(path), err)
	}

	return r, nil
}
