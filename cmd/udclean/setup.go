package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/revelaction/udclean/storage"
	"github.com/revelaction/udclean/storage/filesystem"
	"github.com/revelaction/udclean/storage/sqlite/zombiezen"
)

// sqliteExts marks a report path that does not exist yet as a SQLite file.
var sqliteExts = map[string]bool{".db": true, ".sqlite": true, ".sqlite3": true}

func NewReportRepository(p *Pool, path string) (storage.ReportRepository, error) {
	isDir := !sqliteExts[filepath.Ext(path)]

	info, err := os.Stat(path)
	switch {
	case err == nil:
		isDir = info.IsDir()
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("repository not accessible: %s: %w", path, err)
	}

	if isDir {
		return filesystem.NewReportStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	if err := zombiezen.CreateReportTables(pool); err != nil {
		return nil, fmt.Errorf("failed to create report tables: %w", err)
	}
	return zombiezen.NewReportStore(pool), nil
}

// openReportRepository opens an existing repository for reading.
func openReportRepository(p *Pool, path string) (storage.ReportRepository, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}
	return NewReportRepository(p, path)
}
