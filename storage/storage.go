package storage

import (
	"errors"
	"time"
)

// ErrRunNotFound is returned when a run id is not present in the repository.
var ErrRunNotFound = errors.New("run not found")

// Run describes one cleaning invocation.
type Run struct {
	Id      string    `json:"id"`
	Input   string    `json:"input"`
	Output  string    `json:"output"`
	Started time.Time `json:"started"`

	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// Rejection is a sentence removed by a run, with the reasons.
type Rejection struct {
	RunId  string `json:"run_id"`
	SentId string `json:"sent_id"`

	// Line is the input line where the sentence ended.
	Line   int      `json:"line"`
	Errors []string `json:"errors"`

	// The comment and token lines of the sentence
	Lines []string `json:"lines"`
}

// ReportReader defines read operations for cleaning reports
type ReportReader interface {
	// Runs returns all runs, oldest first.
	Runs() ([]Run, error)

	// Run returns a single run by id
	Run(id string) (Run, error)

	// Rejections returns the removed sentences of a run in input order.
	// If match is not empty, only sentences whose id contains it are returned.
	Rejections(runId string, match string) ([]Rejection, error)
}

// ReportWriter defines write operations for cleaning reports
type ReportWriter interface {
	// Write persists a run and its removed sentences
	Write(run Run, rejections []Rejection) error
}

// ReportRepository combines read and write operations
type ReportRepository interface {
	ReportReader
	ReportWriter
}
