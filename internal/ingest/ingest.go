// Package ingest collects raw media and commit events from external
// collaborators and normalizes them into CSV files the correlation
// pipeline consumes.
package ingest

import "github.com/huangsam/flowstate/schema"

// File names for the normalized event CSVs inside the data directory.
const (
	MediaCSVName  = "youtube_data.csv"
	CommitCSVName = "github_data.csv"
)

// MediaRecord is one watched entry from a watch history export.
type MediaRecord struct {
	Title     string
	URL       string
	Timestamp string
	Date      string
	Hour      int
	DayOfWeek string
	Category  schema.Category
}

// CommitRecord is one commit fetched from a hosting provider.
type CommitRecord struct {
	Repo      string
	Message   string
	Timestamp string
	Date      string
	Hour      int
	DayOfWeek string
}
