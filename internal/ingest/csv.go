package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/huangsam/flowstate/schema"
)

// CSV headers for the normalized event files.
var (
	mediaHeader  = []string{"title", "url", "timestamp", "date", "hour", "day_of_week", "category"}
	commitHeader = []string{"repo", "message", "timestamp", "date", "hour", "day_of_week"}
)

// WriteMediaCSV writes media records, creating parent directories as needed.
func WriteMediaCSV(path string, records []MediaRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Title, r.URL, r.Timestamp, r.Date, strconv.Itoa(r.Hour), r.DayOfWeek, string(r.Category)})
	}
	return writeCSV(path, mediaHeader, rows)
}

// WriteCommitCSV writes commit records, creating parent directories as needed.
func WriteCommitCSV(path string, records []CommitRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Repo, r.Message, r.Timestamp, r.Date, strconv.Itoa(r.Hour), r.DayOfWeek})
	}
	return writeCSV(path, commitHeader, rows)
}

// ReadMediaEvents loads normalized media events from a CSV. Rows whose date
// fails the strict calendar-day pattern are dropped before aggregation.
func ReadMediaEvents(path string) ([]schema.MediaEvent, error) {
	rows, fields, err := readCSV(path, mediaHeader)
	if err != nil {
		return nil, err
	}

	events := make([]schema.MediaEvent, 0, len(rows))
	for _, row := range rows {
		date := row[fields["date"]]
		if !schema.ValidDate(date) {
			continue
		}
		events = append(events, schema.MediaEvent{
			Date:     date,
			Category: schema.Category(row[fields["category"]]),
		})
	}
	return events, nil
}

// ReadCommitEvents loads normalized commit events from a CSV with the same
// strict date filter as ReadMediaEvents.
func ReadCommitEvents(path string) ([]schema.CommitEvent, error) {
	rows, fields, err := readCSV(path, commitHeader)
	if err != nil {
		return nil, err
	}

	events := make([]schema.CommitEvent, 0, len(rows))
	for _, row := range rows {
		date := row[fields["date"]]
		if !schema.ValidDate(date) {
			continue
		}
		events = append(events, schema.CommitEvent{Date: date})
	}
	return events, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// readCSV reads all rows and maps header names to column indexes, so column
// order in the file does not matter.
func readCSV(path string, required []string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%s is empty, expected a header row", path)
	}

	fields := make(map[string]int, len(all[0]))
	for i, name := range all[0] {
		fields[name] = i
	}
	for _, name := range required {
		if _, ok := fields[name]; !ok {
			return nil, nil, fmt.Errorf("%s is missing required column %q", path, name)
		}
	}

	return all[1:], fields, nil
}
