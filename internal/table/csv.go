package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// timestampLayouts are tried in order when parsing a timestamp column.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FromCSV reads a CSV file with a header row into a table. Columns whose
// values parse as floats become table columns; a column named "time",
// "timestamp", or "date" becomes the row timestamps; other non-numeric
// columns are skipped.
func FromCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("FromCSV: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV reads CSV content with a header row into a table.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: reading header: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: reading rows: %w", err)
	}

	tbl := New()
	var times []time.Time

	for i, name := range header {
		if isTimestampColumn(name) && times == nil {
			times = make([]time.Time, 0, len(records))
			ok := true
			for _, rec := range records {
				ts, parseErr := parseTimestamp(rec[i])
				if parseErr != nil {
					ok = false

					break
				}
				times = append(times, ts)
			}
			if ok {
				continue
			}
			times = nil
		}

		values := make([]float64, 0, len(records))
		numeric := true
		for _, rec := range records {
			v, parseErr := strconv.ParseFloat(rec[i], 64)
			if parseErr != nil {
				numeric = false

				break
			}
			values = append(values, v)
		}
		if !numeric {
			continue
		}

		if err := tbl.AddColumn(name, values); err != nil {
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
	}

	if times != nil {
		if err := tbl.SetTimes(times); err != nil {
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
	}

	return tbl, nil
}

func isTimestampColumn(name string) bool {
	switch name {
	case "time", "Time", "timestamp", "Timestamp", "date", "Date":
		return true
	}

	return false
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	// epoch seconds fallback
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
