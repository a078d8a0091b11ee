package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacancymail-scraper/internal/domain"
)

func TestCSVSinkWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	sink := &CSVSink{Path: path}

	records := []domain.JobRecord{
		{
			Title:       "Accountant",
			URL:         "https://jobs.test/jobs/accountant",
			Company:     "Acme Ltd",
			Location:    "Gweru",
			ExpiryDate:  "2025-01-31",
			Description: "Keep the books, with a comma",
			ScrapedAt:   "2025-03-01 10:30:00",
		},
		{
			Title:       "Driver",
			URL:         "https://jobs.test/jobs/driver",
			Company:     "N/A",
			Location:    "Harare, Zimbabwe",
			ExpiryDate:  "N/A",
			Description: "N/A",
			ScrapedAt:   "2025-03-01 10:30:00",
		},
	}

	require.NoError(t, sink.Write(records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"title", "url", "company", "location", "expiry_date", "description", "scraped_at"}, rows[0])
	assert.Equal(t, "Keep the books, with a comma", rows[1][5])
	assert.Equal(t, "Harare, Zimbabwe", rows[2][3])
}

func TestCSVSinkOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	sink := &CSVSink{Path: path}

	first := []domain.JobRecord{{Title: "A"}, {Title: "B"}, {Title: "C"}}
	second := []domain.JobRecord{{Title: "D"}}

	require.NoError(t, sink.Write(first))
	require.NoError(t, sink.Write(second))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one row
	assert.Equal(t, "D", rows[1][0])
}

func TestCSVSinkEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	sink := &CSVSink{Path: path}

	assert.Error(t, sink.Write(nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file should be created for an empty table")
}
