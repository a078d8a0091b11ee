package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"vacancymail-scraper/internal/domain"

	"github.com/gofrs/flock"
)

var csvColumns = []string{"title", "url", "company", "location", "expiry_date", "description", "scraped_at"}

// CSVSink overwrites a CSV snapshot of the scraped jobs on every write.
type CSVSink struct {
	Path string
}

// Write replaces the file at Path with the given records under the canonical
// seven-column header. An empty record set is an error and leaves any
// previous snapshot untouched. A lock file guards against a straggling
// earlier run still mid-write.
func (s *CSVSink) Write(records []domain.JobRecord) error {
	if len(records) == 0 {
		return errors.New("no data to save")
	}

	lock := flock.New(s.Path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", s.Path, err)
	}
	defer lock.Unlock()

	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.Path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Title, r.URL, r.Company, r.Location, r.ExpiryDate, r.Description, r.ScrapedAt}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", s.Path, err)
	}
	return f.Close()
}
