package scrape

import (
	"strings"
	"time"

	"vacancymail-scraper/internal/domain"
)

// Layouts tried in order when standardizing scraped expiry dates.
var dateLayouts = []string{
	"2-1-2006",
	"2/1/2006",
	"2006-1-2",
	"January 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

const (
	outputDateLayout = "2006-01-02"
	timestampLayout  = "2006-01-02 15:04:05"
)

// StandardizeDate reformats a scraped date string to YYYY-MM-DD. The first
// layout that parses wins; strings matching none of them (including the
// "N/A" sentinel) pass through unchanged.
func StandardizeDate(s string) string {
	if s == domain.Sentinel {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(outputDateLayout)
		}
	}
	return s
}

// Normalize turns raw per-job records into the canonical output table: one
// row per title (first occurrence wins), standardized expiry dates, a shared
// scrape timestamp, and no empty columns. It is total: empty input gives an
// empty table, malformed dates pass through rather than erroring.
func Normalize(records []domain.JobRecord, now time.Time) []domain.JobRecord {
	stamp := now.Format(timestampLayout)

	seen := make(map[string]bool, len(records))
	out := make([]domain.JobRecord, 0, len(records))

	for _, r := range records {
		if seen[r.Title] {
			continue
		}
		seen[r.Title] = true

		r.ExpiryDate = StandardizeDate(r.ExpiryDate)
		r.ScrapedAt = stamp
		fillMissing(&r)
		out = append(out, r)
	}

	return out
}

func fillMissing(r *domain.JobRecord) {
	for _, f := range []*string{&r.Title, &r.URL, &r.Company, &r.Location, &r.ExpiryDate, &r.Description} {
		if strings.TrimSpace(*f) == "" {
			*f = domain.Sentinel
		}
	}
}
