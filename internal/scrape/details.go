package scrape

import (
	"log"
	"strings"

	"vacancymail-scraper/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

const maxDescriptionLen = 300

// ExtractDetails pulls company, location, expiry date and description out of
// a job's detail page. It never fails: each field falls back to its default
// independently, and unparseable content yields the all-default record.
func ExtractDetails(pageHTML string) domain.JobDetail {
	d := domain.DefaultDetail()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		log.Printf("[details] parse job page: %v", err)
		return d
	}

	if company, ok := firstSelector(doc, companyRules); ok {
		d.Company = company
	}
	if desc, ok := firstSelector(doc, descriptionRules); ok {
		d.Description = truncate(desc, maxDescriptionLen)
	}

	text := doc.Text()
	if date, ok := firstMatch(text, expiryRules); ok {
		d.ExpiryDate = date
	}
	if loc, ok := firstMatch(text, locationRules); ok {
		d.Location = loc
	}

	return d
}

// truncate caps s at max runes, ellipsizing the tail so the result is
// exactly max runes long.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
