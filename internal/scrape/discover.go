package scrape

import (
	"log"
	"strings"

	"vacancymail-scraper/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// A link counts as job-related when its visible text or its href mentions
// one of these, case-insensitively.
var linkKeywords = []string{"job", "vacancy", "position", "career"}

// Discover walks every anchor on the listing page and returns the
// job-looking ones: keyword-matched, deduplicated by visible title (first
// occurrence wins), capped at max, discovery order preserved. Pagination
// links ("Next ...") are dropped. Unparseable content yields nil.
func Discover(pageHTML, baseURL string, max int) []domain.JobCandidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		log.Printf("[discover] parse listing page: %v", err)
		return nil
	}

	seen := map[string]bool{}
	var out []domain.JobCandidate

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if !ok {
			return true
		}
		raw := a.Text()
		if !jobRelated(raw, href) {
			return true
		}

		title := cleanText(raw)
		if title == "" || strings.HasPrefix(strings.ToLower(title), "next") {
			return true
		}
		if seen[title] {
			return true
		}
		seen[title] = true

		out = append(out, domain.JobCandidate{
			Title: title,
			URL:   resolveURL(baseURL, href),
		})
		return len(out) < max
	})

	return out
}

func jobRelated(text, href string) bool {
	t := strings.ToLower(text)
	h := strings.ToLower(href)
	for _, kw := range linkKeywords {
		if strings.Contains(t, kw) || strings.Contains(h, kw) {
			return true
		}
	}
	return false
}
