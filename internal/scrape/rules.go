package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Detail-page extraction is a set of ordered rule tables, one per field.
// Rules run top to bottom; the first that fires wins and the rest are
// skipped. Keeping them as data makes the precedence auditable and lets
// tests exercise each rule on its own.

// selectorRule takes the cleaned text of the first element matching sel.
// Element presence decides the match, so an empty element still beats a
// later rule.
type selectorRule struct {
	name string
	sel  string
}

var companyRules = []selectorRule{
	{name: "heading", sel: "h3"},
	{name: "company-class", sel: ".company"},
}

var descriptionRules = []selectorRule{
	{name: "job-description-class", sel: ".job-description"},
	{name: "content-class", sel: ".content"},
}

func firstSelector(doc *goquery.Document, rules []selectorRule) (string, bool) {
	for _, r := range rules {
		if sel := doc.Find(r.sel).First(); sel.Length() > 0 {
			return cleanText(sel.Text()), true
		}
	}
	return "", false
}

// textRule scans the page's full visible text and captures group 1 of the
// first match.
type textRule struct {
	name string
	re   *regexp.Regexp
}

var expiryRules = []textRule{
	// a date label followed by either a numeric (31/01/2025) or a textual
	// (25 December 2024) date
	{name: "labeled-date", re: regexp.MustCompile(
		`(?i)(?:Expiry|Closing|Deadline|Due)(?:\s+Date)?:?\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{1,2}\s+[A-Za-z]+\s+\d{2,4})`)},
}

var locationRules = []textRule{
	// a place label followed by a run of letters/spaces/commas, terminated
	// by period, comma or line break
	{name: "labeled-location", re: regexp.MustCompile(
		`(?i)(?:Location|Place|City|Town|Based in|Position in)(?:\s*:)?\s*([A-Za-z\s,]+)(?:\.|,|\n)`)},
}

func firstMatch(text string, rules []textRule) (string, bool) {
	for _, r := range rules {
		if m := r.re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
