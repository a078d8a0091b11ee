package domain

// Sentinel marks a field the scraper could not recover. It is a real value
// in the output, distinct from an empty cell.
const Sentinel = "N/A"

// DefaultLocation is assumed when a job page names no location.
const DefaultLocation = "Harare, Zimbabwe"

// JobCandidate is a (title, link) pair discovered on the listing page.
type JobCandidate struct {
	Title string
	URL   string
}

// JobDetail holds the fields pulled from one job's detail page. Every field
// is always populated; a failed extraction leaves the default in place.
type JobDetail struct {
	Company     string
	Location    string
	ExpiryDate  string
	Description string
}

func DefaultDetail() JobDetail {
	return JobDetail{
		Company:     Sentinel,
		Location:    DefaultLocation,
		ExpiryDate:  Sentinel,
		Description: Sentinel,
	}
}

// JobRecord is one row of the output table.
type JobRecord struct {
	Title       string
	URL         string
	Company     string
	Location    string
	ExpiryDate  string
	Description string
	ScrapedAt   string
}
