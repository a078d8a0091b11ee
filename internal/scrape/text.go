package scrape

import "strings"

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// resolveURL absolutizes a listing-page href. Anything already carrying a
// scheme passes through; everything else hangs off the listing base URL.
func resolveURL(baseURL, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return baseURL + strings.TrimLeft(href, "/")
}
