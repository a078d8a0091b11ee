package config

import (
	"fmt"
	"strings"
)

func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Scraper.BaseURL) == "" {
		problems = append(problems, "scraper.base_url is required")
	} else if !strings.HasPrefix(c.Scraper.BaseURL, "http") {
		problems = append(problems, "scraper.base_url must be an http(s) URL")
	}
	if strings.TrimSpace(c.Scraper.OutputFile) == "" {
		problems = append(problems, "scraper.output_file is required")
	}
	if c.Scraper.MaxJobs <= 0 {
		problems = append(problems, "scraper.max_jobs must be positive")
	}
	if c.Scraper.TimeoutSeconds <= 0 {
		problems = append(problems, "scraper.timeout_seconds must be positive")
	}
	if c.Scraper.RatePerSecond <= 0 {
		problems = append(problems, "scraper.rate_per_second must be positive")
	}
	if c.Scraper.Burst <= 0 {
		problems = append(problems, "scraper.burst must be positive")
	}
	if strings.TrimSpace(c.App.DataDir) == "" {
		problems = append(problems, "app.data_dir is required")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}
