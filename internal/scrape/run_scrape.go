package scrape

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"vacancymail-scraper/internal/config"
	"vacancymail-scraper/internal/domain"
	"vacancymail-scraper/internal/store"
)

// Fetcher is the page-fetching collaborator. *fetch.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Sink persists the normalized table. *store.CSVSink satisfies it.
type Sink interface {
	Write(records []domain.JobRecord) error
}

// Runner wires the fetch client, the extraction pipeline and the sinks into
// one scrape run.
type Runner struct {
	Client Fetcher
	Cfg    config.Config
	Sink   Sink
	Runs   *store.RunLog // optional run ledger
}

// RunOnce performs a full scrape: listing fetch, link discovery, one detail
// fetch per candidate (strictly sequential), normalization, CSV write.
// A listing failure or an empty discovery aborts the run with nothing
// written; a single detail page failing only costs that job its details.
func (r *Runner) RunOnce(ctx context.Context) (err error) {
	started := time.Now()
	found := 0

	defer func() {
		if r.Runs == nil {
			return
		}
		run := store.Run{
			StartedAt:  started,
			FinishedAt: time.Now(),
			JobsFound:  found,
			OutputPath: r.Cfg.Scraper.OutputFile,
			OK:         err == nil,
		}
		if err != nil {
			run.Error = err.Error()
		}
		if rerr := r.Runs.Record(ctx, run); rerr != nil {
			log.Printf("[scrape] run ledger: %v", rerr)
		}
	}()

	log.Printf("[scrape] starting run base=%s", r.Cfg.Scraper.BaseURL)

	listing, ferr := r.Client.Fetch(ctx, r.Cfg.Scraper.BaseURL)
	if ferr != nil {
		return fmt.Errorf("fetch listing page: %w", ferr)
	}

	candidates := Discover(listing, r.Cfg.Scraper.BaseURL, r.Cfg.Scraper.MaxJobs)
	if len(candidates) == 0 {
		return errors.New("no job listings found")
	}

	records := make([]domain.JobRecord, 0, len(candidates))
	for _, c := range candidates {
		detail := r.scrapeDetail(ctx, c.URL)
		records = append(records, domain.JobRecord{
			Title:       c.Title,
			URL:         c.URL,
			Company:     detail.Company,
			Location:    detail.Location,
			ExpiryDate:  detail.ExpiryDate,
			Description: detail.Description,
		})
		found++
		log.Printf("[scrape] scraped job: %s", c.Title)
	}

	rows := Normalize(records, time.Now())
	if werr := r.Sink.Write(rows); werr != nil {
		return fmt.Errorf("save output: %w", werr)
	}

	log.Printf("[scrape] run complete jobs=%d output=%s", len(rows), r.Cfg.Scraper.OutputFile)
	return nil
}

func (r *Runner) scrapeDetail(ctx context.Context, url string) domain.JobDetail {
	page, err := r.Client.Fetch(ctx, url)
	if err != nil {
		log.Printf("[scrape] detail fetch failed url=%s err=%v", url, err)
		return domain.DefaultDetail()
	}
	return ExtractDetails(page)
}
