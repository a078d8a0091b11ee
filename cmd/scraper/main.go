package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"vacancymail-scraper/internal/config"
	"vacancymail-scraper/internal/fetch"
	"vacancymail-scraper/internal/scheduler"
	"vacancymail-scraper/internal/scrape"
	"vacancymail-scraper/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	schedFlag := flag.String("schedule", "none", "recurrence: none, hourly, daily or weekly")
	outFlag := flag.String("output", "", "output CSV path (overrides config)")
	cfgFlag := flag.String("config", "", "config file path")
	historyFlag := flag.Int("history", 0, "print the last N runs and exit")
	flag.Parse()

	// .env is optional; real env always wins.
	_ = godotenv.Load()

	cfgPath := *cfgFlag
	if cfgPath == "" {
		cfgPath = os.Getenv("SCRAPER_CONFIG")
	}
	if cfgPath == "" {
		cfgPath = filepath.Join("config", "config.yml")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	if v := os.Getenv("SCRAPER_DATA_DIR"); v != "" {
		cfg.App.DataDir = v
	}
	if v := os.Getenv("SCRAPER_OUTPUT"); v != "" {
		cfg.Scraper.OutputFile = v
	}
	if *outFlag != "" {
		cfg.Scraper.OutputFile = *outFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(cfg.App.DataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	closeLog := setupLogging(cfg)
	defer closeLog()

	db, err := store.Open(filepath.Join(cfg.App.DataDir, "scraper.db"))
	if err != nil {
		log.Fatalf("open run ledger: %v", err)
	}
	defer db.Close()
	runs := store.NewRunLog(db)

	if *historyFlag > 0 {
		printHistory(runs, *historyFlag)
		return
	}

	sched, err := scheduler.Parse(*schedFlag)
	if err != nil {
		log.Fatal(err)
	}

	client := fetch.NewClient(
		time.Duration(cfg.Scraper.TimeoutSeconds)*time.Second,
		cfg.Scraper.UserAgent,
		cfg.Scraper.RatePerSecond,
		cfg.Scraper.Burst,
	)

	runner := &scrape.Runner{
		Client: client,
		Cfg:    cfg,
		Sink:   &store.CSVSink{Path: cfg.Scraper.OutputFile},
		Runs:   runs,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Run(ctx, sched, "scrape", runner.RunOnce)
}

// setupLogging tees log output to the log file and stderr.
func setupLogging(cfg config.Config) func() {
	path := filepath.Join(cfg.App.DataDir, cfg.App.LogFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("[main] log file %s unavailable: %v", path, err)
		return func() {}
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return func() { _ = f.Close() }
}

func printHistory(runs *store.RunLog, n int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	recent, err := runs.Recent(ctx, n)
	if err != nil {
		log.Fatalf("read run history: %v", err)
	}
	if len(recent) == 0 {
		fmt.Println("no runs recorded yet")
		return
	}
	for _, r := range recent {
		status := "ok"
		if !r.OK {
			status = "failed: " + r.Error
		}
		fmt.Printf("%s  jobs=%-3d  %s  %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.JobsFound, r.OutputPath, status)
	}
}
