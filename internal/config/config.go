package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
		LogFile string `yaml:"log_file"`
	} `yaml:"app"`

	Scraper struct {
		BaseURL        string  `yaml:"base_url"`
		OutputFile     string  `yaml:"output_file"`
		MaxJobs        int     `yaml:"max_jobs"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		UserAgent      string  `yaml:"user_agent"`
		RatePerSecond  float64 `yaml:"rate_per_second"`
		Burst          int     `yaml:"burst"`
	} `yaml:"scraper"`
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

func Default() Config {
	var cfg Config
	cfg.App.DataDir = "."
	cfg.App.LogFile = "scraper.log"
	cfg.Scraper.BaseURL = "https://vacancymail.co.zw/jobs/"
	cfg.Scraper.OutputFile = "scraped_data.csv"
	cfg.Scraper.MaxJobs = 10
	cfg.Scraper.TimeoutSeconds = 30
	cfg.Scraper.UserAgent = defaultUserAgent
	cfg.Scraper.RatePerSecond = 1.0
	cfg.Scraper.Burst = 2
	return cfg
}

// Load reads path over the defaults. A missing file is not an error; you get
// the defaults back.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
