package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Browser configuration
	DebugAddress string `long:"debug-address" env:"CHROME_DEBUG_ADDRESS" default:"localhost:9222" description:"Chrome remote debugging address (host:port)"`
	ReviewsURL   string `long:"reviews-url" env:"REVIEWS_URL" description:"Google Business profile reviews URL (used when no profile configs exist)"`

	// Scraping configuration
	Weeks         int `long:"weeks" env:"SCRAPING_WEEKS" default:"4" description:"Lookback window in weeks"`
	MaxPages      int `long:"max-pages" env:"SCRAPING_MAX_PAGES" default:"50" description:"Maximum number of review pages to process"`
	PageLoadDelay int `long:"page-delay" env:"SCRAPING_PAGE_DELAY" default:"3" description:"Delay after page load in seconds"`
	NextPageDelay int `long:"next-page-delay" env:"SCRAPING_NEXT_PAGE_DELAY" default:"4" description:"Delay after pagination click in seconds"`

	// Sentiment configuration
	PositiveThreshold float64 `long:"positive-threshold" env:"POSITIVE_THRESHOLD" default:"0.05" description:"Compound score at or above which a context is positive"`
	NegativeThreshold float64 `long:"negative-threshold" env:"NEGATIVE_THRESHOLD" default:"-0.05" description:"Compound score at or below which a context is negative"`
	StarWeight        float64 `long:"star-weight" env:"STAR_WEIGHT" default:"0.1" description:"Weight of the star rating adjustment per star away from 3"`

	// File paths
	ProfilesDir string `long:"profiles-dir" env:"PROFILES_DIR" default:"./profiles" description:"Directory containing business profile configuration files"`
	NamesFile   string `long:"names-file" env:"NAMES_FILE" default:"data/arabic_names.csv" description:"CSV file with known staff names for attribution"`
	LogoFile    string `long:"logo-file" env:"LOGO_FILE" default:"assets/logo.png" description:"Brand logo image for report styling (optional)"`
	OutputDir   string `long:"output-dir" env:"OUTPUT_DIR" default:"output/reports" description:"Directory for generated reports"`
	DBPath      string `long:"db-path" env:"DB_PATH" description:"SQLite database path for the review archive (empty disables archiving)"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Africa/Cairo)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DebugAddress:      raw.DebugAddress,
		ReviewsURL:        raw.ReviewsURL,
		Weeks:             raw.Weeks,
		MaxPages:          raw.MaxPages,
		PageLoadDelay:     raw.PageLoadDelay,
		NextPageDelay:     raw.NextPageDelay,
		PositiveThreshold: raw.PositiveThreshold,
		NegativeThreshold: raw.NegativeThreshold,
		StarWeight:        raw.StarWeight,
		ProfilesDir:       raw.ProfilesDir,
		NamesFile:         raw.NamesFile,
		LogoFile:          raw.LogoFile,
		OutputDir:         raw.OutputDir,
		DBPath:            raw.DBPath,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
