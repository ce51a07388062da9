package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/browser"
	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/cfg"
	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/database"
	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/profile"
	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/report"
	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/review"
	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/scraper"
	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/sentiment"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Optional .env file for local runs; missing file is fine
	_ = godotenv.Load()

	// Load configuration from environment variables and command-line flags
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	log.Printf("Starting review sentiment pipeline (version %s)...", appCfg.Version)

	// Load business profile configurations
	log.Printf("Loading profiles from %s...", appCfg.ProfilesDir)
	loader := profile.NewLoader(appCfg.ProfilesDir, profile.Defaults{
		Weeks:    appCfg.Weeks,
		MaxPages: appCfg.MaxPages,
	})
	profiles, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load profiles: %v", err)
	}
	if len(profiles) == 0 {
		if appCfg.ReviewsURL == "" {
			log.Fatal("No profile configurations found and REVIEWS_URL is not set")
		}
		log.Println("No profile configurations found, using REVIEWS_URL")
		profiles = map[string]*profile.Profile{"default": loader.Fallback(appCfg.ReviewsURL)}
	}
	log.Printf("Loaded %d profiles", len(profiles))

	// Interrupts cancel the scrape; everything collected so far is still
	// scored and written out
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Attach to the externally managed Chrome session
	session, err := browser.Connect(ctx, appCfg.DebugAddress)
	if err != nil {
		log.Fatalf("Failed to connect to Chrome: %v", err)
	}
	defer session.Close()

	// Optional review archive
	var repo database.ReviewRepository
	if appCfg.DBPath != "" {
		log.Printf("Opening review archive at %s...", appCfg.DBPath)
		db, err := database.NewConnection(appCfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		version, dirty, err := database.RunMigrations(db)
		if err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Printf("Database schema at version %d (dirty: %v)", version, dirty)

		repo = database.NewReviewRepository(db)
	}

	// Known staff names for attribution; attribution is skipped when the
	// file is missing
	knownNames, err := sentiment.LoadKnownNames(appCfg.NamesFile)
	if err != nil {
		log.Printf("Warning: could not load staff names from %s: %v", appCfg.NamesFile, err)
	} else {
		log.Printf("Loaded %d known staff names", len(knownNames))
	}

	reportDate := time.Now().Format("2006-01-02")

	processed := 0
	for _, key := range sortedKeys(profiles) {
		p := profiles[key]
		if !p.Settings.Enabled {
			log.Printf("Skipping disabled profile: %s", p.Business.Name)
			continue
		}

		if err := runProfile(ctx, appCfg, session, p, knownNames, repo, reportDate); err != nil {
			if ctx.Err() != nil {
				log.Printf("Interrupted while processing %s: %v", p.Business.Name, err)
				break
			}
			log.Printf("Warning: profile %s failed: %v", p.Business.Name, err)
			continue
		}
		processed++
	}

	log.Printf("Pipeline complete: %d/%d profiles processed", processed, len(profiles))
}

// runProfile scrapes, scores, archives and reports a single profile. A
// cancelled scrape still produces a report from the partial result.
func runProfile(ctx context.Context, appCfg *cfg.Cfg, session browser.Session,
	p *profile.Profile, knownNames []string, repo database.ReviewRepository, reportDate string) error {

	log.Printf("Processing profile: %s (%s)", p.Business.Name, p.Business.URL)

	scr := scraper.NewScraper(session, review.NewExtractor(),
		time.Duration(appCfg.PageLoadDelay)*time.Second,
		time.Duration(appCfg.NextPageDelay)*time.Second)

	result, scrapeErr := scr.Run(ctx, p.Business.URL, p.Settings.Weeks, p.Settings.MaxPages)
	if scrapeErr != nil {
		log.Printf("Scrape stopped early for %s, keeping partial results: %v", p.Business.Name, scrapeErr)
	}

	if len(result.Reviews) == 0 {
		log.Printf("No reviews collected for %s", p.Business.Name)
		return scrapeErr
	}

	analyzer := sentiment.NewAnalyzer(sentiment.Config{
		PositiveThreshold: appCfg.PositiveThreshold,
		NegativeThreshold: appCfg.NegativeThreshold,
		StarWeight:        appCfg.StarWeight,
		StaffKeywords:     p.Sentiment.StaffKeywords,
		StoreKeywords:     p.Sentiment.StoreKeywords,
	})
	scored := analyzer.Run(result.Reviews, knownNames)

	summary := sentiment.Summarize(scored)
	log.Printf("Scored %d reviews for %s (staff: %d positive / %d negative, store: %d positive / %d negative)",
		summary.TotalReviews, p.Business.Name,
		summary.StaffDistribution[sentiment.LabelPositive],
		summary.StaffDistribution[sentiment.LabelNegative],
		summary.StoreDistribution[sentiment.LabelPositive],
		summary.StoreDistribution[sentiment.LabelNegative])

	if repo != nil {
		archived := 0
		for _, s := range scored {
			inserted, err := repo.UpsertReview(p.Business.ID, s)
			if err != nil {
				log.Printf("Warning: failed to archive review %s: %v", s.ContentHash, err)
				continue
			}
			if inserted {
				archived++
			}
		}
		log.Printf("Archived %d new reviews for %s", archived, p.Business.Name)
	}

	logoPath := p.Report.Logo
	if logoPath == "" {
		logoPath = appCfg.LogoFile
	}

	summarySheet := report.BuildStaffSummarySheet(scored, reportDate)
	if p.Report.Title != "" {
		summarySheet.Title = fmt.Sprintf("%s - %s", p.Report.Title, reportDate)
	}
	sheets := []report.Sheet{summarySheet, report.BuildReviewsSheet(scored)}

	if err := os.MkdirAll(appCfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(appCfg.OutputDir,
		fmt.Sprintf("sentiment_report_%s_%s.xlsx", sanitizeFilename(p.Business.ID), reportDate))

	generator := report.NewGenerator(logoPath)
	if err := generator.CreateWorkbook(sheets, filename); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	log.Printf("Report written to %s", filename)
	return scrapeErr
}

func sortedKeys(profiles map[string]*profile.Profile) []string {
	keys := make([]string, 0, len(profiles))
	for key := range profiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

var filenameReplacer = strings.NewReplacer(" ", "_", "/", "-", "\\", "-")

func sanitizeFilename(name string) string {
	return filenameReplacer.Replace(name)
}
