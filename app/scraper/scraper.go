package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/browser"
	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/review"
)

// Stop scraping after this many consecutive reviews older than the
// lookback window. Trades completeness for bounded runtime, assuming
// reviews arrive in reverse chronological order within a page.
const oldReviewStreakLimit = 3

const defaultWaitTimeout = 10 * time.Second

// Scraper drives the reviews page of a business profile page by page,
// collecting reviews inside the lookback window.
type Scraper struct {
	session   browser.Session
	extractor *review.Extractor

	pageLoadDelay time.Duration
	nextPageDelay time.Duration
	waitTimeout   time.Duration
}

// Result aggregates one scrape run. Reviews holds only in-window,
// de-duplicated records.
type Result struct {
	Reviews     []review.Review
	Pages       int
	TotalSeen   int
	InTimeframe int
	Duplicates  int
}

func NewScraper(session browser.Session, extractor *review.Extractor, pageLoadDelay, nextPageDelay time.Duration) *Scraper {
	return &Scraper{
		session:       session,
		extractor:     extractor,
		pageLoadDelay: pageLoadDelay,
		nextPageDelay: nextPageDelay,
		waitTimeout:   defaultWaitTimeout,
	}
}

// Run scrapes reviews newer than the lookback window, stopping at the
// first of: max pages reached, no review containers on a page, three
// consecutive out-of-window reviews, or no usable pagination control.
// The partial result is returned alongside any error so an interrupted
// run can still be saved.
func (s *Scraper) Run(ctx context.Context, url string, weeks, maxPages int) (*Result, error) {
	result := &Result{}

	if err := s.session.Navigate(url); err != nil {
		return result, fmt.Errorf("failed to open reviews page: %w", err)
	}
	time.Sleep(s.pageLoadDelay)

	slog.Info("Starting scrape", "url", url, "weeks", weeks, "max_pages", maxPages)

	seen := make(map[string]bool)

	for result.Pages < maxPages {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		result.Pages++
		slog.Debug("Processing page", "page", result.Pages)

		if err := s.session.WaitVisible(review.ContainerSelector, s.waitTimeout); err != nil {
			slog.Warn("No reviews found on page", "page", result.Pages, "error", err)
			break
		}

		html, err := s.session.PageHTML()
		if err != nil {
			return result, fmt.Errorf("failed to snapshot page %d: %w", result.Pages, err)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return result, fmt.Errorf("failed to parse page %d: %w", result.Pages, err)
		}

		containers := doc.Find(review.ContainerSelector)
		if containers.Length() == 0 {
			slog.Warn("No review containers found on page", "page", result.Pages)
			break
		}

		pageReviews, stop := s.processPage(containers, weeks, seen, result)
		slog.Debug("Page processed",
			"page", result.Pages,
			"extracted", pageReviews,
			"in_timeframe", result.InTimeframe)

		if stop {
			break
		}

		if !s.nextPage(doc) {
			break
		}
		time.Sleep(s.nextPageDelay)
	}

	slog.Info("Scraping completed",
		"pages", result.Pages,
		"total", result.TotalSeen,
		"in_timeframe", result.InTimeframe,
		"duplicates", result.Duplicates)

	return result, nil
}

// processPage extracts every container on the current page. The old
// review streak starts fresh on each page and resets whenever an
// in-window review is seen; reaching the limit stops the whole scrape.
func (s *Scraper) processPage(containers *goquery.Selection, weeks int, seen map[string]bool, result *Result) (int, bool) {
	now := time.Now()
	pageReviews := 0
	oldStreak := 0
	stop := false

	containers.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		r := s.extractor.Run(sel, now)
		result.TotalSeen++

		if review.OlderThanWindow(r.ParsedDate, weeks, now) {
			oldStreak++
			slog.Debug("Review older than window",
				"date_text", r.DateText,
				"weeks", weeks,
				"streak", oldStreak)
			if oldStreak >= oldReviewStreakLimit {
				slog.Info("Found consecutive old reviews, stopping",
					"count", oldStreak,
					"weeks", weeks)
				stop = true
				return false
			}
			return true
		}

		oldStreak = 0
		if seen[r.ContentHash] {
			result.Duplicates++
			return true
		}
		seen[r.ContentHash] = true
		result.Reviews = append(result.Reviews, r)
		result.InTimeframe++
		pageReviews++
		return true
	})

	return pageReviews, stop
}

// nextPage advances to the next page when a usable pagination control
// exists on the snapshot
func (s *Scraper) nextPage(doc *goquery.Document) bool {
	button := doc.Find(review.NextButtonSelector).First()
	if button.Length() == 0 {
		slog.Info("Pagination button not found, reached last page")
		return false
	}

	if _, disabled := button.Attr("disabled"); disabled {
		slog.Info("No more pages available")
		return false
	}
	if v, ok := button.Attr("aria-disabled"); ok && v == "true" {
		slog.Info("No more pages available")
		return false
	}

	if err := s.session.Click(review.NextButtonSelector); err != nil {
		slog.Warn("Could not navigate to next page", "error", err)
		return false
	}

	slog.Debug("Moving to next page")
	return true
}
