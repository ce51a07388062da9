package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/review"
)

// fakeSession serves canned page snapshots and advances on pagination
// clicks
type fakeSession struct {
	pages     []string
	index     int
	navigated string
	clicks    int
}

func (f *fakeSession) Navigate(url string) error {
	f.navigated = url
	return nil
}

func (f *fakeSession) WaitVisible(selector string, timeout time.Duration) error {
	if strings.Contains(f.pages[f.index], "DsOcnf") {
		return nil
	}
	return errors.New("timeout waiting for " + selector)
}

func (f *fakeSession) PageHTML() (string, error) {
	return f.pages[f.index], nil
}

func (f *fakeSession) Click(selector string) error {
	f.clicks++
	if f.index+1 >= len(f.pages) {
		return errors.New("no next page")
	}
	f.index++
	return nil
}

type testReview struct {
	dateText string
	reviewer string
}

func buildPage(withNextButton bool, reviews ...testReview) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, r := range reviews {
		fmt.Fprintf(&b, `
<div class="DsOcnf">
  <div class="oiQd1c">Review text from %s</div>
  <div class="Wxf3Bf wUfJz">%s</div>
  <div class="z2S9Hc">%s</div>
</div>`, r.reviewer, r.dateText, r.reviewer)
	}
	if withNextButton {
		b.WriteString(`<button class="VfPpkd-Bz112c-LgbsSe yHy1rc eT1oJ QDwDD mN1ivc vX5N7b">Next</button>`)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func newTestScraper(session *fakeSession) *Scraper {
	return NewScraper(session, review.NewExtractor(), 0, 0)
}

func TestScraper_CollectsRecentReviews(t *testing.T) {
	session := &fakeSession{pages: []string{
		buildPage(true,
			testReview{"2 days ago", "Reviewer A"},
			testReview{"1 week ago", "Reviewer B"}),
		buildPage(false,
			testReview{"2 weeks ago", "Reviewer C"},
			testReview{"3 weeks ago", "Reviewer D"}),
	}}

	result, err := newTestScraper(session).Run(context.Background(), "https://example.com/reviews", 4, 50)
	if err != nil {
		t.Fatal(err)
	}

	if session.navigated != "https://example.com/reviews" {
		t.Errorf("Expected navigation to reviews URL, got %q", session.navigated)
	}
	if result.Pages != 2 {
		t.Errorf("Expected 2 pages, got %d", result.Pages)
	}
	if len(result.Reviews) != 4 {
		t.Errorf("Expected 4 reviews, got %d", len(result.Reviews))
	}
	if result.InTimeframe != 4 {
		t.Errorf("Expected 4 in-timeframe reviews, got %d", result.InTimeframe)
	}
	if result.TotalSeen != 4 {
		t.Errorf("Expected 4 total seen, got %d", result.TotalSeen)
	}
}

func TestScraper_StreakStopsScrape(t *testing.T) {
	// Three consecutive old reviews stop the whole scrape even though
	// more pages are available
	session := &fakeSession{pages: []string{
		buildPage(true,
			testReview{"2 days ago", "Recent One"},
			testReview{"2 months ago", "Old One"},
			testReview{"3 months ago", "Old Two"},
			testReview{"4 months ago", "Old Three"},
			testReview{"1 day ago", "Never Reached"}),
		buildPage(false,
			testReview{"3 days ago", "Next Page"}),
	}}

	result, err := newTestScraper(session).Run(context.Background(), "https://example.com/reviews", 4, 50)
	if err != nil {
		t.Fatal(err)
	}

	if result.Pages != 1 {
		t.Errorf("Expected scraping to stop on page 1, got %d pages", result.Pages)
	}
	if session.clicks != 0 {
		t.Errorf("Expected no pagination clicks after streak stop, got %d", session.clicks)
	}
	if len(result.Reviews) != 1 {
		t.Fatalf("Expected 1 review, got %d", len(result.Reviews))
	}
	if result.Reviews[0].ReviewerName != "Recent One" {
		t.Errorf("Expected review from 'Recent One', got %q", result.Reviews[0].ReviewerName)
	}
	// The review after the third old one is never processed
	if result.TotalSeen != 4 {
		t.Errorf("Expected 4 reviews seen before stop, got %d", result.TotalSeen)
	}
}

func TestScraper_StreakResetsOnRecentReview(t *testing.T) {
	session := &fakeSession{pages: []string{
		buildPage(false,
			testReview{"2 months ago", "Old One"},
			testReview{"3 months ago", "Old Two"},
			testReview{"2 days ago", "Recent One"},
			testReview{"2 months ago", "Old Three"},
			testReview{"3 months ago", "Old Four"},
			testReview{"4 months ago", "Old Five"}),
	}}

	result, err := newTestScraper(session).Run(context.Background(), "https://example.com/reviews", 4, 50)
	if err != nil {
		t.Fatal(err)
	}

	// Two old reviews, then a recent one resets the counter, then three
	// old ones trigger the stop
	if len(result.Reviews) != 1 {
		t.Fatalf("Expected 1 review, got %d", len(result.Reviews))
	}
	if result.Reviews[0].ReviewerName != "Recent One" {
		t.Errorf("Expected review from 'Recent One', got %q", result.Reviews[0].ReviewerName)
	}
	if result.TotalSeen != 6 {
		t.Errorf("Expected all 6 reviews seen, got %d", result.TotalSeen)
	}
}

func TestScraper_UnparseableDateCountsAsOld(t *testing.T) {
	session := &fakeSession{pages: []string{
		buildPage(false,
			testReview{"Unknown", "No Date One"},
			testReview{"garbled", "No Date Two"},
			testReview{"also garbled", "No Date Three"},
			testReview{"1 day ago", "Never Reached"}),
	}}

	result, err := newTestScraper(session).Run(context.Background(), "https://example.com/reviews", 4, 50)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Reviews) != 0 {
		t.Errorf("Expected 0 reviews, got %d", len(result.Reviews))
	}
	if result.TotalSeen != 3 {
		t.Errorf("Expected stop after 3 unparseable dates, saw %d reviews", result.TotalSeen)
	}
}

func TestScraper_MaxPagesLimit(t *testing.T) {
	session := &fakeSession{pages: []string{
		buildPage(true, testReview{"1 day ago", "Page One"}),
		buildPage(true, testReview{"2 days ago", "Page Two"}),
		buildPage(true, testReview{"3 days ago", "Page Three"}),
	}}

	result, err := newTestScraper(session).Run(context.Background(), "https://example.com/reviews", 4, 2)
	if err != nil {
		t.Fatal(err)
	}

	if result.Pages != 2 {
		t.Errorf("Expected 2 pages with max_pages=2, got %d", result.Pages)
	}
	if len(result.Reviews) != 2 {
		t.Errorf("Expected 2 reviews, got %d", len(result.Reviews))
	}
}

func TestScraper_NoPaginationButton(t *testing.T) {
	session := &fakeSession{pages: []string{
		buildPage(false, testReview{"1 day ago", "Only Page"}),
	}}

	result, err := newTestScraper(session).Run(context.Background(), "https://example.com/reviews", 4, 50)
	if err != nil {
		t.Fatal(err)
	}

	if result.Pages != 1 {
		t.Errorf("Expected 1 page, got %d", result.Pages)
	}
	if session.clicks != 0 {
		t.Errorf("Expected no clicks without a pagination button, got %d", session.clicks)
	}
}

func TestScraper_DisabledPaginationButton(t *testing.T) {
	page := buildPage(false, testReview{"1 day ago", "Only Page"}) // no button
	page = strings.Replace(page, "</body>",
		`<button class="VfPpkd-Bz112c-LgbsSe yHy1rc eT1oJ QDwDD mN1ivc vX5N7b" disabled>Next</button></body>`, 1)

	session := &fakeSession{pages: []string{page}}

	result, err := newTestScraper(session).Run(context.Background(), "https://example.com/reviews", 4, 50)
	if err != nil {
		t.Fatal(err)
	}

	if result.Pages != 1 {
		t.Errorf("Expected 1 page, got %d", result.Pages)
	}
	if session.clicks != 0 {
		t.Errorf("Expected no clicks on a disabled button, got %d", session.clicks)
	}
}

func TestScraper_EmptyPage(t *testing.T) {
	session := &fakeSession{pages: []string{"<html><body></body></html>"}}

	result, err := newTestScraper(session).Run(context.Background(), "https://example.com/reviews", 4, 50)
	if err != nil {
		t.Fatal(err)
	}

	if result.Pages != 1 {
		t.Errorf("Expected 1 page attempt, got %d", result.Pages)
	}
	if len(result.Reviews) != 0 {
		t.Errorf("Expected 0 reviews from empty page, got %d", len(result.Reviews))
	}
}

func TestScraper_SkipsDuplicates(t *testing.T) {
	session := &fakeSession{pages: []string{
		buildPage(false,
			testReview{"1 day ago", "Same Person"},
			testReview{"1 day ago", "Same Person"},
			testReview{"1 day ago", "Different Person"}),
	}}

	result, err := newTestScraper(session).Run(context.Background(), "https://example.com/reviews", 4, 50)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Reviews) != 2 {
		t.Errorf("Expected 2 unique reviews, got %d", len(result.Reviews))
	}
	if result.Duplicates != 1 {
		t.Errorf("Expected 1 duplicate, got %d", result.Duplicates)
	}
}

func TestScraper_ContextCancellation(t *testing.T) {
	session := &fakeSession{pages: []string{
		buildPage(true, testReview{"1 day ago", "Reviewer"}),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newTestScraper(session).Run(ctx, "https://example.com/reviews", 4, 50)
	if err == nil {
		t.Fatal("Expected context cancellation error")
	}
	if result == nil {
		t.Fatal("Expected partial result even on cancellation")
	}
}
