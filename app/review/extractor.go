package review

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

var storeCodeRegex = regexp.MustCompile(`\b[A-Z0-9]{4,}\b`)

// Extractor pulls structured fields from review containers. Each field
// is read independently; a missing sub-element yields the field's
// sentinel instead of aborting the record.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Run extracts a review record from a single container selection
func (e *Extractor) Run(sel *goquery.Selection, now time.Time) Review {
	r := Review{
		Text:         SentinelNA,
		StoreCode:    SentinelNA,
		DateText:     SentinelUnknownDate,
		ReviewerName: SentinelNA,
		ScrapedAt:    now,
	}

	if text := strings.TrimSpace(sel.Find(TextSelector).First().Text()); text != "" {
		r.Text = norm.NFC.String(text)
	}

	if raw := strings.TrimSpace(sel.Find(StoreCodeSelector).First().Text()); raw != "" {
		if code := storeCodeRegex.FindString(raw); code != "" {
			r.StoreCode = code
		}
	}

	if dateText := strings.TrimSpace(sel.Find(DateSelector).First().Text()); dateText != "" {
		r.DateText = dateText
	}

	r.Stars = sel.Find(StarContainerSelector).First().Find(FilledStarSelector).Length()

	if name := strings.TrimSpace(sel.Find(ReviewerSelector).First().Text()); name != "" {
		r.ReviewerName = name
	}

	r.ParsedDate = ParseDate(r.DateText, now)
	r.EnglishText, r.ArabicText = SplitTranslated(r.Text)
	r.ContentHash = generateContentHash(r)

	return r
}

// SplitTranslated separates a machine-translated review into its English
// and Arabic halves using the markers Google inserts. Text without a
// translation marker is returned unchanged as English.
func SplitTranslated(text string) (english, arabic string) {
	if !strings.Contains(text, TranslatedMarker) {
		return strings.TrimSpace(text), ""
	}

	parts := strings.Split(text, TranslatedMarker)
	if len(parts) >= 3 {
		english = strings.TrimSpace(parts[2])
		arabic = strings.TrimSpace(strings.ReplaceAll(parts[0], OriginalMarker, ""))
		return english, arabic
	}

	rest := parts[1]
	if before, after, found := strings.Cut(rest, OriginalMarker); found {
		english = strings.TrimSpace(before)
		arabic = strings.TrimSpace(after)
	} else {
		english = strings.TrimSpace(rest)
	}
	return english, arabic
}

// generateContentHash builds the de-duplication key. Two reviews with
// the same text, reviewer and date text are considered the same review.
func generateContentHash(r Review) string {
	content := fmt.Sprintf("%s|%s|%s",
		r.Text,
		r.ReviewerName,
		r.DateText)

	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
