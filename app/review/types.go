package review

import "time"

// Field sentinels used when a sub-element is missing from a review
// container. Partial records are expected and kept.
const (
	SentinelNA          = "N/A"
	SentinelUnknownDate = "Unknown"
)

// Review is a single scraped review. Immutable once appended to the
// result set.
type Review struct {
	Text         string
	EnglishText  string
	ArabicText   string
	StoreCode    string
	DateText     string
	ParsedDate   *time.Time
	Stars        int
	ReviewerName string
	ScrapedAt    time.Time
	ContentHash  string
}
