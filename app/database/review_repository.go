package database

import (
	"database/sql"
	"fmt"

	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/sentiment"
)

// SQLiteReviewRepository handles database operations for scored reviews
type SQLiteReviewRepository struct {
	db *DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *DB) *SQLiteReviewRepository {
	return &SQLiteReviewRepository{db: db}
}

// CheckDuplicate reports whether a review with the given content hash
// has already been archived
func (r *SQLiteReviewRepository) CheckDuplicate(contentHash string) (bool, error) {
	var hash string
	err := r.db.QueryRow("SELECT content_hash FROM reviews WHERE content_hash = ? LIMIT 1", contentHash).Scan(&hash)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate: %w", err)
	}
	return true, nil
}

// UpsertReview archives a scored review keyed on its content hash.
// Re-scraping the same review refreshes the sentiment columns instead
// of inserting a second row. Returns true when a new row was inserted.
func (r *SQLiteReviewRepository) UpsertReview(profileID string, scored sentiment.ScoredReview) (bool, error) {
	exists, err := r.CheckDuplicate(scored.ContentHash)
	if err != nil {
		return false, err
	}

	_, err = r.db.Exec(`
		INSERT INTO reviews (
			content_hash, profile_id, text, english_text, arabic_text,
			store_code, date_text, parsed_date, stars, reviewer_name,
			staff_name, staff_context, staff_score, staff_label,
			store_context, store_score, store_label, scraped_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (content_hash) DO UPDATE SET
			staff_name = excluded.staff_name,
			staff_context = excluded.staff_context,
			staff_score = excluded.staff_score,
			staff_label = excluded.staff_label,
			store_context = excluded.store_context,
			store_score = excluded.store_score,
			store_label = excluded.store_label,
			scraped_at = excluded.scraped_at
	`, scored.ContentHash, profileID, scored.Text, scored.EnglishText, scored.ArabicText,
		scored.StoreCode, scored.DateText, scored.ParsedDate, scored.Stars, scored.ReviewerName,
		scored.StaffName, scored.StaffContext, scored.StaffScore, scored.StaffLabel,
		scored.StoreContext, scored.StoreScore, scored.StoreLabel, scored.ScrapedAt)

	if err != nil {
		return false, fmt.Errorf("failed to store review: %w", err)
	}

	return !exists, nil
}

// GetReviewCount returns the number of archived reviews for a profile
func (r *SQLiteReviewRepository) GetReviewCount(profileID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM reviews WHERE profile_id = ?", profileID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get review count: %w", err)
	}
	return count, nil
}
