package database

import (
	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/sentiment"
)

type ReviewRepository interface {
	UpsertReview(profileID string, scored sentiment.ScoredReview) (bool, error)
	GetReviewCount(profileID string) (int, error)
	CheckDuplicate(contentHash string) (bool, error)
}
