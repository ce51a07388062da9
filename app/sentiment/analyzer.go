package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/review"
)

var sentenceSplitRegex = regexp.MustCompile(`[.!?]+`)

// Result holds the dual-context sentiment of a single review. Attached
// once, never mutated.
type Result struct {
	StaffContext string
	StaffScore   float64
	StaffLabel   string
	StoreContext string
	StoreScore   float64
	StoreLabel   string
}

// ScoredReview pairs a scraped review with its sentiment result and the
// attributed staff member, if any
type ScoredReview struct {
	review.Review
	Result
	StaffName string
}

// Analyzer scores review text along two independent axes: staff/service
// and store/location. Scoring is deterministic for identical inputs.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
	cfg   Config
}

func NewAnalyzer(cfg Config) *Analyzer {
	cfg.setDefaults()
	return &Analyzer{
		vader: govader.NewSentimentIntensityAnalyzer(),
		cfg:   cfg,
	}
}

// Run scores a batch of reviews and attributes each to a known staff
// name where one appears in the text
func (a *Analyzer) Run(reviews []review.Review, knownNames []string) []ScoredReview {
	scored := make([]ScoredReview, 0, len(reviews))
	for _, r := range reviews {
		text := scoringText(r)
		scored = append(scored, ScoredReview{
			Review:    r,
			Result:    a.AnalyzeReview(text, r.Stars),
			StaffName: MatchName(text, knownNames),
		})
	}
	return scored
}

// AnalyzeReview scores one review text against both keyword contexts,
// shifting each non-empty context's score by the star rating prior.
func (a *Analyzer) AnalyzeReview(text string, stars int) Result {
	staffContext := a.ExtractContext(text, a.cfg.StaffKeywords)
	storeContext := a.ExtractContext(text, a.cfg.StoreKeywords)

	staffScore := a.adjustScore(a.Score(staffContext), staffContext, stars)
	storeScore := a.adjustScore(a.Score(storeContext), storeContext, stars)

	return Result{
		StaffContext: staffContext,
		StaffScore:   staffScore,
		StaffLabel:   a.Label(staffScore, staffContext != ""),
		StoreContext: storeContext,
		StoreScore:   storeScore,
		StoreLabel:   a.Label(storeScore, storeContext != ""),
	}
}

// ExtractContext returns the review sentences containing any of the
// keywords, joined by spaces. A sentence may belong to both contexts,
// one, or neither.
func (a *Analyzer) ExtractContext(text string, keywords []string) string {
	if text == "" {
		return ""
	}

	sentences := sentenceSplitRegex.Split(text, -1)
	var matched []string

	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		for _, keyword := range keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				matched = append(matched, strings.TrimSpace(sentence))
				break
			}
		}
	}

	return strings.Join(matched, " ")
}

// Score returns the VADER compound score in [-1, 1], or 0 for empty
// text
func (a *Analyzer) Score(text string) float64 {
	if text == "" {
		return 0
	}
	return a.vader.PolarityScores(text).Compound
}

// Label converts a score into a categorical label. An empty context is
// always "No Context"; a true zero score with context labels neutral,
// so the two states stay distinguishable.
func (a *Analyzer) Label(score float64, hasContext bool) string {
	if !hasContext {
		return LabelNoContext
	}

	switch {
	case score >= a.cfg.PositiveThreshold:
		return LabelPositive
	case score <= a.cfg.NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// adjustScore applies the linear star rating prior: (stars - 3) * weight,
// clamped to the compound score range. Empty contexts are left at zero so
// a high star rating cannot invent sentiment where no context exists.
func (a *Analyzer) adjustScore(score float64, context string, stars int) float64 {
	if context == "" {
		return score
	}

	adjusted := score + float64(stars-3)*a.cfg.StarWeight
	if adjusted > 1 {
		return 1
	}
	if adjusted < -1 {
		return -1
	}
	return adjusted
}

// scoringText prefers the English half of a translated review; keyword
// lists and the VADER lexicon are English
func scoringText(r review.Review) string {
	if r.EnglishText != "" {
		return r.EnglishText
	}
	return r.Text
}
