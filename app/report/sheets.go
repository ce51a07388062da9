package report

import (
	"fmt"
	"sort"

	"github.com/AhmedAbdelazizSeif/Google-Business-Profile-Reviews-Scrapper-Sentiment-Analysis/app/sentiment"
)

// Label used for reviews that matched no known staff name
const unattributedName = "Unattributed"

// BuildStaffSummarySheet tallies staff sentiment labels per attributed
// staff member
func BuildStaffSummarySheet(scored []sentiment.ScoredReview, date string) Sheet {
	type tally struct {
		positive  int
		negative  int
		neutral   int
		noContext int
	}

	tallies := make(map[string]*tally)
	for _, s := range scored {
		name := s.StaffName
		if name == "" {
			name = unattributedName
		}

		t, ok := tallies[name]
		if !ok {
			t = &tally{}
			tallies[name] = t
		}

		switch s.StaffLabel {
		case sentiment.LabelPositive:
			t.positive++
		case sentiment.LabelNegative:
			t.negative++
		case sentiment.LabelNeutral:
			t.neutral++
		default:
			t.noContext++
		}
	}

	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]interface{}, 0, len(names))
	for _, name := range names {
		t := tallies[name]
		total := t.positive + t.negative + t.neutral + t.noContext
		rows = append(rows, []interface{}{name, t.positive, t.negative, t.neutral, t.noContext, total})
	}

	title := fmt.Sprintf("شيت المدح والذم - %s", date)
	return Sheet{
		Name:    title,
		Title:   title,
		Scheme:  "primary",
		Columns: []string{"Staff Name", "Positive", "Negative", "Neutral", "No Context", "Total"},
		Rows:    rows,
	}
}

// BuildReviewsSheet lists every scored review with both sentiment axes
func BuildReviewsSheet(scored []sentiment.ScoredReview) Sheet {
	rows := make([][]interface{}, 0, len(scored))
	for _, s := range scored {
		rows = append(rows, []interface{}{
			s.DateText,
			s.Stars,
			s.StoreCode,
			s.ReviewerName,
			s.Text,
			s.StaffName,
			s.StaffLabel,
			s.StoreLabel,
		})
	}

	return Sheet{
		Name:    "📝 All Reviews",
		Title:   "All Reviews",
		Scheme:  "secondary",
		Columns: []string{"Date", "Stars", "Store Code", "Reviewer", "Review", "Staff Name", "Staff Sentiment", "Store Sentiment"},
		Rows:    rows,
	}
}
