package review

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const fullContainerHTML = `
<div class="DsOcnf">
  <div class="oiQd1c">The staff was very helpful. Great store!</div>
  <div class="mjZtse wjs4p">Branch: CAI0042</div>
  <div class="Wxf3Bf wUfJz">3 days ago</div>
  <div class="YMWsEc dv8URd">
    <span class="DPvwYc L12a3c z3FsAc"></span>
    <span class="DPvwYc L12a3c z3FsAc"></span>
    <span class="DPvwYc L12a3c z3FsAc"></span>
    <span class="DPvwYc L12a3c z3FsAc"></span>
    <span class="DPvwYc"></span>
  </div>
  <div class="z2S9Hc">Mona Hassan</div>
</div>`

func containerSelection(t *testing.T, html string) *goquery.Selection {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	sel := doc.Find(ContainerSelector).First()
	if sel.Length() == 0 {
		t.Fatal("No review container found in test HTML")
	}
	return sel
}

func TestExtractor_AllFields(t *testing.T) {
	extractor := NewExtractor()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	r := extractor.Run(containerSelection(t, fullContainerHTML), now)

	if r.Text != "The staff was very helpful. Great store!" {
		t.Errorf("Unexpected review text: %q", r.Text)
	}
	if r.StoreCode != "CAI0042" {
		t.Errorf("Expected store code 'CAI0042', got %q", r.StoreCode)
	}
	if r.DateText != "3 days ago" {
		t.Errorf("Expected date text '3 days ago', got %q", r.DateText)
	}
	if r.ParsedDate == nil {
		t.Fatal("Expected parsed date, got nil")
	}
	expected := now.AddDate(0, 0, -3)
	if !r.ParsedDate.Equal(expected) {
		t.Errorf("Expected parsed date %v, got %v", expected, *r.ParsedDate)
	}
	if r.Stars != 4 {
		t.Errorf("Expected 4 filled stars, got %d", r.Stars)
	}
	if r.ReviewerName != "Mona Hassan" {
		t.Errorf("Expected reviewer 'Mona Hassan', got %q", r.ReviewerName)
	}
	if r.ScrapedAt != now {
		t.Errorf("Expected scrape timestamp %v, got %v", now, r.ScrapedAt)
	}
	if r.ContentHash == "" {
		t.Error("Expected non-empty content hash")
	}
}

func TestExtractor_MissingFieldsUseSentinels(t *testing.T) {
	extractor := NewExtractor()
	now := time.Now()

	r := extractor.Run(containerSelection(t, `<div class="DsOcnf"></div>`), now)

	if r.Text != SentinelNA {
		t.Errorf("Expected text sentinel %q, got %q", SentinelNA, r.Text)
	}
	if r.StoreCode != SentinelNA {
		t.Errorf("Expected store code sentinel %q, got %q", SentinelNA, r.StoreCode)
	}
	if r.DateText != SentinelUnknownDate {
		t.Errorf("Expected date sentinel %q, got %q", SentinelUnknownDate, r.DateText)
	}
	if r.Stars != 0 {
		t.Errorf("Expected 0 stars, got %d", r.Stars)
	}
	if r.ReviewerName != SentinelNA {
		t.Errorf("Expected reviewer sentinel %q, got %q", SentinelNA, r.ReviewerName)
	}

	// Sentinel date text is unparseable, so the record is out of range
	if r.ParsedDate != nil {
		t.Errorf("Expected nil parsed date for sentinel date text, got %v", *r.ParsedDate)
	}
}

func TestExtractor_StoreCodeRegex(t *testing.T) {
	extractor := NewExtractor()
	now := time.Now()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"code with prefix", "Store code: ALEX001", "ALEX001"},
		{"bare code", "GIZ9", "GIZ9"},
		{"too short", "AB1", SentinelNA},
		{"lowercase only", "branch cairo", SentinelNA},
		{"first of several", "CAI0042 ALEX001", "CAI0042"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			html := `<div class="DsOcnf"><div class="mjZtse wjs4p">` + test.raw + `</div></div>`
			r := extractor.Run(containerSelection(t, html), now)
			if r.StoreCode != test.expected {
				t.Errorf("Store code for %q: expected %q, got %q", test.raw, test.expected, r.StoreCode)
			}
		})
	}
}

func TestSplitTranslated(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		expectedEnglish string
		expectedArabic  string
	}{
		{
			name:            "no marker",
			text:            "Great service all around",
			expectedEnglish: "Great service all around",
			expectedArabic:  "",
		},
		{
			name:            "single marker with original",
			text:            "(Translated by Google) Great service (Original) خدمة رائعة",
			expectedEnglish: "Great service",
			expectedArabic:  "خدمة رائعة",
		},
		{
			name:            "original before translation",
			text:            "خدمة رائعة (Original) (Translated by Google) intro (Translated by Google) Great service",
			expectedEnglish: "Great service",
			expectedArabic:  "خدمة رائعة",
		},
		{
			name:            "single marker without original",
			text:            "(Translated by Google) Great service",
			expectedEnglish: "Great service",
			expectedArabic:  "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			english, arabic := SplitTranslated(test.text)
			if english != test.expectedEnglish {
				t.Errorf("English: expected %q, got %q", test.expectedEnglish, english)
			}
			if arabic != test.expectedArabic {
				t.Errorf("Arabic: expected %q, got %q", test.expectedArabic, arabic)
			}
		})
	}
}

func TestContentHash_Deduplication(t *testing.T) {
	extractor := NewExtractor()
	now := time.Now()

	a := extractor.Run(containerSelection(t, fullContainerHTML), now)
	b := extractor.Run(containerSelection(t, fullContainerHTML), now.Add(time.Minute))

	// Same text, reviewer and date text hash identically even when
	// scraped at different times
	if a.ContentHash != b.ContentHash {
		t.Error("Identical reviews should produce identical content hashes")
	}

	differentReviewer := strings.Replace(fullContainerHTML, "Mona Hassan", "Omar Said", 1)
	c := extractor.Run(containerSelection(t, differentReviewer), now)
	if a.ContentHash == c.ContentHash {
		t.Error("Different reviewers should produce different content hashes")
	}
}
