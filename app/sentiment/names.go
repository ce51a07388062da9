package sentiment

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

const namesColumn = "english_name"

// LoadKnownNames reads the known staff names from a CSV file. The
// column named "english_name" is used when a header is present,
// otherwise the first column.
func LoadKnownNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open names file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse names file: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	column := 0
	start := 0
	for i, header := range records[0] {
		if strings.EqualFold(strings.TrimSpace(header), namesColumn) {
			column = i
			start = 1
			break
		}
	}

	var names []string
	for _, record := range records[start:] {
		if column >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[column])
		if name != "" {
			names = append(names, name)
		}
	}

	return names, nil
}

// MatchName returns the first known name appearing in the review text,
// or empty string when none matches. Matching is case-insensitive.
func MatchName(text string, names []string) string {
	lower := strings.ToLower(text)
	for _, name := range names {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}
