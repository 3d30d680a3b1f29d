package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dyike/PulseGo/internal/models"
)

const (
	// FileName is the fixed name of the exported CSV artifact.
	FileName = "reddit_sentiment_analysis.csv"
	// MIMEType identifies the export payload.
	MIMEType = "text/csv;charset=utf-8"
)

var header = strings.Join([]string{
	"URL", "Sentiment", "Percentage", "Comment Count", "Keywords", "Sample Comments",
}, ",")

// ToCSV serializes results into CSV text: the header line, then one row per
// reported category of each result, categories in positive, neutral,
// negative order. URL, keywords, and comments are always quoted; numeric
// fields and the sentiment name never are. Lines are joined with "\n" and
// the text carries no trailing newline.
func ToCSV(results []models.PostResult) string {
	lines := []string{header}

	for _, result := range results {
		for _, s := range models.SentimentOrder {
			rec, ok := result.Category(s)
			if !ok {
				continue
			}
			row := strings.Join([]string{
				quote(result.URL),
				s.DisplayName(),
				strconv.Itoa(rec.Percentage),
				strconv.Itoa(rec.Count),
				quoteJoined(rec.Keywords),
				quoteJoined(rec.Comments),
			}, ",")
			lines = append(lines, row)
		}
	}

	return strings.Join(lines, "\n")
}

// WriteFile writes the CSV for results under dir and returns the file path.
func WriteFile(results []models.PostResult, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(ToCSV(results)), 0o644); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return path, nil
}

func quote(field string) string {
	return `"` + field + `"`
}

// quoteJoined joins items with "; " and escapes embedded quotes by doubling
// them, so a comment like `say "hi"` survives a round trip through CSV.
func quoteJoined(items []string) string {
	joined := strings.Join(items, "; ")
	return `"` + strings.ReplaceAll(joined, `"`, `""`) + `"`
}
