package models

import (
	"fmt"
	"math"
)

// Sentiment identifies one comment sentiment category.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// SentimentOrder is the canonical category order for rendering and export.
var SentimentOrder = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// AllPostsLabel is the URL sentinel carried by the synthetic aggregate result.
const AllPostsLabel = "All Posts"

// DisplayName returns the capitalized form used in views and CSV rows.
func (s Sentiment) DisplayName() string {
	switch s {
	case SentimentPositive:
		return "Positive"
	case SentimentNeutral:
		return "Neutral"
	case SentimentNegative:
		return "Negative"
	default:
		return string(s)
	}
}

// CategoryRecord is the per-category slice of one post's sentiment breakdown.
type CategoryRecord struct {
	Count      int      `json:"count"`
	Percentage int      `json:"percentage"`
	Keywords   []string `json:"keywords"`
	Comments   []string `json:"comments"`
}

// PostResult is the sentiment breakdown of a single post, or of the synthetic
// aggregate when URL is AllPostsLabel. A category missing from Categories
// means the analysis reported no data for it, not a zero count.
type PostResult struct {
	URL        string                       `json:"url"`
	Categories map[Sentiment]CategoryRecord `json:"categories"`
}

// Category returns the record for s and whether the analysis reported it.
func (p PostResult) Category(s Sentiment) (CategoryRecord, bool) {
	rec, ok := p.Categories[s]
	return rec, ok
}

// TotalComments sums the counts of all reported categories.
func (p PostResult) TotalComments() int {
	total := 0
	for _, s := range SentimentOrder {
		if rec, ok := p.Categories[s]; ok {
			total += rec.Count
		}
	}
	return total
}

// RoundPercent converts a category count into a whole percentage of total,
// rounded half away from zero. A zero total yields zero for every category.
func RoundPercent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(count) / float64(total)))
}

// Validate checks the structural invariants of a breakdown: non-negative
// counts, percentages in [0,100] that sum to roughly 100 unless every count
// is zero.
func (p PostResult) Validate() error {
	if p.URL == "" {
		return fmt.Errorf("post result has no url")
	}

	percentSum := 0
	for _, s := range SentimentOrder {
		rec, ok := p.Categories[s]
		if !ok {
			continue
		}
		if rec.Count < 0 {
			return fmt.Errorf("%s count is negative: %d", s, rec.Count)
		}
		if rec.Percentage < 0 || rec.Percentage > 100 {
			return fmt.Errorf("%s percentage out of range: %d", s, rec.Percentage)
		}
		percentSum += rec.Percentage
	}

	if p.TotalComments() == 0 {
		if percentSum != 0 {
			return fmt.Errorf("percentages sum to %d with no comments", percentSum)
		}
		return nil
	}
	if percentSum < 98 || percentSum > 102 {
		return fmt.Errorf("category percentages sum to %d, want ~100", percentSum)
	}
	return nil
}
