package processing

import (
	"errors"

	"github.com/dyike/PulseGo/internal/models"
)

// ErrNoResults is returned when there are no post results to aggregate.
var ErrNoResults = errors.New("no post results to aggregate")

// Aggregate folds per-post breakdowns into the synthetic "All Posts" summary.
// Counts are summed and keywords and comments are concatenated in input
// order, duplicates included, so keyword repetition keeps encoding frequency
// across posts. Percentages are recomputed against the combined total. A
// category missing from a post contributes nothing to the summary.
func Aggregate(results []models.PostResult) (models.PostResult, error) {
	if len(results) == 0 {
		return models.PostResult{}, ErrNoResults
	}

	sums := make(map[models.Sentiment]*models.CategoryRecord, len(models.SentimentOrder))
	for _, s := range models.SentimentOrder {
		sums[s] = &models.CategoryRecord{Keywords: []string{}, Comments: []string{}}
	}

	for _, result := range results {
		for _, s := range models.SentimentOrder {
			rec, ok := result.Category(s)
			if !ok {
				continue
			}
			agg := sums[s]
			agg.Count += rec.Count
			agg.Keywords = append(agg.Keywords, rec.Keywords...)
			agg.Comments = append(agg.Comments, rec.Comments...)
		}
	}

	totalComments := 0
	for _, s := range models.SentimentOrder {
		totalComments += sums[s].Count
	}

	categories := make(map[models.Sentiment]models.CategoryRecord, len(sums))
	for _, s := range models.SentimentOrder {
		agg := sums[s]
		agg.Percentage = models.RoundPercent(agg.Count, totalComments)
		categories[s] = *agg
	}

	return models.PostResult{URL: models.AllPostsLabel, Categories: categories}, nil
}
