package session

import (
	"errors"
	"testing"

	"github.com/dyike/PulseGo/internal/models"
)

func summaryResult() *models.PostResult {
	return &models.PostResult{
		URL: models.AllPostsLabel,
		Categories: map[models.Sentiment]models.CategoryRecord{
			models.SentimentPositive: {Count: 3, Percentage: 100},
		},
	}
}

func individualResults(n int) []models.PostResult {
	results := make([]models.PostResult, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, models.PostResult{
			URL: "https://reddit.com/r/golang/comments/p",
			Categories: map[models.Sentiment]models.CategoryRecord{
				models.SentimentPositive: {Count: 1, Percentage: 100},
			},
		})
	}
	return results
}

func TestSelectorTwoPostsExposeThreeViews(t *testing.T) {
	summary := summaryResult()
	selector := NewViewSelector(summary, individualResults(2))

	if selector.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", selector.Len())
	}
	if selector.Current().Result != summary {
		t.Error("current view is not the summary after init")
	}
	if selector.Entries()[0].Label != SummaryLabel {
		t.Errorf("first label = %q, want %q", selector.Entries()[0].Label, SummaryLabel)
	}
	if selector.Entries()[1].Label != "Post 1" || selector.Entries()[2].Label != "Post 2" {
		t.Errorf("post labels = %q, %q", selector.Entries()[1].Label, selector.Entries()[2].Label)
	}
}

func TestSelectorSinglePostShowsSummaryOnly(t *testing.T) {
	selector := NewViewSelector(summaryResult(), individualResults(1))

	if selector.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", selector.Len())
	}
	if err := selector.Select(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Select(5) error = %v, want ErrOutOfRange", err)
	}
	if selector.ActiveIndex() != 0 {
		t.Errorf("active index moved to %d after failed select", selector.ActiveIndex())
	}
}

func TestSelectorExactlyOneActive(t *testing.T) {
	selector := NewViewSelector(summaryResult(), individualResults(3))

	if err := selector.Select(2); err != nil {
		t.Fatalf("Select(2): %v", err)
	}
	if selector.ActiveIndex() != 2 {
		t.Errorf("active index = %d, want 2", selector.ActiveIndex())
	}
	if selector.Current().Label != "Post 2" {
		t.Errorf("current label = %q, want Post 2", selector.Current().Label)
	}

	if err := selector.Select(0); err != nil {
		t.Fatalf("Select(0): %v", err)
	}
	if selector.ActiveIndex() != 0 {
		t.Errorf("active index = %d, want 0 after reselect", selector.ActiveIndex())
	}

	if err := selector.Select(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Select(-1) error = %v, want ErrOutOfRange", err)
	}
}

func TestSelectorReinitDiscardsSelection(t *testing.T) {
	selector := NewViewSelector(summaryResult(), individualResults(2))
	if err := selector.Select(2); err != nil {
		t.Fatalf("Select(2): %v", err)
	}

	selector = NewViewSelector(summaryResult(), individualResults(2))
	if selector.ActiveIndex() != 0 {
		t.Errorf("fresh selector active index = %d, want 0", selector.ActiveIndex())
	}
}
