package display

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dyike/PulseGo/internal/models"
)

func TestCountWeights(t *testing.T) {
	pairs := CountWeights([]string{"good", "great", "good", "fast", "good", "great"})

	want := []KeywordWeight{
		{Keyword: "good", Weight: 3},
		{Keyword: "great", Weight: 2},
		{Keyword: "fast", Weight: 1},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("CountWeights = %v, want %v", pairs, want)
	}
}

func TestCountWeightsEmpty(t *testing.T) {
	if pairs := CountWeights(nil); len(pairs) != 0 {
		t.Errorf("CountWeights(nil) = %v, want empty", pairs)
	}
}

func TestTermCloudLayoutRejectsEmpty(t *testing.T) {
	cloud := NewTermCloud()
	if _, err := cloud.Layout(nil); err == nil {
		t.Error("Layout(nil) accepted empty input")
	}
}

func TestTermCloudLayoutSingleKeyword(t *testing.T) {
	cloud := NewTermCloud()
	rendered, err := cloud.Layout([]KeywordWeight{{Keyword: "solid", Weight: 1}})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !strings.Contains(rendered, "solid") {
		t.Errorf("rendered cloud %q lacks the keyword", rendered)
	}
}

func TestTermCloudLayoutShowsWeights(t *testing.T) {
	cloud := NewTermCloud()
	rendered, err := cloud.Layout([]KeywordWeight{
		{Keyword: "good", Weight: 3},
		{Keyword: "fast", Weight: 1},
	})
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !strings.Contains(rendered, "good(3)") {
		t.Errorf("rendered cloud %q lacks weighted keyword", rendered)
	}
	if strings.Contains(rendered, "fast(1)") {
		t.Errorf("rendered cloud %q annotates weight-1 keyword", rendered)
	}
}

func TestTermCloudLayoutWrapsLongInput(t *testing.T) {
	cloud := &TermCloud{Width: 20}
	pairs := []KeywordWeight{
		{Keyword: "alpha", Weight: 1},
		{Keyword: "bravo", Weight: 1},
		{Keyword: "charlie", Weight: 1},
		{Keyword: "delta", Weight: 1},
	}
	rendered, err := cloud.Layout(pairs)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !strings.Contains(rendered, "\n") {
		t.Errorf("narrow cloud did not wrap: %q", rendered)
	}
}

// stubLayouter fails on keyword lists below a minimum size.
type stubLayouter struct {
	minKeywords int
}

func (s *stubLayouter) Layout(pairs []KeywordWeight) (string, error) {
	if len(pairs) < s.minKeywords {
		return "", errors.New("too few keywords")
	}
	words := make([]string, len(pairs))
	for i, pair := range pairs {
		words[i] = pair.Keyword
	}
	return strings.Join(words, " "), nil
}

func TestRenderCloudsDeliversEveryReportedCategory(t *testing.T) {
	result := &models.PostResult{
		URL: "https://reddit.com/r/golang/comments/a",
		Categories: map[models.Sentiment]models.CategoryRecord{
			models.SentimentPositive: {Count: 2, Percentage: 67, Keywords: []string{"good", "good"}},
			models.SentimentNegative: {Count: 1, Percentage: 33, Keywords: []string{"slow"}},
		},
	}

	delivered := map[models.Sentiment]string{}
	RenderClouds(result, &stubLayouter{}, func(res CloudResult) {
		delivered[res.Sentiment] = res.Rendered
	})

	if len(delivered) != 2 {
		t.Fatalf("delivered %d clouds, want 2: %v", len(delivered), delivered)
	}
	if _, ok := delivered[models.SentimentNeutral]; ok {
		t.Error("unreported category got a cloud")
	}
	if !strings.Contains(delivered[models.SentimentPositive], "good") {
		t.Errorf("positive cloud = %q", delivered[models.SentimentPositive])
	}
}

func TestRenderCloudsDegradesFailedCategoryOnly(t *testing.T) {
	result := &models.PostResult{
		URL: "https://reddit.com/r/golang/comments/a",
		Categories: map[models.Sentiment]models.CategoryRecord{
			models.SentimentPositive: {Count: 2, Percentage: 67, Keywords: []string{"good", "great"}},
			models.SentimentNegative: {Count: 1, Percentage: 33, Keywords: []string{}},
		},
	}

	delivered := map[models.Sentiment]string{}
	RenderClouds(result, &stubLayouter{minKeywords: 1}, func(res CloudResult) {
		delivered[res.Sentiment] = res.Rendered
	})

	if len(delivered) != 2 {
		t.Fatalf("delivered %d clouds, want 2", len(delivered))
	}
	if !strings.Contains(delivered[models.SentimentNegative], "negative") {
		t.Errorf("failed category = %q, want placeholder text", delivered[models.SentimentNegative])
	}
	if !strings.Contains(delivered[models.SentimentPositive], "good") {
		t.Errorf("healthy category degraded too: %q", delivered[models.SentimentPositive])
	}
}
