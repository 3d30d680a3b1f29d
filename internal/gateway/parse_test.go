package gateway

import (
	"strings"
	"testing"

	"github.com/dyike/PulseGo/internal/models"
)

const sampleResponse = `[
  {
    "url": "https://reddit.com/r/golang/comments/a",
    "sentimentBreakdown": {
      "positive": {"count": 2, "percentage": 67, "keywords": ["good", "good"], "comments": ["love it"]},
      "negative": {"count": 1, "percentage": 33, "keywords": [], "comments": []}
    }
  }
]`

func TestParseAnalysisResponse(t *testing.T) {
	urls := []string{"https://reddit.com/r/golang/comments/a"}

	results, err := parseAnalysisResponse(sampleResponse, urls)
	if err != nil {
		t.Fatalf("parseAnalysisResponse: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	result := results[0]
	if result.URL != urls[0] {
		t.Errorf("url = %q, want %q", result.URL, urls[0])
	}
	positive, ok := result.Category(models.SentimentPositive)
	if !ok {
		t.Fatal("positive category missing")
	}
	if positive.Count != 2 || positive.Percentage != 67 {
		t.Errorf("positive = %+v", positive)
	}
	if len(positive.Keywords) != 2 || positive.Keywords[0] != "good" {
		t.Errorf("positive keywords = %v", positive.Keywords)
	}
	if _, ok := result.Category(models.SentimentNeutral); ok {
		t.Error("neutral category should be absent")
	}
}

func TestParseAnalysisResponseStripsCodeFence(t *testing.T) {
	fenced := "```json\n" + sampleResponse + "\n```"
	urls := []string{"https://reddit.com/r/golang/comments/a"}

	results, err := parseAnalysisResponse(fenced, urls)
	if err != nil {
		t.Fatalf("parseAnalysisResponse: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

func TestParseAnalysisResponseFillsMissingURL(t *testing.T) {
	raw := `[{"url": "", "sentimentBreakdown": {"positive": {"count": 1, "percentage": 100, "keywords": [], "comments": []}}}]`
	urls := []string{"https://reddit.com/r/golang/comments/b"}

	results, err := parseAnalysisResponse(raw, urls)
	if err != nil {
		t.Fatalf("parseAnalysisResponse: %v", err)
	}
	if results[0].URL != urls[0] {
		t.Errorf("url = %q, want request url substituted", results[0].URL)
	}
}

func TestParseAnalysisResponseRejectsMissingMandatoryField(t *testing.T) {
	raw := `[{"url": "https://reddit.com/x", "sentimentBreakdown": {"positive": {"count": 1, "percentage": 100, "comments": []}}}]`

	_, err := parseAnalysisResponse(raw, []string{"https://reddit.com/x"})
	if err == nil || !strings.Contains(err.Error(), "missing mandatory fields") {
		t.Errorf("error = %v, want missing mandatory fields", err)
	}
}

func TestParseAnalysisResponseRejectsUnknownLabel(t *testing.T) {
	raw := `[{"url": "https://reddit.com/x", "sentimentBreakdown": {"sarcastic": {"count": 1, "percentage": 100, "keywords": [], "comments": []}}}]`

	_, err := parseAnalysisResponse(raw, []string{"https://reddit.com/x"})
	if err == nil || !strings.Contains(err.Error(), "unknown sentiment label") {
		t.Errorf("error = %v, want unknown sentiment label", err)
	}
}

func TestParseAnalysisResponseRejectsCountMismatch(t *testing.T) {
	urls := []string{
		"https://reddit.com/r/golang/comments/a",
		"https://reddit.com/r/golang/comments/b",
	}

	_, err := parseAnalysisResponse(sampleResponse, urls)
	if err == nil || !strings.Contains(err.Error(), "1 entries for 2 urls") {
		t.Errorf("error = %v, want entry count mismatch", err)
	}
}

func TestParseAnalysisResponseRejectsNonJSON(t *testing.T) {
	_, err := parseAnalysisResponse("the comments are mostly positive", []string{"https://reddit.com/x"})
	if err == nil {
		t.Error("prose response accepted")
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`[]`, `[]`},
		{"```json\n[]\n```", `[]`},
		{"```\n[]\n```", `[]`},
		{"  [1]  ", `[1]`},
	}
	for _, tc := range cases {
		if got := extractJSON(tc.in); got != tc.want {
			t.Errorf("extractJSON(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
