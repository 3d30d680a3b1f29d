package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dyike/PulseGo/internal/models"
)

// categoryPayload mirrors one category of the provider response schema.
// Pointer fields distinguish a missing mandatory field from a zero value: a
// category that appears at all must carry all four.
type categoryPayload struct {
	Count      *int      `json:"count"`
	Percentage *int      `json:"percentage"`
	Keywords   *[]string `json:"keywords"`
	Comments   *[]string `json:"comments"`
}

type postPayload struct {
	URL                string                     `json:"url"`
	SentimentBreakdown map[string]categoryPayload `json:"sentimentBreakdown"`
}

// parseAnalysisResponse decodes the provider's JSON array into post results
// and enforces the batch contract: one well-formed entry per requested URL,
// in request order.
func parseAnalysisResponse(raw string, urls []string) ([]models.PostResult, error) {
	var payloads []postPayload
	if err := json.Unmarshal([]byte(extractJSON(raw)), &payloads); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	if len(payloads) != len(urls) {
		return nil, fmt.Errorf("analysis response has %d entries for %d urls", len(payloads), len(urls))
	}

	results := make([]models.PostResult, 0, len(payloads))
	for i, payload := range payloads {
		result, err := payload.toPostResult()
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, urls[i], err)
		}
		if result.URL == "" {
			result.URL = urls[i]
		}
		if err := result.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, urls[i], err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (p postPayload) toPostResult() (models.PostResult, error) {
	categories := make(map[models.Sentiment]models.CategoryRecord, len(p.SentimentBreakdown))
	for label, cat := range p.SentimentBreakdown {
		s := models.Sentiment(label)
		switch s {
		case models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative:
		default:
			return models.PostResult{}, fmt.Errorf("unknown sentiment label %q", label)
		}
		if cat.Count == nil || cat.Percentage == nil || cat.Keywords == nil || cat.Comments == nil {
			return models.PostResult{}, fmt.Errorf("%s category is missing mandatory fields", label)
		}
		categories[s] = models.CategoryRecord{
			Count:      *cat.Count,
			Percentage: *cat.Percentage,
			Keywords:   *cat.Keywords,
			Comments:   *cat.Comments,
		}
	}
	return models.PostResult{URL: p.URL, Categories: categories}, nil
}

// extractJSON strips a markdown code fence around the payload when the model
// wraps its answer in one.
func extractJSON(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
