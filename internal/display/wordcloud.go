package display

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/dyike/PulseGo/internal/models"
)

// KeywordWeight pairs a keyword with its repetition count.
type KeywordWeight struct {
	Keyword string
	Weight  int
}

// CloudLayouter turns weighted keywords into a rendered text block. The
// rest of the pipeline depends only on this capability, never on how a
// particular layouter arranges words.
type CloudLayouter interface {
	Layout(pairs []KeywordWeight) (string, error)
}

// CloudResult delivers one category's finished cloud, or its placeholder
// when layout failed.
type CloudResult struct {
	Sentiment models.Sentiment
	Rendered  string
}

// CountWeights collapses a repetition-encoded keyword list into weighted
// pairs, heaviest first, ties in first-appearance order.
func CountWeights(keywords []string) []KeywordWeight {
	counts := make(map[string]int, len(keywords))
	var order []string
	for _, keyword := range keywords {
		if counts[keyword] == 0 {
			order = append(order, keyword)
		}
		counts[keyword]++
	}

	pairs := make([]KeywordWeight, 0, len(order))
	for _, keyword := range order {
		pairs = append(pairs, KeywordWeight{Keyword: keyword, Weight: counts[keyword]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Weight > pairs[j].Weight
	})
	return pairs
}

// RenderClouds lays out each reported category's keywords concurrently and
// hands every finished block to done, possibly out of category order. A
// failed layout degrades that one category to a textual placeholder; the
// others are unaffected. RenderClouds returns once every block has been
// delivered. done calls are serialized.
func RenderClouds(result *models.PostResult, layouter CloudLayouter, done func(CloudResult)) {
	var mu sync.Mutex
	deliver := func(res CloudResult) {
		mu.Lock()
		defer mu.Unlock()
		done(res)
	}

	var g errgroup.Group
	for _, s := range models.SentimentOrder {
		rec, ok := result.Category(s)
		if !ok {
			continue
		}
		g.Go(func() error {
			rendered, err := layouter.Layout(CountWeights(rec.Keywords))
			if err != nil {
				log.Printf("[display] %s cloud: %v", s, err)
				rendered = cloudPlaceholder(s)
			}
			deliver(CloudResult{Sentiment: s, Rendered: rendered})
			return nil
		})
	}
	g.Wait()
}

func cloudPlaceholder(s models.Sentiment) string {
	return dimStyle.Render(fmt.Sprintf("(no keyword cloud for %s comments)", s))
}

// Cloud weight styles
var (
	cloudHeavyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED"))

	cloudMediumStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3B82F6"))

	cloudLightStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280"))
)

// TermCloud lays keywords out in wrapped rows, styling each word by its
// weight relative to the heaviest.
type TermCloud struct {
	Width int
}

// NewTermCloud creates a layouter wrapping at the standard display width.
func NewTermCloud() *TermCloud {
	return &TermCloud{Width: 75}
}

// Layout implements CloudLayouter.
func (t *TermCloud) Layout(pairs []KeywordWeight) (string, error) {
	if len(pairs) == 0 {
		return "", errors.New("no keywords to lay out")
	}

	maxWeight := pairs[0].Weight
	for _, pair := range pairs {
		if pair.Weight > maxWeight {
			maxWeight = pair.Weight
		}
	}

	var lines []string
	var line strings.Builder
	lineLen := 0
	for _, pair := range pairs {
		word := pair.Keyword
		if pair.Weight > 1 {
			word = fmt.Sprintf("%s(%d)", pair.Keyword, pair.Weight)
		}
		if lineLen > 0 && lineLen+2+len(word) > t.Width {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteString("  ")
			lineLen += 2
		}
		line.WriteString(t.styleFor(pair.Weight, maxWeight).Render(word))
		lineLen += len(word)
	}
	if lineLen > 0 {
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n"), nil
}

func (t *TermCloud) styleFor(weight, maxWeight int) lipgloss.Style {
	switch {
	case weight >= maxWeight && maxWeight > 1:
		return cloudHeavyStyle
	case weight > 1:
		return cloudMediumStyle
	default:
		return cloudLightStyle
	}
}
