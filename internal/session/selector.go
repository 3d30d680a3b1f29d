package session

import (
	"errors"
	"fmt"

	"github.com/dyike/PulseGo/internal/models"
)

// ErrOutOfRange reports a selection index outside the selectable views.
// Hitting it means a caller bug, not a user mistake.
var ErrOutOfRange = errors.New("view index out of range")

// SummaryLabel is the display name of the aggregate view entry.
const SummaryLabel = "All Posts (Summary)"

// ViewEntry pairs a selectable label with the result it renders.
type ViewEntry struct {
	Label  string
	Result *models.PostResult
}

// ViewSelector tracks which result view is on screen. Exactly one entry is
// active at any time, and a new analysis run builds a fresh selector, so no
// selection state survives across runs.
type ViewSelector struct {
	entries []ViewEntry
	active  int
}

// NewViewSelector builds the views for one run: the aggregate summary first,
// then "Post N" entries per individual post. Individual entries exist only
// when the batch has more than one post, since a single-post summary carries
// the same numbers as the post itself. The summary starts active.
func NewViewSelector(summary *models.PostResult, individuals []models.PostResult) *ViewSelector {
	entries := []ViewEntry{{Label: SummaryLabel, Result: summary}}
	if len(individuals) > 1 {
		for i := range individuals {
			entries = append(entries, ViewEntry{
				Label:  fmt.Sprintf("Post %d", i+1),
				Result: &individuals[i],
			})
		}
	}
	return &ViewSelector{entries: entries}
}

// Entries returns the selectable views in display order.
func (v *ViewSelector) Entries() []ViewEntry {
	return v.entries
}

// Len returns the number of selectable views.
func (v *ViewSelector) Len() int {
	return len(v.entries)
}

// ActiveIndex returns the index of the active view.
func (v *ViewSelector) ActiveIndex() int {
	return v.active
}

// Current returns the active view.
func (v *ViewSelector) Current() ViewEntry {
	return v.entries[v.active]
}

// Select activates the view at index, deactivating the previous one.
func (v *ViewSelector) Select(index int) error {
	if index < 0 || index >= len(v.entries) {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, index, len(v.entries))
	}
	v.active = index
	return nil
}
