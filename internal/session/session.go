// Package session holds the state machine of one analysis run and the
// controller that drives it through the pipeline.
package session

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dyike/PulseGo/internal/gateway"
	"github.com/dyike/PulseGo/internal/models"
	"github.com/dyike/PulseGo/internal/processing"
)

// State is the lifecycle position of an analysis session.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateDisplaying
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateDisplaying:
		return "displaying"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrMsgProvider is the only provider failure text shown to users. The raw
// cause goes to the log, never to the screen.
const ErrMsgProvider = "Sentiment analysis failed. Please check the URLs and try again."

// Session owns the results of one analysis run. All of its state lives in
// memory and is discarded wholesale when a new run starts.
type Session struct {
	ID        string
	CreatedAt time.Time

	state    State
	rawInput string
	urls     []string

	results  []models.PostResult
	summary  *models.PostResult
	selector *ViewSelector

	failure string
}

func newSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		state:     StateIdle,
	}
}

// event is a state machine input. dispatch is the only place session state
// changes, so every transition is visible in one switch.
type event interface {
	isEvent()
}

type eventLoad struct {
	rawInput string
	urls     []string
}

type eventResults struct {
	results []models.PostResult
	summary models.PostResult
}

type eventFailure struct {
	message string
}

func (eventLoad) isEvent()    {}
func (eventResults) isEvent() {}
func (eventFailure) isEvent() {}

func (s *Session) dispatch(ev event) {
	switch ev := ev.(type) {
	case eventLoad:
		// Results clear as soon as loading starts, before the outcome is
		// known. A failed request therefore shows an empty view, not the
		// previous run's data.
		s.state = StateLoading
		s.rawInput = ev.rawInput
		s.urls = ev.urls
		s.results = nil
		s.summary = nil
		s.selector = nil
		s.failure = ""
	case eventResults:
		s.state = StateDisplaying
		s.results = ev.results
		s.summary = &ev.summary
		s.selector = NewViewSelector(s.summary, s.results)
	case eventFailure:
		s.state = StateFailed
		s.failure = ev.message
	}
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	return s.state
}

// RawInput returns the raw URL text the run started from, preserved even
// after a failure so the user can edit and retry.
func (s *Session) RawInput() string {
	return s.rawInput
}

// URLs returns the validated URL batch of this run.
func (s *Session) URLs() []string {
	return s.urls
}

// Results returns the per-post breakdowns, nil unless displaying.
func (s *Session) Results() []models.PostResult {
	return s.results
}

// Summary returns the aggregate breakdown, nil unless displaying.
func (s *Session) Summary() *models.PostResult {
	return s.summary
}

// Selector returns the view selector, nil unless displaying.
func (s *Session) Selector() *ViewSelector {
	return s.selector
}

// FailureMessage returns the user-facing failure text, empty unless failed.
func (s *Session) FailureMessage() string {
	return s.failure
}

// ExportSet returns what a CSV export of this session covers: the aggregate
// summary first, then every individual post.
func (s *Session) ExportSet() []models.PostResult {
	if s.state != StateDisplaying {
		return nil
	}
	set := make([]models.PostResult, 0, len(s.results)+1)
	set = append(set, *s.summary)
	set = append(set, s.results...)
	return set
}

// Controller runs analyses and holds the active session. It is designed for
// a single control flow: one request at a time, with no internal locking.
type Controller struct {
	provider gateway.Provider
	session  *Session
}

// NewController creates a controller backed by the given provider.
func NewController(provider gateway.Provider) *Controller {
	return &Controller{provider: provider}
}

// Session returns the active session, nil before the first run.
func (c *Controller) Session() *Session {
	return c.session
}

// RunAnalysis validates raw input and, when it passes, replaces the active
// session with a fresh run driven to Displaying or Failed. A validation
// failure returns the error without touching the active session and without
// calling the provider. Provider failures do not return an error: the new
// session ends up Failed with a generic user message, and the raw cause is
// only logged.
func (c *Controller) RunAnalysis(ctx context.Context, rawInput string) (*Session, error) {
	urls, err := gateway.ParseURLList(rawInput)
	if err != nil {
		return c.session, err
	}

	session := newSession()
	c.session = session
	session.dispatch(eventLoad{rawInput: rawInput, urls: urls})
	log.Printf("[session %s] analyzing %d posts", session.ID, len(urls))

	results, err := c.provider.Analyze(ctx, urls)
	if err != nil {
		log.Printf("[session %s] analysis failed: %v", session.ID, err)
		session.dispatch(eventFailure{message: ErrMsgProvider})
		return session, nil
	}

	summary, err := processing.Aggregate(results)
	if err != nil {
		log.Printf("[session %s] aggregation failed: %v", session.ID, err)
		session.dispatch(eventFailure{message: ErrMsgProvider})
		return session, nil
	}

	session.dispatch(eventResults{results: results, summary: summary})
	log.Printf("[session %s] displaying %d views", session.ID, session.selector.Len())
	return session, nil
}
