package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cozy-corner/poke-lookup/internal/dictionary"
)

// State is a terminal state of a resolution attempt.
type State int

const (
	StateResolved State = iota
	StateCancelled
)

// Reason distinguishes why a resolution was cancelled. Callers map the
// two reasons to different process exit codes.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNoMatch       Reason = "no match"
	ReasonUserCancelled Reason = "user cancelled"
)

// Outcome carries the terminal state of a resolution attempt.
type Outcome struct {
	State       State
	EnglishName string
	Reason      Reason
}

// Exit codes expected by scripted callers.
const (
	ExitResolved      = 0
	ExitNoMatch       = 2
	ExitUserCancelled = 130
)

// ExitCode maps the outcome to the process exit-code contract.
func (o Outcome) ExitCode() int {
	if o.State == StateResolved {
		return ExitResolved
	}
	if o.Reason == ReasonUserCancelled {
		return ExitUserCancelled
	}
	return ExitNoMatch
}

// Selector resolves a query against a resolution index, delegating the
// human choice between multiple candidates to a Picker.
type Selector struct {
	index   *dictionary.Index
	picker  Picker
	display Display
}

// Option configures optional selector capabilities.
type Option func(*Selector)

// WithDisplay attaches a post-selection confirmation capability.
func WithDisplay(display Display) Option {
	return func(s *Selector) {
		s.display = display
	}
}

func NewSelector(index *dictionary.Index, picker Picker, opts ...Option) *Selector {
	selector := &Selector{
		index:  index,
		picker: picker,
	}
	for _, opt := range opts {
		opt(selector)
	}
	return selector
}

// Resolve turns a query into a single English name or a cancellation.
// An exact match short-circuits the partial search; otherwise the
// partial candidates are handed to the picker.
func (s *Selector) Resolve(ctx context.Context, query string) (Outcome, error) {
	if english, ok := s.index.Exact(query); ok {
		return Outcome{State: StateResolved, EnglishName: english}, nil
	}

	candidates := s.index.Partial(query)
	if len(candidates) == 0 {
		return Outcome{State: StateCancelled, Reason: ReasonNoMatch}, nil
	}
	return s.awaitChoice(ctx, candidates, query)
}

// ResolveAll skips searching entirely and lets the user pick from every
// entry. Used when no query was supplied at all.
func (s *Selector) ResolveAll(ctx context.Context) (Outcome, error) {
	return s.awaitChoice(ctx, s.index.AllEntries(), "")
}

// awaitChoice loops between the picker and the optional display until
// the user confirms a candidate or aborts. The loop is bounded only by
// user action; every reselect re-invokes the picker with the identical
// candidate set and query.
func (s *Selector) awaitChoice(ctx context.Context, candidates []dictionary.Candidate, query string) (Outcome, error) {
	for {
		selected, ok, err := s.picker.Pick(ctx, candidates, query)
		if err != nil {
			return Outcome{}, fmt.Errorf("picker.Pick > %w", err)
		}
		if !ok {
			return Outcome{State: StateCancelled, Reason: ReasonUserCancelled}, nil
		}

		if s.display == nil {
			return Outcome{State: StateResolved, EnglishName: selected.EN}, nil
		}

		decision, err := s.display.Confirm(ctx, selected)
		if err != nil {
			// A broken display must not break resolution.
			slog.Default().Debug("display confirmation failed, resolving without it",
				"english", selected.EN,
				"error", err)
			return Outcome{State: StateResolved, EnglishName: selected.EN}, nil
		}
		if decision == DecisionReselect {
			continue
		}
		return Outcome{State: StateResolved, EnglishName: selected.EN}, nil
	}
}
