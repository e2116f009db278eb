package lookup

import (
	"context"

	"github.com/cozy-corner/poke-lookup/internal/dictionary"
)

//go:generate mockgen -source=interface.go -destination=../mocks/lookup/mock_lookup.go -package=mock_lookup

// Picker presents candidates to the user and returns the chosen one.
// A false second return value is an explicit abort, not an error.
type Picker interface {
	Pick(ctx context.Context, candidates []dictionary.Candidate, query string) (dictionary.Candidate, bool, error)
}

// Decision is the result of a post-selection confirmation step.
type Decision int

const (
	DecisionConfirm Decision = iota
	DecisionReselect
)

// Display is an optional capability that shows a provisional selection
// (for example a sprite preview) and reports whether the user confirmed
// it or wants to pick again. A selector without a Display resolves
// selections directly.
type Display interface {
	Confirm(ctx context.Context, selected dictionary.Candidate) (Decision, error)
}
