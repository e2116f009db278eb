package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cozy-corner/poke-lookup/internal/dictionary"
	"github.com/cozy-corner/poke-lookup/internal/lookup"
	"github.com/cozy-corner/poke-lookup/internal/sprite"
)

// runLookup resolves a Japanese name and prints the English name on
// stdout. The returned int is the process exit code: 0 resolved, 2 no
// match, 130 cancelled by the user.
func runLookup(ctx context.Context, query string, showSprite bool) (int, error) {
	cfg, err := loadConfig()
	if err != nil {
		return 0, err
	}

	loader := dictionary.NewLoader(resolveDictionaryPath(cfg))
	dict, err := loader.Load()
	if err != nil {
		return 0, fmt.Errorf("loader.Load > %w", err)
	}
	index := dictionary.NewIndex(dict)

	var opts []lookup.Option
	if showSprite {
		display, err := sprite.NewService(index, cfg.Sprites.CacheDirectory, cfg.Sprites.BaseURL)
		if err != nil {
			// Losing the sprite preview is not worth failing the lookup.
			slog.Default().Warn("sprite preview unavailable", "error", err)
		} else {
			opts = append(opts, lookup.WithDisplay(display))
		}
	}
	selector := lookup.NewSelector(index, lookup.NewPromptPicker(), opts...)

	var outcome lookup.Outcome
	if query == "" {
		outcome, err = selector.ResolveAll(ctx)
	} else {
		outcome, err = selector.Resolve(ctx, query)
	}
	if err != nil {
		return 0, fmt.Errorf("selector.Resolve > %w", err)
	}

	switch {
	case outcome.State == lookup.StateResolved:
		fmt.Println(outcome.EnglishName)
	case outcome.Reason == lookup.ReasonNoMatch:
		fmt.Fprintf(os.Stderr, "no candidates found for %q\n", query)
	}
	return outcome.ExitCode(), nil
}
