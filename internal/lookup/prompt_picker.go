package lookup

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cozy-corner/poke-lookup/internal/dictionary"
	"github.com/fatih/color"
)

// PromptPicker is the default Picker: a numbered candidate list on the
// terminal with a one-line prompt. An empty line or "q" aborts.
type PromptPicker struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	faint        *color.Color
}

func NewPromptPicker() *PromptPicker {
	return newPromptPicker(os.Stdin, os.Stdout)
}

func newPromptPicker(in io.Reader, out io.Writer) *PromptPicker {
	return &PromptPicker{
		stdinReader:  bufio.NewReader(in),
		stdoutWriter: out,
		bold:         color.New(color.Bold),
		faint:        color.New(color.Faint),
	}
}

// Pick implements the Picker interface.
func (p *PromptPicker) Pick(ctx context.Context, candidates []dictionary.Candidate, query string) (dictionary.Candidate, bool, error) {
	if query != "" {
		_, _ = p.bold.Fprintf(p.stdoutWriter, "Candidates for %q:\n", query)
	} else {
		_, _ = p.bold.Fprintln(p.stdoutWriter, "Candidates:")
	}
	for i, candidate := range candidates {
		fmt.Fprintf(p.stdoutWriter, "%4d: %s → %s\n", i+1, candidate.JA, candidate.EN)
	}

	for {
		select {
		case <-ctx.Done():
			return dictionary.Candidate{}, false, ctx.Err()
		default:
		}

		_, _ = p.faint.Fprintf(p.stdoutWriter, "Select 1-%d (empty or q to cancel): ", len(candidates))
		line, err := p.stdinReader.ReadString('\n')
		if err != nil && err != io.EOF {
			return dictionary.Candidate{}, false, fmt.Errorf("stdinReader.ReadString > %w", err)
		}

		choice := strings.TrimSpace(line)
		if choice == "" || strings.EqualFold(choice, "q") {
			return dictionary.Candidate{}, false, nil
		}

		n, convErr := strconv.Atoi(choice)
		if convErr != nil || n < 1 || n > len(candidates) {
			fmt.Fprintf(p.stdoutWriter, "Invalid selection: %s\n", choice)
			if err == io.EOF {
				return dictionary.Candidate{}, false, nil
			}
			continue
		}
		return candidates[n-1], true, nil
	}
}
