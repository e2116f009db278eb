package sprite

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/avast/retry-go"
	"github.com/cozy-corner/poke-lookup/internal/dictionary"
	"github.com/cozy-corner/poke-lookup/internal/lookup"
	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"
)

const fetchAttempts = 3

// Service previews the sprite of a provisionally selected species and
// asks the user to confirm or reselect. Sprite availability is never
// allowed to affect resolution: every fetch or render failure degrades
// to a plain confirmation prompt.
type Service struct {
	index        *dictionary.Index
	fileCache    *FileCache
	httpClient   *resty.Client
	baseURL      string
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
}

var _ lookup.Display = (*Service)(nil)

func NewService(index *dictionary.Index, cacheDirectory, baseURL string) (*Service, error) {
	return newService(index, cacheDirectory, baseURL, os.Stdin, os.Stdout)
}

func newService(index *dictionary.Index, cacheDirectory, baseURL string, in io.Reader, out io.Writer) (*Service, error) {
	if err := os.MkdirAll(cacheDirectory, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", cacheDirectory, err)
	}

	return &Service{
		index:        index,
		fileCache:    NewFileCache(cacheDirectory),
		httpClient:   resty.New(),
		baseURL:      baseURL,
		stdinReader:  bufio.NewReader(in),
		stdoutWriter: out,
		bold:         color.New(color.Bold),
	}, nil
}

// Confirm implements the lookup.Display interface.
func (s *Service) Confirm(ctx context.Context, selected dictionary.Candidate) (lookup.Decision, error) {
	s.showSprite(ctx, selected.EN)

	_, _ = s.bold.Fprintf(s.stdoutWriter, "\n%s selected\n", selected.EN)
	fmt.Fprint(s.stdoutWriter, "[Enter] confirm  [r] reselect: ")

	line, err := s.stdinReader.ReadString('\n')
	if err != nil && err != io.EOF {
		return lookup.DecisionConfirm, fmt.Errorf("stdinReader.ReadString > %w", err)
	}
	if strings.EqualFold(strings.TrimSpace(line), "r") {
		return lookup.DecisionReselect, nil
	}
	return lookup.DecisionConfirm, nil
}

// showSprite is best effort. Missing species ids, fetch failures, and
// undecodable images all leave only a debug log behind.
func (s *Service) showSprite(ctx context.Context, englishName string) {
	speciesID, ok := s.index.SpeciesID(englishName)
	if !ok {
		slog.Default().Debug("no species id for sprite", "english", englishName)
		return
	}

	contents, err := s.fileCache.cache(speciesID, func() ([]byte, error) {
		return s.fetch(ctx, speciesID)
	})
	if err != nil {
		slog.Default().Debug("sprite unavailable",
			"english", englishName,
			"speciesID", speciesID,
			"error", err)
		return
	}

	if err := renderANSI(s.stdoutWriter, contents, 36); err != nil {
		slog.Default().Debug("sprite render failed", "speciesID", speciesID, "error", err)
	}
}

func (s *Service) fetch(ctx context.Context, speciesID uint) ([]byte, error) {
	var body []byte
	if err := retry.Do(
		func() error {
			res, err := s.httpClient.R().
				SetContext(ctx).
				Get(fmt.Sprintf("%s/sprites/pokemon/%d.png", s.baseURL, speciesID))
			if err != nil {
				return fmt.Errorf("client.R.Get > %w", err)
			}
			if res.StatusCode() == http.StatusNotFound {
				return retry.Unrecoverable(fmt.Errorf("no sprite for species %d", speciesID))
			}
			if res.StatusCode() != http.StatusOK {
				return fmt.Errorf("status code: %d", res.StatusCode())
			}
			body = res.Body()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(fetchAttempts),
		retry.LastErrorOnly(true),
	); err != nil {
		return nil, err
	}
	return body, nil
}
