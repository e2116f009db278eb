package update

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cozy-corner/poke-lookup/internal/dictionary"
	"resty.dev/v3"
)

// DefaultSourceURL is the CI-published dictionary asset fetched when no
// override is given.
const DefaultSourceURL = "https://github.com/cozy-corner/poke-lookup/releases/latest/download/names.json"

// Updater downloads a dictionary payload, verifies and validates it,
// and atomically replaces the on-disk dictionary. It never swaps any
// in-memory dictionary; callers reload from storage afterwards.
type Updater struct {
	httpClient *resty.Client
	loader     *dictionary.Loader
}

func NewUpdater(loader *dictionary.Loader, userAgent string) *Updater {
	client := resty.New()
	client.SetHeader("User-Agent", userAgent)

	return &Updater{
		httpClient: client,
		loader:     loader,
	}
}

func (u *Updater) Close() error {
	return u.httpClient.Close()
}

// Options controls a single update attempt.
type Options struct {
	// SourceURL overrides DefaultSourceURL when non-empty.
	SourceURL string
	// ExpectedSHA256, when non-empty, is checked against the raw payload
	// before parsing. Hex, case-insensitive.
	ExpectedSHA256 string
	// DryRun runs every check but leaves storage untouched.
	DryRun bool
}

// Update runs the pipeline: fetch, verify, parse, validate, commit.
// Every step is a hard stop on failure; the previous dictionary file
// stays byte-identical unless the final rename succeeds.
func (u *Updater) Update(ctx context.Context, opts Options) error {
	url := opts.SourceURL
	if url == "" {
		url = DefaultSourceURL
	}

	slog.Default().Info("Downloading dictionary", "url", url)

	res, err := u.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return &FetchError{URL: url, StatusCode: res.StatusCode()}
	}
	contents := res.Bytes()

	if opts.ExpectedSHA256 != "" {
		if err := verifySHA256(contents, opts.ExpectedSHA256); err != nil {
			return err
		}
		slog.Default().Info("SHA256 verification passed")
	}

	dict, err := dictionary.Decode(contents)
	if err != nil {
		return &ParseError{Err: err}
	}

	slog.Default().Info("Downloaded dictionary",
		"entries", dict.Count,
		"schemaVersion", dict.SchemaVersion,
		"generatedAt", dict.GeneratedAt)

	if err := dict.Validate(); err != nil {
		return err
	}

	if opts.DryRun {
		slog.Default().Info("Dry run: dictionary not replaced")
		return nil
	}

	if err := u.commit(contents); err != nil {
		return err
	}

	u.writeManifest(url, contents, dict)
	slog.Default().Info("Dictionary updated", "path", u.loader.Path())
	return nil
}

func verifySHA256(contents []byte, expected string) error {
	sum := sha256.Sum256(contents)
	actual := hex.EncodeToString(sum[:])

	expectedClean := strings.ToLower(expected)
	if actual != expectedClean {
		return &IntegrityError{Expected: expectedClean, Actual: actual}
	}
	return nil
}

// commit writes the payload to a temporary file in the destination
// directory, forces it durable, and renames it over the dictionary
// path. A reader opening the destination at any instant sees either the
// fully-old or the fully-new content. A crash before the rename leaves
// the previous dictionary intact and an orphan temp file behind.
func (u *Updater) commit(contents []byte) error {
	if err := u.loader.EnsureDataDir(); err != nil {
		return &StorageError{Op: "create data directory", Path: filepath.Dir(u.loader.Path()), Err: err}
	}

	destPath := u.loader.Path()
	tempPath := destPath + ".tmp"

	tempFile, err := os.Create(tempPath)
	if err != nil {
		return &StorageError{Op: "create temp file", Path: tempPath, Err: err}
	}

	if _, err := tempFile.Write(contents); err != nil {
		_ = tempFile.Close()
		return &StorageError{Op: "write temp file", Path: tempPath, Err: err}
	}
	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return &StorageError{Op: "sync temp file", Path: tempPath, Err: err}
	}
	if err := tempFile.Close(); err != nil {
		return &StorageError{Op: "close temp file", Path: tempPath, Err: err}
	}

	if err := os.Rename(tempPath, destPath); err != nil {
		return &StorageError{Op: "rename temp file over", Path: destPath, Err: err}
	}
	return nil
}
