package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/cozy-corner/poke-lookup/internal/dictionary"
	"github.com/cozy-corner/poke-lookup/internal/update"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// sha256Digest validates the --verify-sha256 value at parse time so a
// mistyped digest fails before any download happens.
type sha256Digest string

func (d *sha256Digest) Set(val string) error {
	decoded, err := hex.DecodeString(val)
	if err != nil {
		return fmt.Errorf("invalid hex digest: %w", err)
	}
	if len(decoded) != 32 {
		return fmt.Errorf("expected a 64 character SHA-256 hex digest, got %d characters", len(val))
	}
	*d = sha256Digest(val)
	return nil
}

func (d sha256Digest) String() string {
	return string(d)
}

func (d *sha256Digest) Type() string {
	return "sha256"
}

var _ pflag.Value = (*sha256Digest)(nil)

func newUpdateCommand() *cobra.Command {
	var (
		sourceURL      string
		expectedSHA256 sha256Digest
		dryRun         bool
	)
	command := &cobra.Command{
		Use:   "update",
		Short: "Download the latest dictionary and atomically replace the local copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path := resolveDictionaryPath(cfg)

			if manifest, err := update.ReadManifest(path); err != nil {
				slog.Default().Debug("failed to read the previous update manifest", "error", err)
			} else if manifest != nil {
				slog.Default().Debug("previous update",
					"sourceURL", manifest.SourceURL,
					"fetchedAt", manifest.FetchedAt,
					"entries", manifest.Entries)
			}

			source := sourceURL
			if source == "" {
				source = cfg.Update.SourceURL
			}

			updater := update.NewUpdater(dictionary.NewLoader(path), cfg.Update.UserAgent)
			defer func() {
				if err := updater.Close(); err != nil {
					slog.Default().Warn("failed to close the HTTP client", "error", err)
				}
			}()

			if err := updater.Update(cmd.Context(), update.Options{
				SourceURL:      source,
				ExpectedSHA256: expectedSHA256.String(),
				DryRun:         dryRun,
			}); err != nil {
				return fmt.Errorf("updater.Update > %w", err)
			}
			return nil
		},
	}
	flags := command.Flags()
	flags.StringVar(&sourceURL, "source", "", "Override the URL of the dictionary asset")
	flags.Var(&expectedSHA256, "verify-sha256", "Expected SHA-256 hex digest of the downloaded payload")
	flags.BoolVar(&dryRun, "dry-run", false, "Fetch, verify and validate without replacing the dictionary")
	return command
}
