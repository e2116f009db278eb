package update

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cozy-corner/poke-lookup/internal/dictionary"
	"gopkg.in/yaml.v3"
)

// Manifest records the provenance of the last committed dictionary. It
// lives beside the dictionary file and is purely informational: the
// dictionary itself is always the source of truth.
type Manifest struct {
	SourceURL string    `yaml:"source_url"`
	SHA256    string    `yaml:"sha256"`
	FetchedAt time.Time `yaml:"fetched_at"`
	Entries   uint      `yaml:"entries"`
}

// ManifestPath returns the sidecar path for a dictionary path, e.g.
// names.json -> names.manifest.yml.
func ManifestPath(dictionaryPath string) string {
	base := strings.TrimSuffix(dictionaryPath, ".json")
	return base + ".manifest.yml"
}

// ReadManifest loads the manifest if present. A missing manifest is not
// an error; it returns (nil, nil).
func ReadManifest(dictionaryPath string) (*Manifest, error) {
	contents, err := os.ReadFile(ManifestPath(dictionaryPath))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", ManifestPath(dictionaryPath), err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(contents, &manifest); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	return &manifest, nil
}

// writeManifest is best effort: the dictionary commit already happened
// atomically, so a manifest failure is logged rather than surfaced.
func (u *Updater) writeManifest(sourceURL string, contents []byte, dict *dictionary.Dictionary) {
	sum := sha256.Sum256(contents)
	manifest := Manifest{
		SourceURL: sourceURL,
		SHA256:    hex.EncodeToString(sum[:]),
		FetchedAt: time.Now().UTC(),
		Entries:   dict.Count,
	}

	out, err := yaml.Marshal(manifest)
	if err != nil {
		slog.Default().Warn("failed to serialize update manifest", "error", err)
		return
	}
	manifestPath := ManifestPath(u.loader.Path())
	if err := os.WriteFile(manifestPath, out, 0644); err != nil {
		slog.Default().Warn("failed to write update manifest",
			"path", manifestPath,
			"error", err)
	}
}
