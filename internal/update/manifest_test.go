package update

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestManifestPath(t *testing.T) {
	tests := []struct {
		name           string
		dictionaryPath string
		want           string
	}{
		{
			name:           "json extension replaced",
			dictionaryPath: "/data/poke-lookup/names.json",
			want:           "/data/poke-lookup/names.manifest.yml",
		},
		{
			name:           "no extension",
			dictionaryPath: "/data/names",
			want:           "/data/names.manifest.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ManifestPath(tt.dictionaryPath))
		})
	}
}

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	dictPath := filepath.Join(dir, "names.json")

	t.Run("missing manifest is not an error", func(t *testing.T) {
		manifest, err := ReadManifest(dictPath)
		require.NoError(t, err)
		assert.Nil(t, manifest)
	})

	t.Run("round trip", func(t *testing.T) {
		want := Manifest{
			SourceURL: "https://example.com/names.json",
			SHA256:    "abc123",
			FetchedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Entries:   151,
		}
		contents, err := yaml.Marshal(want)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(ManifestPath(dictPath), contents, 0644))

		got, err := ReadManifest(dictPath)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, *got)
	})

	t.Run("corrupt manifest", func(t *testing.T) {
		require.NoError(t, os.WriteFile(ManifestPath(dictPath), []byte(":\tnot yaml"), 0644))

		_, err := ReadManifest(dictPath)
		assert.Error(t, err)
	})
}
