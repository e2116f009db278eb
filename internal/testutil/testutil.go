// Package testutil provides shared test helpers for creating config and
// dictionary fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cozy-corner/poke-lookup/internal/dictionary"
	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file pointing every location at the
// given temporary directory. Returns the path to the generated config
// file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "data"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sprites"), 0755))

	configContent := fmt.Sprintf(`data:
  directory: %s
  dictionary_file: names.json
sprites:
  cache_directory: %s
`,
		filepath.Join(tmpDir, "data"),
		filepath.Join(tmpDir, "sprites"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// DefaultDictionary is a small valid dictionary shared across tests.
func DefaultDictionary() *dictionary.Dictionary {
	id := func(v uint) *uint { return &v }
	return &dictionary.Dictionary{
		SchemaVersion: 1,
		GeneratedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Count:         5,
		Entries: []dictionary.Entry{
			{JA: "ピカチュウ", EN: "Pikachu", ID: id(25)},
			{JA: "フシギダネ", EN: "Bulbasaur", ID: id(1)},
			{JA: "フシギソウ", EN: "Ivysaur", ID: id(2)},
			{JA: "フシギバナ", EN: "Venusaur", ID: id(3)},
			{JA: "ヒトカゲ", EN: "Charmander", ID: id(4)},
		},
	}
}

// WriteDictionary serializes a dictionary to the given path.
func WriteDictionary(t *testing.T, path string, dict *dictionary.Dictionary) {
	t.Helper()

	contents, err := json.Marshal(dict)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, contents, 0644))
}
