package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cozy-corner/poke-lookup/internal/dictionary"
	"github.com/cozy-corner/poke-lookup/internal/lookup"
	"github.com/cozy-corner/poke-lookup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCommandConfig(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	configFile = testutil.SetupTestConfig(t, tmpDir)
	dictPath = ""
	t.Cleanup(func() {
		configFile = ""
		dictPath = ""
	})
	return tmpDir
}

func TestRunLookup(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantExitCode int
	}{
		{
			name:         "exact match",
			query:        "ピカチュウ",
			wantExitCode: lookup.ExitResolved,
		},
		{
			name:         "no match",
			query:        "メタモン",
			wantExitCode: lookup.ExitNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := setupCommandConfig(t)
			testutil.WriteDictionary(t,
				filepath.Join(tmpDir, "data", "names.json"),
				testutil.DefaultDictionary())

			exitCode, err := runLookup(context.Background(), tt.query, false)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExitCode, exitCode)
		})
	}
}

func TestRunLookup_missingDictionary(t *testing.T) {
	setupCommandConfig(t)

	_, err := runLookup(context.Background(), "ピカチュウ", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, dictionary.ErrNotFound)
	assert.Contains(t, err.Error(), "poke-lookup update")
}

func TestRunLookup_dictFlagOverride(t *testing.T) {
	tmpDir := setupCommandConfig(t)
	override := filepath.Join(tmpDir, "elsewhere", "names.json")
	testutil.WriteDictionary(t, override, testutil.DefaultDictionary())
	dictPath = override

	exitCode, err := runLookup(context.Background(), "ヒトカゲ", false)
	require.NoError(t, err)
	assert.Equal(t, lookup.ExitResolved, exitCode)
}
