package dictionary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDictionary() *Dictionary {
	return &Dictionary{
		SchemaVersion: 1,
		GeneratedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Count:         2,
		Entries: []Entry{
			{JA: "ピカチュウ", EN: "Pikachu"},
			{JA: "フシギダネ", EN: "Bulbasaur"},
		},
	}
}

func TestDictionary_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *Dictionary)
		wantRule string
	}{
		{
			name:   "valid dictionary",
			mutate: func(d *Dictionary) {},
		},
		{
			name: "unsupported schema version",
			mutate: func(d *Dictionary) {
				d.SchemaVersion = 2
			},
			wantRule: RuleSchemaVersion,
		},
		{
			name: "schema version zero",
			mutate: func(d *Dictionary) {
				d.SchemaVersion = 0
			},
			wantRule: RuleSchemaVersion,
		},
		{
			name: "declared count above entry count",
			mutate: func(d *Dictionary) {
				d.Count = 3
			},
			wantRule: RuleCount,
		},
		{
			name: "declared count below entry count",
			mutate: func(d *Dictionary) {
				d.Count = 1
			},
			wantRule: RuleCount,
		},
		{
			name: "empty japanese name",
			mutate: func(d *Dictionary) {
				d.Entries[1].JA = ""
			},
			wantRule: RuleEntryFields,
		},
		{
			name: "empty english name",
			mutate: func(d *Dictionary) {
				d.Entries[0].EN = ""
			},
			wantRule: RuleEntryFields,
		},
		{
			name: "empty dictionary below bounds",
			mutate: func(d *Dictionary) {
				d.Count = 0
				d.Entries = nil
			},
			wantRule: RuleCountBounds,
		},
		{
			name: "count above upper bound",
			mutate: func(d *Dictionary) {
				d.Entries = make([]Entry, 10001)
				for i := range d.Entries {
					d.Entries[i] = Entry{JA: "ア", EN: "A"}
				}
				d.Count = 10001
			},
			wantRule: RuleCountBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict := validDictionary()
			tt.mutate(dict)

			err := dict.Validate()
			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantRule, validationErr.Rule)
		})
	}
}

func TestDictionary_Validate_stopsAtFirstFailure(t *testing.T) {
	// Both the schema version and the count are wrong; the schema rule
	// runs first and wins.
	dict := validDictionary()
	dict.SchemaVersion = 5
	dict.Count = 99

	var validationErr *ValidationError
	require.ErrorAs(t, dict.Validate(), &validationErr)
	assert.Equal(t, RuleSchemaVersion, validationErr.Rule)
}

func TestDictionary_independentRules(t *testing.T) {
	// Each rule can run on its own, regardless of other violations.
	dict := &Dictionary{
		SchemaVersion: 9,
		Count:         1,
		Entries:       []Entry{{JA: "ピカチュウ", EN: "Pikachu"}},
	}

	assert.Error(t, dict.ValidateSchema())
	assert.NoError(t, dict.ValidateCount())
	assert.NoError(t, dict.ValidateEntries())
	assert.NoError(t, dict.ValidateBounds())
}

func TestDictionary_Validate_duplicateJapaneseNamesAccepted(t *testing.T) {
	dict := &Dictionary{
		SchemaVersion: 1,
		Count:         2,
		Entries: []Entry{
			{JA: "ピカチュウ", EN: "Pikachu"},
			{JA: "ピカチュウ", EN: "Raichu"},
		},
	}
	assert.NoError(t, dict.Validate())
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Rule: RuleCount, Detail: "declared count 3, got 1 entries"}
	assert.Equal(t, "dictionary validation failed (count): declared count 3, got 1 entries", err.Error())
}
