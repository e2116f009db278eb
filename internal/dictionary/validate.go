package dictionary

import "fmt"

// SupportedSchemaVersion is the only schema version this build accepts.
// Any other value is a validation failure, never a silent upgrade.
const SupportedSchemaVersion = 1

const (
	minEntryCount = 1
	maxEntryCount = 10000
)

// Rule identifiers reported in ValidationError.
const (
	RuleSchemaVersion = "schema_version"
	RuleCount         = "count"
	RuleEntryFields   = "entry_fields"
	RuleCountBounds   = "count_bounds"
)

// ValidationError reports a single violated dictionary rule together
// with the offending values.
type ValidationError struct {
	Rule   string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dictionary validation failed (%s): %s", e.Rule, e.Detail)
}

// ValidateSchema checks the schema version against SupportedSchemaVersion.
func (d *Dictionary) ValidateSchema() error {
	if d.SchemaVersion != SupportedSchemaVersion {
		return &ValidationError{
			Rule:   RuleSchemaVersion,
			Detail: fmt.Sprintf("expected version %d, got %d", SupportedSchemaVersion, d.SchemaVersion),
		}
	}
	return nil
}

// ValidateCount checks that the declared count matches the number of entries.
func (d *Dictionary) ValidateCount() error {
	if uint(len(d.Entries)) != d.Count {
		return &ValidationError{
			Rule:   RuleCount,
			Detail: fmt.Sprintf("declared count %d, got %d entries", d.Count, len(d.Entries)),
		}
	}
	return nil
}

// ValidateEntries checks that every entry has a non-empty Japanese and
// English name. Duplicate Japanese names are not rejected here; the
// resolution index documents its last-write-wins behavior instead.
func (d *Dictionary) ValidateEntries() error {
	for i, entry := range d.Entries {
		if entry.JA == "" {
			return &ValidationError{
				Rule:   RuleEntryFields,
				Detail: fmt.Sprintf("entry %d has an empty Japanese name (en: %q)", i, entry.EN),
			}
		}
		if entry.EN == "" {
			return &ValidationError{
				Rule:   RuleEntryFields,
				Detail: fmt.Sprintf("entry %d has an empty English name (ja: %q)", i, entry.JA),
			}
		}
	}
	return nil
}

// ValidateBounds checks that the declared count is within [1, 10000].
func (d *Dictionary) ValidateBounds() error {
	if d.Count < minEntryCount || d.Count > maxEntryCount {
		return &ValidationError{
			Rule:   RuleCountBounds,
			Detail: fmt.Sprintf("count %d outside [%d, %d]", d.Count, minEntryCount, maxEntryCount),
		}
	}
	return nil
}

// Validate runs every rule in a fixed order and stops at the first
// failure. It is a pure function of the dictionary.
func (d *Dictionary) Validate() error {
	if err := d.ValidateSchema(); err != nil {
		return err
	}
	if err := d.ValidateCount(); err != nil {
		return err
	}
	if err := d.ValidateEntries(); err != nil {
		return err
	}
	return d.ValidateBounds()
}
