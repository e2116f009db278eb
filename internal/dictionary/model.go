package dictionary

import (
	"encoding/json"
	"fmt"
	"time"
)

// Dictionary is the versioned collection of Japanese to English name
// records persisted as names.json. It is never mutated after loading;
// a refreshed dictionary fully replaces the file on disk.
type Dictionary struct {
	SchemaVersion uint      `json:"schema_version"`
	GeneratedAt   time.Time `json:"generated_at"`
	Count         uint      `json:"count"`
	Entries       []Entry   `json:"entries"`
}

// Entry is a single species-level name record.
type Entry struct {
	JA string `json:"ja"`
	EN string `json:"en"`
	ID *uint  `json:"id,omitempty"`
}

// Decode deserializes a raw dictionary payload without validating it.
// Callers that need a usable dictionary should follow up with Validate;
// the update pipeline keeps the two steps separate so that a malformed
// payload is reported differently from an invalid one.
func Decode(contents []byte) (*Dictionary, error) {
	var dict Dictionary
	if err := json.Unmarshal(contents, &dict); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return &dict, nil
}
