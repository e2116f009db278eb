package update

import "fmt"

// FetchError reports a failed download, either a transport failure or a
// non-2xx response. The existing dictionary is left untouched.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to download %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to download %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IntegrityError reports a SHA-256 mismatch on the raw payload. It is
// raised before parsing, so operators can tell "downloaded the wrong
// bytes" apart from "downloaded garbage".
type IntegrityError struct {
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("sha256 verification failed: expected %s, got %s", e.Expected, e.Actual)
}

// ParseError reports a payload that could not be deserialized as a
// dictionary. Distinct from IntegrityError and ValidationError.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse dictionary payload: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StorageError reports a failed filesystem step during the atomic
// commit, naming the path involved.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
