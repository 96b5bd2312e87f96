package format

import "fmt"

// ParseError is returned by every reader in this package. It carries the
// file path that failed to parse and a human-readable reason, so every
// parse failure carries enough context to point at the offending file.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("format: %s: %s", e.Path, e.Reason)
}

func parseErrorf(path, format string, args ...interface{}) *ParseError {
	return &ParseError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
