package discovery

import (
	"errors"
	"fmt"
)

// ErrNoTestCases is returned when no test case survives discovery and filtering
var ErrNoTestCases = errors.New("no question sets found to test")

// DiscoveryError reports a data directory that cannot be scanned
type DiscoveryError struct {
	Path string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("data directory %s: %v", e.Path, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// ParseError reports a question-set file whose content does not match the expected shape
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
