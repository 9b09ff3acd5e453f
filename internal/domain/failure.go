package domain

// FailureKind classifies why a test case failed
type FailureKind string

const (
	FailureTimeout         FailureKind = "timeout"
	FailureNavigation      FailureKind = "navigation"
	FailureClick           FailureKind = "click"
	FailureStartHidden     FailureKind = "start-hidden"
	FailureUnsupportedMode FailureKind = "unsupported-mode"
	FailureOther           FailureKind = "error"
)

// TestFailure represents a failed test case
type TestFailure struct {
	TestName   string      `json:"test_name"`
	Key        string      `json:"key"`
	Mode       Mode        `json:"mode"`
	Kind       FailureKind `json:"kind"`
	Selector   string      `json:"selector,omitempty"`
	Elapsed    string      `json:"elapsed,omitempty"`
	Message    string      `json:"message"`
	Screenshot string      `json:"screenshot,omitempty"` // Diagnostic capture written for this failure
	Resolved   bool        `json:"resolved,omitempty"`   // Track if failure is marked as resolved
}
