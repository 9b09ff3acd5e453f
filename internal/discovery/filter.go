package discovery

import (
	"strings"

	"gtr/internal/domain"
)

// Filter narrows down discovered test cases
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// MatchKey reports whether a key passes the name filter.
// An empty substr matches everything.
func (f *Filter) MatchKey(key, substr string) bool {
	return substr == "" || strings.Contains(key, substr)
}

// FirstPerMode keeps at most one case per mode: the first one in the given order.
func (f *Filter) FirstPerMode(cases []domain.TestCase) []domain.TestCase {
	seen := make(map[domain.Mode]bool)

	var selected []domain.TestCase
	for _, tc := range cases {
		if seen[tc.Mode()] {
			continue
		}
		seen[tc.Mode()] = true
		selected = append(selected, tc)
	}
	return selected
}
