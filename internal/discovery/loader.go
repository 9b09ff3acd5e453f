package discovery

import (
	"sort"

	"gtr/internal/domain"
)

// Loader builds the ordered test-case list for a run
type Loader struct {
	scanner *Scanner
	parser  *Parser
	filter  *Filter
}

// NewLoader creates a new Loader
func NewLoader(scanner *Scanner, parser *Parser, filter *Filter) *Loader {
	return &Loader{
		scanner: scanner,
		parser:  parser,
		filter:  filter,
	}
}

// Load scans dir, parses every question set whose key passes nameFilter and
// returns the cases sorted by file name. Files filtered out are never parsed.
func (l *Loader) Load(dir string, nameFilter string) ([]domain.TestCase, error) {
	files, err := l.scanner.Scan(dir)
	if err != nil {
		return nil, err
	}

	var cases []domain.TestCase
	for _, file := range files {
		if !l.filter.MatchKey(KeyOf(file), nameFilter) {
			continue
		}
		tc, err := l.parser.Parse(file)
		if err != nil {
			return nil, err
		}
		cases = append(cases, tc)
	}

	if len(cases) == 0 {
		return nil, ErrNoTestCases
	}

	sort.SliceStable(cases, func(i, j int) bool {
		return cases[i].Filename < cases[j].Filename
	})

	return cases, nil
}
