package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	filePrefix = "questions"
	fileSuffix = ".json"
)

// Scanner scans a data directory for question-set files
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// IsQuestionSetFile reports whether a file name looks like a question set
func IsQuestionSetFile(name string) bool {
	return strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileSuffix)
}

// Scan finds all questions*.json files directly inside root, sorted by file name.
// Subdirectories are not descended into.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, &DiscoveryError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &DiscoveryError{Path: root, Err: errors.New("not a directory")}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &DiscoveryError{Path: root, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		if IsQuestionSetFile(entry.Name()) {
			files = append(files, filepath.Join(root, entry.Name()))
		}
	}

	// Sort for reproducible run order
	sort.Slice(files, func(i, j int) bool {
		return filepath.Base(files[i]) < filepath.Base(files[j])
	})

	return files, nil
}
