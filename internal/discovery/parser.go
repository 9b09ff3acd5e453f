package discovery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gtr/internal/domain"
)

var (
	metadataKeys = []string{"title", "description", "mode", "targetAge", "subject"}
	questionKeys = []string{"id", "question", "choices", "correctAnswer", "explanation"}
)

// Parser parses question-set files into test cases
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// KeyOf derives a test case key from a question-set file path
func KeyOf(filePath string) string {
	return strings.TrimSuffix(filepath.Base(filePath), fileSuffix)
}

// Parse reads a question-set file and builds its test case.
// The key is the file name without the .json extension.
func (p *Parser) Parse(filePath string) (domain.TestCase, error) {
	name := filepath.Base(filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return domain.TestCase{}, &ParseError{File: name, Err: err}
	}

	set, err := p.decode(content)
	if err != nil {
		return domain.TestCase{}, &ParseError{File: name, Err: err}
	}

	return domain.TestCase{
		Filename:  name,
		Key:       KeyOf(name),
		Metadata:  *set.Metadata,
		Questions: set.Questions,
	}, nil
}

// decode checks the structural shape the runner depends on.
// Content rules (wording, lengths, ids) belong to the schema validator.
func (p *Parser) decode(content []byte) (*domain.QuestionSet, error) {
	var set domain.QuestionSet
	dec := json.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(&set); err != nil {
		return nil, err
	}

	if set.Metadata == nil {
		return nil, errors.New("missing metadata")
	}
	if set.Questions == nil {
		return nil, errors.New("missing questions")
	}
	if err := requireKeys(content); err != nil {
		return nil, err
	}
	if !set.Metadata.Mode.Valid() {
		return nil, fmt.Errorf("unknown mode %q", set.Metadata.Mode)
	}

	for i, q := range set.Questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Choices) {
			return nil, fmt.Errorf("question %d (%s): correctAnswer %d out of range for %d choices",
				i+1, q.ID, q.CorrectAnswer, len(q.Choices))
		}
	}

	return &set, nil
}

// requireKeys rejects a set whose metadata or questions lack a field or carry null.
// Decoding into the typed struct alone would leave zero values in their place.
func requireKeys(content []byte) error {
	var raw struct {
		Metadata  map[string]json.RawMessage   `json:"metadata"`
		Questions []map[string]json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return err
	}

	if key, ok := missingKey(raw.Metadata, metadataKeys); !ok {
		return fmt.Errorf("metadata: missing field %q", key)
	}
	for i, q := range raw.Questions {
		if key, ok := missingKey(q, questionKeys); !ok {
			return fmt.Errorf("question %d: missing field %q", i+1, key)
		}
	}
	return nil
}

func missingKey(fields map[string]json.RawMessage, keys []string) (string, bool) {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return key, false
		}
	}
	return "", true
}
