package domain

// Mode selects how question rounds are played
type Mode string

const (
	ModeEasy Mode = "easy"
	ModeHard Mode = "hard"
)

// Valid reports whether the mode is one the runner knows how to play
func (m Mode) Valid() bool {
	return m == ModeEasy || m == ModeHard
}

// Metadata describes a question set
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Mode        Mode   `json:"mode"`
	TargetAge   string `json:"targetAge"`
	Subject     string `json:"subject"`
}

// Question is a single multiple-choice question.
// CorrectAnswer is a zero-based index into Choices.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Choices       []string `json:"choices"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuestionSet is the on-disk shape of a questions*.json file
type QuestionSet struct {
	Metadata  *Metadata  `json:"metadata"`
	Questions []Question `json:"questions"`
}

// TestCase represents one question set to be played in the browser
type TestCase struct {
	Filename  string   // Source file name, e.g. questions_easy.json
	Key       string   // Filename without extension, matches the tile's data-key
	Metadata  Metadata // Parsed metadata
	Questions []Question
}

// Mode returns the test case's play mode
func (tc TestCase) Mode() Mode {
	return tc.Metadata.Mode
}
