package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// questionSetJSON renders a minimal question set with n questions whose
// correct answer is always the second choice.
func questionSetJSON(title, mode string, n int) string {
	var questions []string
	for i := 1; i <= n; i++ {
		questions = append(questions, fmt.Sprintf(`{
      "id": "q%d",
      "question": "Question %d?",
      "choices": ["A", "B", "C"],
      "correctAnswer": 1,
      "explanation": "Because B."
    }`, i, i))
	}
	return fmt.Sprintf(`{
  "metadata": {
    "title": %q,
    "description": "test set",
    "mode": %q,
    "targetAge": "8-10",
    "subject": "science"
  },
  "questions": [%s]
}`, title, mode, strings.Join(questions, ","))
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		fullPath := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", name, err)
		}
	}
}
