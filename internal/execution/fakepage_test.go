package execution

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gtr/internal/browser"
	"gtr/internal/domain"
)

// click is one recorded click on the fake quiz
type click struct {
	Question int // 1-based question on screen when clicked, 0 outside the game
	Selector string
	Screen   string // screen after the click
}

// fakeQuiz is a browser.Page that behaves like the quiz page's DOM contract:
// start screen with tiles -> game screen -> result screen -> ... -> finish screen.
// Easy mode only advances on the correct answer; hard mode advances on any answer.
type fakeQuiz struct {
	mu sync.Mutex

	tiles       map[string]domain.TestCase
	tileOrder   []string
	startHidden bool
	noTiles     bool
	navigateErr error
	shotErr     error
	flakyEvals  int // number of presence checks that fail before the page answers

	screen   string
	current  domain.TestCase
	question int // 0-based index of the question on screen

	navigated   []string
	clicks      []click
	screenshots int
	closed      int
}

func newFakeQuiz(cases ...domain.TestCase) *fakeQuiz {
	f := &fakeQuiz{tiles: make(map[string]domain.TestCase), screen: "blank"}
	for _, tc := range cases {
		f.tiles[tc.Key] = tc
		f.tileOrder = append(f.tileOrder, tc.Key)
	}
	return f
}

func (f *fakeQuiz) Navigate(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.navigateErr != nil {
		return f.navigateErr
	}
	f.navigated = append(f.navigated, url)
	f.screen = "start"
	return nil
}

func (f *fakeQuiz) Evaluate(ctx context.Context, expression string, res any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	switch {
	case expression == startVisibleScript:
		*res.(*bool) = !f.startHidden
		return nil
	case expression == tileKeysScript:
		if f.noTiles {
			*res.(*[]string) = nil
			return nil
		}
		*res.(*[]string) = append([]string(nil), f.tileOrder...)
		return nil
	}

	if sel, ok := parseSelector(expression, "document.querySelector(", ") !== null"); ok {
		if f.flakyEvals > 0 {
			f.flakyEvals--
			return errors.New("Execution context was destroyed")
		}
		*res.(*bool) = f.present(sel)
		return nil
	}

	if sel, ok := parseSelector(expression, "document.querySelector(", ").click()"); ok {
		if !f.present(sel) {
			return fmt.Errorf("TypeError: Cannot read properties of null (reading 'click')")
		}
		f.click(sel)
		return nil
	}

	return fmt.Errorf("fake page cannot evaluate %q", expression)
}

func (f *fakeQuiz) Screenshot(ctx context.Context) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shotErr != nil {
		return nil, f.shotErr
	}
	f.screenshots++
	return []byte("\x89PNG fake " + f.screen), nil
}

func (f *fakeQuiz) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	return nil
}

func parseSelector(expression, prefix, suffix string) (string, bool) {
	rest, ok := strings.CutPrefix(expression, prefix)
	if !ok {
		return "", false
	}
	literal, ok := strings.CutSuffix(rest, suffix)
	if !ok {
		return "", false
	}
	var sel string
	if err := json.Unmarshal([]byte(literal), &sel); err != nil {
		return "", false
	}
	return sel, true
}

func (f *fakeQuiz) choiceIndex(sel string) (int, bool) {
	var n int
	if _, err := fmt.Sscanf(sel, SelectorChoice+":nth-child(%d)", &n); err != nil {
		return 0, false
	}
	return n - 1, true
}

func (f *fakeQuiz) present(sel string) bool {
	switch sel {
	case SelectorStartScreen:
		return f.screen == "start"
	case SelectorTile:
		return f.screen == "start" && !f.noTiles && len(f.tiles) > 0
	case SelectorGameScreen:
		return f.screen == "game"
	case SelectorChoice:
		return f.screen == "game"
	case SelectorResultScreen, SelectorNextButton:
		return f.screen == "result"
	case SelectorFinishScreen:
		return f.screen == "finish"
	}

	if idx, ok := f.choiceIndex(sel); ok {
		if f.screen != "game" {
			return false
		}
		q := f.current.Questions[f.question]
		return idx >= 0 && idx < len(q.Choices)
	}

	for key := range f.tiles {
		if sel == TileSelector(key) {
			return f.screen == "start" && !f.noTiles
		}
	}
	return false
}

func (f *fakeQuiz) click(sel string) {
	questionNumber := 0
	if f.screen == "game" || f.screen == "result" {
		questionNumber = f.question + 1
	}

	switch {
	case sel == SelectorNextButton:
		f.question++
		if f.question >= len(f.current.Questions) {
			f.screen = "finish"
		} else {
			f.screen = "game"
		}
	case strings.HasPrefix(sel, SelectorChoice):
		idx, _ := f.choiceIndex(sel)
		q := f.current.Questions[f.question]
		if f.current.Mode() == domain.ModeHard || idx == q.CorrectAnswer {
			f.screen = "result"
		}
	default:
		for key, tc := range f.tiles {
			if sel == TileSelector(key) {
				f.current = tc
				f.question = 0
				f.screen = "game"
				if len(tc.Questions) == 0 {
					f.screen = "finish"
				}
			}
		}
	}

	f.clicks = append(f.clicks, click{Question: questionNumber, Selector: sel, Screen: f.screen})
}

// clicksFor returns the selectors clicked while question n was on screen
func (f *fakeQuiz) clicksFor(n int) []click {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []click
	for _, c := range f.clicks {
		if c.Question == n {
			out = append(out, c)
		}
	}
	return out
}

// fakeOpener hands out the same fake page and counts requests
type fakeOpener struct {
	page   *fakeQuiz
	err    error
	opened int
}

func (o *fakeOpener) NewPage(ctx context.Context) (browser.Page, error) {
	if o.err != nil {
		return nil, o.err
	}
	o.opened++
	return o.page, nil
}

// recordingReporter keeps steps for assertions
type recordingReporter struct {
	mu       sync.Mutex
	started  []string
	steps    []string
	finished []domain.TestResult
}

func (r *recordingReporter) CaseStarted(tc domain.TestCase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, tc.Key)
}

func (r *recordingReporter) Step(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) CaseFinished(result domain.TestResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = append(r.finished, result)
}

func makeCase(key string, mode domain.Mode, correct ...int) domain.TestCase {
	tc := domain.TestCase{
		Filename: key + ".json",
		Key:      key,
		Metadata: domain.Metadata{Title: strings.ToUpper(key), Mode: mode},
	}
	for i, c := range correct {
		tc.Questions = append(tc.Questions, domain.Question{
			ID:            fmt.Sprintf("q%d", i+1),
			Question:      fmt.Sprintf("Question %d?", i+1),
			Choices:       []string{"A", "B", "C", "D"},
			CorrectAnswer: c,
		})
	}
	return tc
}
