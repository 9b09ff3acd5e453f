package execution

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gtr/internal/browser"
	"gtr/internal/config"
	"gtr/internal/domain"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(htmlPath, []byte("<html></html>"), 0644); err != nil {
		t.Fatalf("Failed to write page: %v", err)
	}

	cfg := config.New()
	cfg.HTMLPath = htmlPath
	cfg.OutputDir = filepath.Join(dir, "test_output")
	cfg.Timeout = 200 * time.Millisecond
	cfg.PollInterval = 10 * time.Millisecond
	cfg.SettleDelay = time.Millisecond
	return cfg
}

func newTestExecutor(cfg *config.Config, opener PageOpener, reporter Reporter) *CaseExecutor {
	shots := NewScreenshotter(cfg.OutputDir)
	waiter := NewWaiter(cfg.Timeout, cfg.PollInterval, shots)
	return NewCaseExecutor(cfg, opener, waiter, shots, reporter)
}

func assertShot(t *testing.T, cfg *config.Config, name string) {
	t.Helper()
	if _, err := os.Stat(NewScreenshotter(cfg.OutputDir).Path(name)); err != nil {
		t.Errorf("expected screenshot %s: %v", name, err)
	}
}

func TestCaseExecutor_Execute_Pass(t *testing.T) {
	cfg := newTestConfig(t)

	easy := makeCase("questions_easy", domain.ModeEasy, 1, 2, 0)
	hard := makeCase("questions_hard", domain.ModeHard, 3, 3)
	page := newFakeQuiz(easy, hard)
	opener := &fakeOpener{page: page}
	reporter := &recordingReporter{}

	executor := newTestExecutor(cfg, opener, reporter)

	for _, tc := range []domain.TestCase{easy, hard} {
		result := executor.Execute(context.Background(), tc)
		if !result.Passed {
			t.Fatalf("%s: Passed = false, error = %s", tc.Key, result.Error)
		}
		if result.Name != tc.Metadata.Title || result.Key != tc.Key || result.Mode != tc.Mode() {
			t.Errorf("%s: result identity = %+v", tc.Key, result)
		}
		if result.Error != "" || result.Err != nil {
			t.Errorf("%s: unexpected error on pass: %q", tc.Key, result.Error)
		}

		assertShot(t, cfg, "tiles_present_before_click_"+tc.Key)
		assertShot(t, cfg, "before_click_"+tc.Key)
		assertShot(t, cfg, "finish_"+tc.Key)
	}

	if opener.opened != 2 || page.closed != 2 {
		t.Errorf("opened %d pages, closed %d; want 2 and 2", opener.opened, page.closed)
	}
	if len(page.navigated) != 2 || !strings.HasPrefix(page.navigated[0], "file://") {
		t.Errorf("navigated = %v, want two file:// URLs", page.navigated)
	}

	if len(reporter.started) != 2 || len(reporter.finished) != 2 {
		t.Errorf("reporter saw %d starts and %d finishes", len(reporter.started), len(reporter.finished))
	}
	wantSteps := []string{
		"Testing start screen... ✓",
		"Available tiles: [questions_easy questions_hard]",
		"[easy] Testing question 1/3... ✓",
		"[easy] Testing question 3/3... ✓",
		"[hard] Testing question 2/2... ✓",
	}
	joined := strings.Join(reporter.steps, "\n")
	for _, step := range wantSteps {
		if !strings.Contains(joined, step) {
			t.Errorf("missing step %q in:\n%s", step, joined)
		}
	}
}

func TestCaseExecutor_Execute_Failures(t *testing.T) {
	tc := makeCase("questions_easy", domain.ModeEasy, 1)

	tests := []struct {
		name      string
		setup     func(cfg *config.Config, page *fakeQuiz, opener *fakeOpener)
		tc        domain.TestCase
		check     func(t *testing.T, err error)
		wantShot  string
		wantPages int
	}{
		{
			name: "start screen hidden",
			setup: func(cfg *config.Config, page *fakeQuiz, opener *fakeOpener) {
				page.startHidden = true
			},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrStartScreenHidden) {
					t.Errorf("error = %v, want ErrStartScreenHidden", err)
				}
			},
			wantShot:  "fail_start_not_visible",
			wantPages: 1,
		},
		{
			name: "no tiles rendered",
			setup: func(cfg *config.Config, page *fakeQuiz, opener *fakeOpener) {
				page.noTiles = true
			},
			check:     wantTimeout(SelectorTile),
			wantShot:  TimeoutShotName(SelectorTile),
			wantPages: 1,
		},
		{
			name: "tile for this case missing",
			setup: func(cfg *config.Config, page *fakeQuiz, opener *fakeOpener) {
				delete(page.tiles, tc.Key)
				page.tiles["questions_other"] = makeCase("questions_other", domain.ModeHard, 0)
			},
			check:     wantTimeout(TileSelector(tc.Key)),
			wantShot:  TimeoutShotName(TileSelector(tc.Key)),
			wantPages: 1,
		},
		{
			name: "navigation fails",
			setup: func(cfg *config.Config, page *fakeQuiz, opener *fakeOpener) {
				page.navigateErr = errors.New("net::ERR_FILE_NOT_FOUND")
			},
			check:     wantNavigation,
			wantPages: 1,
		},
		{
			name: "page file missing",
			setup: func(cfg *config.Config, page *fakeQuiz, opener *fakeOpener) {
				cfg.HTMLPath = filepath.Join(cfg.OutputDir, "missing.html")
			},
			check:     wantNavigation,
			wantPages: 0,
		},
		{
			name: "unsupported mode",
			tc: func() domain.TestCase {
				c := makeCase("questions_medium", "medium", 0)
				return c
			}(),
			check: func(t *testing.T, err error) {
				var modeErr *UnsupportedModeError
				if !errors.As(err, &modeErr) {
					t.Errorf("error = %v, want *UnsupportedModeError", err)
				}
			},
			wantPages: 0,
		},
		{
			name: "page cannot be opened",
			setup: func(cfg *config.Config, page *fakeQuiz, opener *fakeOpener) {
				opener.err = errors.New("browser gone")
			},
			check: func(t *testing.T, err error) {
				if err == nil || !strings.Contains(err.Error(), "browser gone") {
					t.Errorf("error = %v, want browser gone", err)
				}
			},
			wantPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(t)
			page := newFakeQuiz(tc)
			opener := &fakeOpener{page: page}
			if tt.setup != nil {
				tt.setup(cfg, page, opener)
			}
			testCase := tc
			if tt.tc.Key != "" {
				testCase = tt.tc
			}

			executor := newTestExecutor(cfg, opener, &recordingReporter{})
			result := executor.Execute(context.Background(), testCase)

			if result.Passed {
				t.Fatal("Passed = true, want a failure")
			}
			if result.Err == nil || result.Error != result.Err.Error() {
				t.Errorf("Error = %q, Err = %v; want the error text recorded verbatim", result.Error, result.Err)
			}
			tt.check(t, result.Err)

			if tt.wantShot != "" {
				assertShot(t, cfg, tt.wantShot)
			}
			if opener.opened != tt.wantPages {
				t.Errorf("opened %d pages, want %d", opener.opened, tt.wantPages)
			}
			if page.closed != opener.opened {
				t.Errorf("closed %d pages, opened %d", page.closed, opener.opened)
			}
		})
	}
}

func TestCaseExecutor_Execute_QuestionFailureNamesTheRound(t *testing.T) {
	cfg := newTestConfig(t)

	tc := makeCase("questions_easy", domain.ModeEasy, 1, 2)
	page := newFakeQuiz(tc)
	// The page disagrees about the second answer, so its result screen never shows
	page.tiles[tc.Key] = makeCase("questions_easy", domain.ModeEasy, 1, 3)

	executor := newTestExecutor(cfg, &fakeOpener{page: page}, &recordingReporter{})
	result := executor.Execute(context.Background(), tc)

	if result.Passed {
		t.Fatal("Passed = true, want a failure")
	}
	if !strings.HasPrefix(result.Error, "question 2/2: timeout waiting for element: #result-screen") {
		t.Errorf("Error = %q", result.Error)
	}
	var timeoutErr *TimeoutError
	if !errors.As(result.Err, &timeoutErr) {
		t.Errorf("Err = %v, want a wrapped *TimeoutError", result.Err)
	}
}

func wantTimeout(selector string) func(t *testing.T, err error) {
	return func(t *testing.T, err error) {
		t.Helper()
		var timeoutErr *TimeoutError
		if !errors.As(err, &timeoutErr) {
			t.Fatalf("error = %v, want *TimeoutError", err)
		}
		if timeoutErr.Selector != selector {
			t.Errorf("Selector = %q, want %q", timeoutErr.Selector, selector)
		}
	}
}

func wantNavigation(t *testing.T, err error) {
	t.Helper()
	var navErr *browser.NavigationError
	if !errors.As(err, &navErr) {
		t.Errorf("error = %v, want *browser.NavigationError", err)
	}
}
