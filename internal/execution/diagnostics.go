package execution

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gtr/internal/browser"
)

const screenshotTimeout = 5 * time.Second

// Screenshotter writes diagnostic captures into the output directory.
// Every failure is swallowed: a capture must never mask the error being diagnosed.
type Screenshotter struct {
	dir string
}

// NewScreenshotter creates a Screenshotter writing PNG files into dir
func NewScreenshotter(dir string) *Screenshotter {
	return &Screenshotter{dir: dir}
}

// Capture saves the page as <dir>/<name>.png and returns the path, or "" on failure.
// It runs even when ctx is already past its deadline.
func (s *Screenshotter) Capture(ctx context.Context, page browser.Page, name string) string {
	if s == nil || page == nil {
		return ""
	}

	shotCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), screenshotTimeout)
	defer cancel()

	buf, err := page.Screenshot(shotCtx)
	if err != nil || len(buf) == 0 {
		return ""
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return ""
	}
	path := s.Path(name)
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return ""
	}
	return path
}

// Path returns where a capture with the given name is written
func (s *Screenshotter) Path(name string) string {
	return filepath.Join(s.dir, name+".png")
}

// Sanitize replaces every character that is not an ASCII letter or digit with '_'
func Sanitize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// TimeoutShotName is the capture name used when waiting for selector times out
func TimeoutShotName(selector string) string {
	return "fail_timeout_wait_for_" + Sanitize(selector)
}
