package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"gtr/internal/browser"
	"gtr/internal/config"
	"gtr/internal/domain"
)

// Formatter formats and displays output.
// In verbose mode it reports every case and step as it is played; otherwise
// the progress bar stands in for them and only the summary is printed.
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		config: cfg,
		out:    color.Output,
	}
}

// SetOutput redirects everything the formatter prints
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// verbose is read on every call: flags are applied after the formatter is built
func (f *Formatter) verbose() bool {
	return f.config.Flags.Verbose
}

func (f *Formatter) println(s string) {
	fmt.Fprintln(f.out, s)
}

// modeString colors easy green and everything else yellow
func modeString(mode domain.Mode) string {
	if mode == domain.ModeEasy {
		return color.GreenString(string(mode))
	}
	return color.YellowString(string(mode))
}

// PrintBanner prints the run header
func (f *Formatter) PrintBanner() {
	f.println(color.New(color.FgHiBlue, color.Bold).Sprint("🎮 Starting Game Tests"))
	f.println("")
}

// PrintInventory lists the discovered test cases
func (f *Formatter) PrintInventory(cases []domain.TestCase) {
	f.println(fmt.Sprintf("%s Found %d question set(s) to test:", color.GreenString("📋"), len(cases)))
	for _, tc := range cases {
		f.println(fmt.Sprintf("  %s %s: %s (mode: %s)",
			color.New(color.Faint).Sprint("•"),
			color.HiWhiteString(tc.Key),
			tc.Metadata.Title,
			modeString(tc.Mode()),
		))
	}
	f.println("")
}

// CaseStarted announces a test case
func (f *Formatter) CaseStarted(tc domain.TestCase) {
	if !f.verbose() {
		return
	}
	f.println(fmt.Sprintf("%s Testing: %s (%s)", color.HiBlueString("🧪"), color.HiWhiteString(tc.Metadata.Title), tc.Mode()))
}

// Step reports one completed stage of the current case
func (f *Formatter) Step(format string, args ...any) {
	if !f.verbose() {
		return
	}
	f.println("    " + fmt.Sprintf(format, args...))
}

// CaseFinished reports the outcome of a test case
func (f *Formatter) CaseFinished(result domain.TestResult) {
	if !f.verbose() {
		return
	}
	if result.Passed {
		f.println(fmt.Sprintf("  %s Passed\n", color.GreenString("✅")))
		return
	}
	f.println(fmt.Sprintf("  %s Failed: %s\n", color.RedString("❌"), result.Error))
}

// PrintConsole mirrors a page console message
func (f *Formatter) PrintConsole(msg browser.ConsoleMessage) {
	if !f.verbose() {
		return
	}
	dim := color.New(color.Faint)
	f.println(fmt.Sprintf("    %s %s", dim.Sprint("🌐"), dim.Sprint(msg.Text)))
}

// Logf prints browser driver diagnostics
func (f *Formatter) Logf(format string, args ...any) {
	if !f.verbose() {
		return
	}
	f.println(color.New(color.Faint).Sprintf("    [chromedp] "+format, args...))
}

// PrintSummary prints one line per executed case and the overall verdict
func (f *Formatter) PrintSummary(summary domain.RunSummary) {
	f.println(color.New(color.FgHiBlue, color.Bold).Sprint("📊 Test Summary"))
	f.println(color.New(color.Faint).Sprint("================================"))

	for _, r := range summary.Results {
		if r.Passed {
			f.println(fmt.Sprintf("%s %s %s (%s)", color.GreenString("✅"), color.New(color.FgGreen, color.Bold).Sprint("PASSED"), r.Name, r.Mode))
			continue
		}
		f.println(fmt.Sprintf("%s %s %s (%s)", color.RedString("❌"), color.New(color.FgRed, color.Bold).Sprint("FAILED"), r.Name, r.Mode))
		if r.Error != "" {
			f.println("    " + color.RedString(r.Error))
		}
	}
	f.println("")

	passed := summary.Passed()
	total := len(summary.Results)
	f.println(fmt.Sprintf("Results: %d/%d question sets passed", passed, total))

	if skipped := summary.Selected - total; skipped > 0 {
		f.println(color.YellowString("Skipped %d question set(s) after the first failure", skipped))
	}

	if summary.AllPassed() {
		f.println(fmt.Sprintf("%s Success! All tests passed!", color.GreenString("🎉")))
	} else {
		f.println(fmt.Sprintf("%s Some tests failed", color.RedString("💔")))
	}
}

// PrintMetaStats displays the statistics of a stored run report
func (f *Formatter) PrintMetaStats(output *domain.TestResultsOutput) {
	meta := output.Meta

	f.println("")
	f.println(color.CyanString("╔═══════════════════════════════════════════════════════════════╗"))
	f.println(color.CyanString("║                    Test Execution Statistics                  ║"))
	f.println(color.CyanString("╚═══════════════════════════════════════════════════════════════╝"))
	f.println("")

	row := func(label, value string, paint func(format string, a ...interface{}) string) {
		f.println(fmt.Sprintf("│ %-31s │ %s │", label, paint("%-27s", value)))
	}
	sep := "├─────────────────────────────────┼─────────────────────────────┤"

	f.println("┌─────────────────────────────────┬─────────────────────────────┐")
	row("Run ID", shortID(meta.RunID), color.WhiteString)
	f.println(sep)
	row("Selected Question Sets", fmt.Sprint(meta.TotalTestCases), color.WhiteString)
	f.println(sep)
	row("Passed", fmt.Sprint(meta.PassedTestCases), color.GreenString)
	f.println(sep)
	row("Failed", fmt.Sprint(meta.FailedTestCases), color.RedString)
	f.println(sep)
	row("Skipped", fmt.Sprint(meta.SkippedCases), color.YellowString)
	f.println(sep)
	row("Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), color.WhiteString)
	f.println(sep)
	row("Timestamp", meta.Timestamp, color.WhiteString)
	f.println("└─────────────────────────────────┴─────────────────────────────┘")
	f.println("")

	if meta.FailedTestCases == 0 {
		f.println(color.GreenString("✓ All tests passed!"))
		return
	}
	f.println(color.RedString("✗ %d question set(s) failed", meta.FailedTestCases))
	for _, failure := range output.Failures {
		marker := color.RedString("✗")
		if failure.Resolved {
			marker = color.New(color.Faint).Sprint("✓")
		}
		f.println(fmt.Sprintf("  %s %s (%s) [%s]", marker, failure.TestName, failure.Key, failure.Kind))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// PrintTestList prints the discovered test cases as a tree, optionally with their questions.
// failedKeys is optional; cases in this set are marked with [F] in red (from the last run).
func (f *Formatter) PrintTestList(cases []domain.TestCase, showQuestions bool, failedKeys map[string]struct{}) {
	f.println(color.GreenString("Found %d question set(s) in %s:", len(cases), f.config.DataDir))
	f.println("")

	for i, tc := range cases {
		failMarker := ""
		if _, ok := failedKeys[tc.Key]; ok {
			failMarker = " " + color.RedString("[F]")
		}

		isLastCase := i == len(cases)-1
		branch, indent := "├── ", "│   "
		if isLastCase {
			branch, indent = "└── ", "    "
		}

		f.println(fmt.Sprintf("%s (%s, %s, %d questions)%s",
			color.CyanString(branch+tc.Filename), tc.Metadata.Title, modeString(tc.Mode()), len(tc.Questions), failMarker))

		if !showQuestions {
			continue
		}

		for j, q := range tc.Questions {
			prefix := indent + "├── "
			if j == len(tc.Questions)-1 {
				prefix = indent + "└── "
			}
			answer := ""
			if q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Choices) {
				answer = q.Choices[q.CorrectAnswer]
			}
			f.println(fmt.Sprintf("%s%s %s", prefix, color.YellowString(strings.TrimSpace(q.Question)), color.New(color.Faint).Sprintf("→ %s", answer)))
		}
	}
}
