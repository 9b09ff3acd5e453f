package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gtr/internal/domain"
	"gtr/internal/storage"
)

// FailureViewer displays the failures of the last run in an interactive TUI
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View displays failures in an interactive TUI. Toggling a failure's
// resolved flag is written back to the report immediately.
func (fv *FailureViewer) View(results *domain.TestResultsOutput) error {
	if len(results.Failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, failure := range results.Failures {
		list.AddItem(listItemText(failure, i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	// Last save error, shown in the header until the next successful save
	var saveErr error

	updateHeader := func() {
		text := fmt.Sprintf(" Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ",
			len(results.Failures), CountUnresolved(results.Failures))
		if saveErr != nil {
			text += fmt.Sprintf("| [red]save failed: %s[white] ", tview.Escape(saveErr.Error()))
		}
		headerView.SetText(text)
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Failures) {
			failure := results.Failures[index]
			statsView.SetText(formatFailureStats(failure, index+1))
			detailsView.SetText(formatFailureDetails(failure))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if ToggleResolved(results, index) {
					list.SetItemText(index, listItemText(results.Failures[index], index), "")
					saveErr = fv.storage.SaveOutput(results)
					updateHeader()
					updateDetails()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// ToggleResolved flips the resolved flag of the failure at index.
// It reports false when index is out of range.
func ToggleResolved(results *domain.TestResultsOutput, index int) bool {
	if index < 0 || index >= len(results.Failures) {
		return false
	}
	results.Failures[index].Resolved = !results.Failures[index].Resolved
	return true
}

// CountUnresolved counts failures not yet marked resolved
func CountUnresolved(failures []domain.TestFailure) int {
	count := 0
	for _, f := range failures {
		if !f.Resolved {
			count++
		}
	}
	return count
}

func listItemText(failure domain.TestFailure, index int) string {
	name := failure.TestName
	if name == "" {
		name = failure.Key
	}
	if name == "" {
		name = fmt.Sprintf("Question set %d", index+1)
	}
	name = tview.Escape(name)

	if failure.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
}

// formatFailureDetails formats a failure for display using tview color tags
func formatFailureDetails(failure domain.TestFailure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", tview.Escape(failure.TestName))
	fmt.Fprintf(&b, "[cyan]Key:[white]   %s\n", tview.Escape(failure.Key))
	fmt.Fprintf(&b, "[cyan]Mode:[white]  %s\n", failure.Mode)
	fmt.Fprintf(&b, "[cyan]Kind:[white]  %s\n", failure.Kind)
	if failure.Selector != "" {
		fmt.Fprintf(&b, "[cyan]Selector:[white] %s\n", tview.Escape(failure.Selector))
	}
	if failure.Elapsed != "" {
		fmt.Fprintf(&b, "[cyan]Elapsed:[white] %s\n", failure.Elapsed)
	}
	b.WriteString("\n")

	if failure.Message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n\n", tview.Escape(failure.Message))
	}
	if failure.Screenshot != "" {
		fmt.Fprintf(&b, "[yellow]Screenshot:[white]\n%s\n", tview.Escape(failure.Screenshot))
	}
	if failure.Resolved {
		b.WriteString("\n[gray]Marked as resolved[white]\n")
	}

	return b.String()
}

// formatFailureStats formats the one-line header of a failure
func formatFailureStats(failure domain.TestFailure, number int) string {
	key := failure.Key
	if key == "" {
		key = fmt.Sprintf("question set %d", number)
	}
	return fmt.Sprintf("[cyan]case:[white] [yellow]%s[white] ([yellow]%s[white], %s)\n",
		tview.Escape(key), failure.Mode, failure.Kind)
}
