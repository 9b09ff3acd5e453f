package commands

import (
	"strings"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtr/internal/browser"
	"gtr/internal/config"
	"gtr/internal/execution"
	"gtr/internal/ui"
)

// SmokeCommand handles the smoke command
type SmokeCommand struct {
	config *config.Config
}

// NewSmokeCommand creates a new SmokeCommand
func NewSmokeCommand(cfg *config.Config) *SmokeCommand {
	return &SmokeCommand{config: cfg}
}

// Execute runs the command
func (sc *SmokeCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(config.DefaultEnvFile); err != nil {
		return err
	}

	formatter := ui.NewFormatter(sc.config)

	var seen atomic.Bool
	session, err := browser.Launch(cmd.Context(), browser.Options{
		Headless:  sc.config.Flags.Headless,
		Width:     sc.config.ViewportWidth,
		Height:    sc.config.ViewportHeight,
		ExecPath:  browser.ResolveExecutable(sc.config.GetExecOverride(), sc.config.GetExecCandidates(), nil),
		RemoteURL: sc.config.ChromeURL,
		OnConsole: func(msg browser.ConsoleMessage) {
			formatter.PrintConsole(msg)
			if strings.Contains(msg.Text, execution.SmokeMessage) {
				seen.Store(true)
			}
		},
		Logf: formatter.Logf,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	shots := execution.NewScreenshotter(sc.config.OutputDir)
	waiter := execution.NewWaiter(sc.config.Timeout, sc.config.PollInterval, shots)

	if err := execution.Smoke(cmd.Context(), session, waiter, seen.Load); err != nil {
		color.Red("✗ Smoke check failed: %v", err)
		return ErrRunFailed
	}

	color.Green("✓ Smoke check passed: console message %s received", execution.SmokeMessage)

	// Pages still open after the check, verbose only
	targets, err := session.Targets(cmd.Context())
	if err != nil {
		return err
	}
	for _, t := range targets {
		formatter.Logf("open page %s %s", t.TargetID, t.URL)
	}
	return nil
}
