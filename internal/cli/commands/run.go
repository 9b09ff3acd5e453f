package commands

import (
	"fmt"

	"gtr/internal/browser"
	"gtr/internal/config"
	"gtr/internal/discovery"
	"gtr/internal/domain"
	"gtr/internal/execution"
	"gtr/internal/parser"
	"gtr/internal/storage"
	"gtr/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	loader    *discovery.Loader
	filter    *discovery.Filter
	parser    parser.Parser
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	loader *discovery.Loader,
	filter *discovery.Filter,
	failureParser parser.Parser,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		parser:    failureParser,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := config.LoadEnv(config.DefaultEnvFile); err != nil {
		return err
	}

	rc.formatter.PrintBanner()

	// Discover question sets
	cases, err := rc.loader.Load(rc.config.DataDir, rc.config.Flags.NameFilter)
	if err != nil {
		return err
	}
	rc.formatter.PrintInventory(cases)

	session, err := browser.Launch(ctx, browser.Options{
		Headless:  rc.config.Flags.Headless,
		Width:     rc.config.ViewportWidth,
		Height:    rc.config.ViewportHeight,
		ExecPath:  browser.ResolveExecutable(rc.config.GetExecOverride(), rc.config.GetExecCandidates(), nil),
		RemoteURL: rc.config.ChromeURL,
		OnConsole: rc.formatter.PrintConsole,
		Logf:      rc.formatter.Logf,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	shots := execution.NewScreenshotter(rc.config.OutputDir)
	waiter := execution.NewWaiter(rc.config.Timeout, rc.config.PollInterval, shots)
	executor := execution.NewCaseExecutor(rc.config, session, waiter, shots, rc.formatter)
	runner := execution.NewRunner(executor, rc.filter)

	// Step lines replace the progress bar in verbose mode
	if !rc.config.Flags.Verbose {
		selected := runner.Select(cases, rc.config.Flags.FirstPerMode)
		runner.SetProgress(ui.NewProgressBar(len(selected)))
	}

	summary := runner.Run(ctx, cases, rc.config.Flags.FirstPerMode)
	fmt.Println()

	// Parse failures
	var failures []domain.TestFailure
	for _, result := range summary.Results {
		failures = append(failures, rc.parser.ParseFailure(result)...)
	}

	// Save results
	output, saveErr := rc.storage.Save(summary.Results, failures, summary.Duration, summary.Selected)
	if saveErr != nil {
		color.Yellow("⚠ failed to save test results: %v", saveErr)
	}

	rc.formatter.PrintSummary(summary)

	if summary.AllPassed() {
		return nil
	}

	if rc.config.Flags.OpenFails && output != nil {
		session.Close()
		if err := rc.viewer.View(output); err != nil {
			return err
		}
	}
	return ErrRunFailed
}
