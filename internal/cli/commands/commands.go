package commands

import (
	"errors"

	"gtr/internal/cli"
	"gtr/internal/config"
	"gtr/internal/discovery"
	"gtr/internal/parser"
	"gtr/internal/storage"
	"gtr/internal/ui"

	"github.com/spf13/cobra"
)

// ErrRunFailed is returned when at least one executed case failed.
// The summary has already been printed, so main only sets the exit status.
var ErrRunFailed = errors.New("test run failed")

// Commands holds all CLI commands
type Commands struct {
	Run   *RunCommand
	List  *ListCommand
	Fails *FailsCommand
	Smoke *SmokeCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	filter := discovery.NewFilter()
	loader := discovery.NewLoader(discovery.NewScanner(), discovery.NewParser(), filter)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	failureViewer := ui.NewFailureViewer(jsonStorage)
	failureParser := parser.NewFailureParser(cfg)

	return &Commands{
		Run:   NewRunCommand(cfg, loader, filter, failureParser, jsonStorage, formatter, failureViewer),
		List:  NewListCommand(cfg, loader, formatter, jsonStorage),
		Fails: NewFailsCommand(cfg, jsonStorage, formatter, failureViewer),
		Smoke: NewSmokeCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config with flags after parsing
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Play every question set in the browser",
		Long:    "Discover question sets, play each one through the quiz page in a real browser and stop at the first failure",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().BoolVar(&flags.Headless, "headless", false, "Run the browser without a window")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Only run question sets whose key contains this text")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print every step and mirror the page console")
	runCmd.Flags().StringVar(&flags.HTMLPath, "html-path", config.DefaultHTMLPath, "Path to the quiz page")
	runCmd.Flags().IntVar(&flags.TimeoutSeconds, "timeout", int(config.DefaultTimeout.Seconds()), "Seconds to wait for each element")
	runCmd.Flags().BoolVar(&flags.FirstPerMode, "first-per-mode", false, "Run only the first easy and the first hard question set")
	runCmd.Flags().StringVar(&flags.DataDir, "data-dir", config.DefaultDataDir, "Directory holding questions*.json files")
	runCmd.Flags().StringVar(&flags.OutputDir, "output-dir", config.DefaultOutputDir, "Directory for screenshots and the results file")
	runCmd.Flags().StringVar(&flags.ChromeURL, "chrome-url", "", "DevTools websocket URL of an already running browser")
	runCmd.Flags().BoolVar(&flags.OpenFails, "open-fails", false, "Open the fails viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered question sets",
		Long:    "Scan and list all question sets without opening a browser",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Only list question sets whose key contains this text")
	listCmd.Flags().StringVar(&flags.DataDir, "data-dir", config.DefaultDataDir, "Directory holding questions*.json files")
	listCmd.Flags().StringVar(&flags.OutputDir, "output-dir", config.DefaultOutputDir, "Directory holding the last results file")
	listCmd.Flags().BoolVarP(&flags.ShowQuestions, "questions", "q", false, "Print each question set's questions")
	rootCmd.AddCommand(listCmd)

	// Fails command
	failsCmd := &cobra.Command{
		Use:     "fails",
		Short:   "View failures of the last run interactively",
		Long:    "Display the failures saved by the last run in an interactive viewer",
		RunE:    c.Fails.Execute,
		PreRunE: applyFlags,
	}
	failsCmd.Flags().StringVar(&flags.OutputDir, "output-dir", config.DefaultOutputDir, "Directory holding the last results file")
	rootCmd.AddCommand(failsCmd)

	// Smoke command
	smokeCmd := &cobra.Command{
		Use:     "smoke",
		Short:   "Check that the browser starts and its console reaches the runner",
		RunE:    c.Smoke.Execute,
		PreRunE: applyFlags,
	}
	smokeCmd.Flags().BoolVar(&flags.Headless, "headless", false, "Run the browser without a window")
	smokeCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Mirror the page console")
	smokeCmd.Flags().IntVar(&flags.TimeoutSeconds, "timeout", int(config.DefaultTimeout.Seconds()), "Seconds to wait for each check")
	smokeCmd.Flags().StringVar(&flags.ChromeURL, "chrome-url", "", "DevTools websocket URL of an already running browser")
	rootCmd.AddCommand(smokeCmd)
}
