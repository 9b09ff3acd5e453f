package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtr/internal/config"
	"gtr/internal/discovery"
	"gtr/internal/storage"
	"gtr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	loader    *discovery.Loader
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	loader *discovery.Loader,
	formatter *ui.Formatter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		loader:    loader,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := lc.loader.Load(lc.config.DataDir, lc.config.Flags.NameFilter)
	if errors.Is(err, discovery.ErrNoTestCases) {
		color.Yellow("No question sets found")
		return nil
	}
	if err != nil {
		return err
	}

	lc.formatter.PrintTestList(cases, lc.config.Flags.ShowQuestions, lc.failedKeys())
	return nil
}

// failedKeys returns the keys of unresolved failures from the last run, if any
func (lc *ListCommand) failedKeys() map[string]struct{} {
	output, err := lc.storage.Load()
	if err != nil {
		return nil
	}
	keys := make(map[string]struct{})
	for _, failure := range output.Failures {
		if !failure.Resolved {
			keys[failure.Key] = struct{}{}
		}
	}
	return keys
}
