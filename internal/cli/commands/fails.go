package commands

import (
	"github.com/spf13/cobra"

	"gtr/internal/config"
	"gtr/internal/storage"
	"gtr/internal/ui"
)

// FailsCommand handles the fails command
type FailsCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewFailsCommand creates a new FailsCommand
func NewFailsCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter, viewer ui.Viewer) *FailsCommand {
	return &FailsCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (fc *FailsCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := fc.storage.Load()
	if err != nil {
		return err
	}

	fc.formatter.PrintMetaStats(results)
	return fc.viewer.View(results)
}
