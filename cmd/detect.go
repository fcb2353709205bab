package cmd

import (
	"github.com/spf13/cobra"
)

// newDetectCommand defines the explicit form of the root action
func newDetectCommand(runE func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [PROJECT_PATH]",
		Short: "Detect whether PROJECT_PATH is a Solidity/Foundry project",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runE,
	}
}
