package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rulesync version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rulesync %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
