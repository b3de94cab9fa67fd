package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"rulesync.dev/rulesync/internal/actions"
	rserrors "rulesync.dev/rulesync/internal/errors"
)

// newDeriveCmd creates the derive command
func newDeriveCmd() *cobra.Command {
	var (
		from string
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "derive <name>",
		Short: "Create a new branch with its own marker file",
		Long: `Create a new branch from the current branch (or --from), rename the marker
file to match the new branch, remove the configured excluded paths, commit
and push the branch to the remote.

The name is sanitized for the git ref namespace; if sanitization changes it,
you are asked to confirm (or pass --yes in non-interactive use).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newRunContext()
			if err != nil {
				return err
			}

			opts := actions.DeriveOptions{
				Name: args[0],
				From: from,
				Yes:  yes,
			}

			_, err = actions.DeriveAction(ctx, opts)
			if errors.Is(err, rserrors.ErrAborted) {
				ctx.Splog.Info("Aborted by user.")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Branch to derive from (defaults to the current branch)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Accept a sanitized branch name without prompting")

	return cmd
}
