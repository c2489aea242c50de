package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flavorscape/internal/shell"
	"github.com/mesh-intelligence/flavorscape/pkg/menu"
)

func newShellCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Edit the menu with line commands read from stdin",
		Long: "Read commands from stdin, one per line:\n\n" +
			"  add <name> <description> <course> <price>\n" +
			"  remove <id>\n" +
			"  list\n" +
			"  filter [course]\n" +
			"  stats\n" +
			"  help\n" +
			"  quit\n\n" +
			"Arguments with spaces are quoted as in a POSIX shell.",
		RunE: e.runShell,
	}
}

func (e *env) runShell(cmd *cobra.Command, args []string) error {
	session, log, cleanup, err := e.openSession("stderr")
	if err != nil {
		return err
	}
	defer cleanup()

	opts := []shell.Option{shell.WithJSON(e.flags.jsonMode), shell.WithLogger(log)}
	if isTerminal(cmd.InOrStdin()) && !e.flags.jsonMode {
		opts = append(opts, shell.WithPrompt("flavorscape> "))
	}

	sh := shell.New(session, menu.NewValidator(e.cfg.Currency), cmd.OutOrStdout(), opts...)
	if err := sh.Run(cmd.Context(), cmd.InOrStdin()); err != nil {
		if errors.Is(err, shell.ErrLineTooLong) {
			return userError(err)
		}
		return sysError(err)
	}
	return nil
}
