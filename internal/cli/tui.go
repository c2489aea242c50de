package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flavorscape/internal/tui"
	"github.com/mesh-intelligence/flavorscape/pkg/menu"
)

func newTUICmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI (default)",
		RunE:  e.runTUI,
	}
}

func (e *env) runTUI(cmd *cobra.Command, args []string) error {
	// The UI owns the terminal, so logs go nowhere unless a file is set.
	session, log, cleanup, err := e.openSession("")
	if err != nil {
		return err
	}
	defer cleanup()

	app := tui.New(session, menu.NewValidator(e.cfg.Currency), tui.WithLogger(log))
	if err := tui.Run(cmd.Context(), app); err != nil {
		return sysError(err)
	}
	return nil
}
