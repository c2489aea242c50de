package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flavorscape/internal/config"
	"github.com/mesh-intelligence/flavorscape/pkg/menu"
)

func newInitCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and write config.yaml with the current settings if it does not exist.",
		RunE:  e.runInit,
	}
}

func (e *env) runInit(cmd *cobra.Command, args []string) error {
	// Log file paths resolved from flags or the environment are not saved.
	persisted := e.cfg
	persisted.Log.File = ""

	path, created, err := config.WriteDefault(e.configDir, persisted)
	if err != nil {
		return sysError(err)
	}

	// Check the configured backend opens before reporting success.
	store, err := menu.NewStore(e.cfg)
	if err != nil {
		return sysError(fmt.Errorf("initialize store: %w", err))
	}
	if err := store.Detach(); err != nil {
		return sysError(fmt.Errorf("finalize store: %w", err))
	}

	out := cmd.OutOrStdout()
	if e.flags.jsonMode {
		return json.NewEncoder(out).Encode(map[string]any{
			"path":    path,
			"created": created,
		})
	}
	if created {
		fmt.Fprintf(out, "Wrote %s\n", path)
	} else {
		fmt.Fprintf(out, "Config already exists at %s\n", path)
	}
	return nil
}
