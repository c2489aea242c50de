package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/flavorscape/pkg/menu"
)

const modulePath = "github.com/mesh-intelligence/flavorscape"

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the flavorscape version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.flags.jsonMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
					"version": menu.Version,
					"module":  modulePath,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "flavorscape v%s\nmodule: %s\n", menu.Version, modulePath)
			return nil
		},
	}
}
