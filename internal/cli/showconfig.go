package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wrale/wfthermald/internal/config"
)

func newShowConfigCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show-config",
		Short: "Print the resolved configuration as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
