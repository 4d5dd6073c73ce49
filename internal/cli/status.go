package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wrale/wfthermald/internal/config"
	"github.com/wrale/wfthermald/internal/logging"
	"github.com/wrale/wfthermald/internal/store"
	"github.com/wrale/wfthermald/internal/thermalctl"
)

func newStatusCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the persisted thermal tables without requiring the daemon to be running",
		Long: `Status reads the on-disk tuned-state document and prints a human summary
of each profile's cap ladder. It does not contact a running daemon.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileStore := store.NewFileStore(cfg.StateFile, logging.NewNop())
			state := fileStore.Load()
			printTable(cmd, "power-saver", thermalctl.PowerSaver, state.PowerSaver)
			printTable(cmd, "balanced", thermalctl.Balanced, state.Balanced)
			printTable(cmd, "performance", thermalctl.Performance, state.Performance)
			return nil
		},
	}
}

func printTable(cmd *cobra.Command, label string, p thermalctl.Profile, t thermalctl.Table) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (ceiling %d kHz):\n", label, p.Ceiling())
	fmt.Fprintf(cmd.OutOrStdout(), "  max_cap=%d caps=%v thresholds=%v hysteresis=%d\n",
		t.MaxCap, t.Caps, t.Thresholds, t.Hysteresis)
}
