// Package cli assembles the wfthermald cobra command tree, grounded on the
// teacher's cmd/wfdevice/internal/root package: a root command carrying
// persistent logging/state flags, with subcommands added by factory
// functions that each return a *cobra.Command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wrale/wfthermald/internal/config"
)

// New creates and configures the root command for wfthermald.
func New() (*cobra.Command, error) {
	cfg := config.New()

	cmd := &cobra.Command{
		Use:   "wfthermald",
		Short: "Self-tuning CPU thermal governor",
		Long: `wfthermald keeps a laptop fanless or near-fanless under ordinary loads
while preserving sustained performance under heavy loads, by dynamically
capping CPU max frequency in response to measured package temperature and
self-tuning the cap table from observed thermal and fan behavior.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logging level (debug, info, warn, error)")
	flags.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "enable JSON log format")
	flags.StringVar(&cfg.StateFile, "state-file", cfg.StateFile, "path to the persisted tuned-state document")
	flags.StringVar(&cfg.ThermalZonePath, "thermal-zone", cfg.ThermalZonePath, "sysfs path to the package thermal zone")
	flags.StringVar(&cfg.Fan1Path, "fan1", cfg.Fan1Path, "sysfs path to the first fan RPM input")
	flags.StringVar(&cfg.Fan2Path, "fan2", cfg.Fan2Path, "sysfs path to the second fan RPM input")
	flags.StringVar(&cfg.BoostPath, "boost-path", cfg.BoostPath, "sysfs path to hwp_dynamic_boost")
	flags.StringVar(&cfg.CPURoot, "cpu-root", cfg.CPURoot, "sysfs root of the CPU topology")
	flags.StringVar(&cfg.ManagementAddr, "management-addr", cfg.ManagementAddr, "address for the metrics listener")

	cmd.AddCommand(newRunCmd(cfg))
	cmd.AddCommand(newStatusCmd(cfg))
	cmd.AddCommand(newShowConfigCmd(cfg))

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("invalid flag: %w", err)
	})

	return cmd, nil
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	cmd, err := New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
