package cli

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wrale/wfthermald/internal/config"
	"github.com/wrale/wfthermald/internal/dbusevents"
	"github.com/wrale/wfthermald/internal/logging"
	"github.com/wrale/wfthermald/internal/metrics"
	"github.com/wrale/wfthermald/internal/store"
	"github.com/wrale/wfthermald/internal/supervisor"
	"github.com/wrale/wfthermald/internal/sysfs"
)

const readHeaderTimeout = 10 * time.Second

func newRunCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the thermal governor in the foreground",
		Long: `Run starts the profile-switching supervisor loop and blocks until
terminated by SIGINT or SIGTERM. On shutdown it persists the tuned state
and restores the safe baseline frequency cap across all CPUs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGovernor(cfg)
		},
	}
}

func runGovernor(cfg *config.Config) error {
	log, err := logging.New(logging.FromEnv(cfg.LogLevel, cfg.LogJSON), "")
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(log) }()

	reg := metrics.New()
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", reg.Handler())
		srv := &http.Server{
			Addr:              cfg.ManagementAddr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		}
		if err := srv.ListenAndServe(); err != nil {
			log.Warn("management listener stopped", zap.Error(err))
		}
	}()

	adapter := sysfs.NewLinuxAdapter(cfg.SysfsConfig())
	fileStore := store.NewFileStore(cfg.StateFile, log)

	reader, err := dbusevents.New(log)

	var sup *supervisor.Supervisor
	if err != nil {
		log.Warn("profile-event reader unavailable, continuing on current profile only", zap.Error(err))
		sup = supervisor.New(adapter, fileStore, reg, log, nil, nil)
	} else {
		defer reader.Close()
		sup = supervisor.New(adapter, fileStore, reg, log, reader, reader.Changes)
	}

	sup.Run()
	return nil
}
