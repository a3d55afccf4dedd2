package main

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SynapticNetworks/snn-engine/internal/config"
	"github.com/SynapticNetworks/snn-engine/internal/telemetry"
)

func newRunCmd() *cobra.Command {
	var (
		configPath  string
		ticks       uint64
		verbose     bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a network from a config file and run it for a fixed number of ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, configPath, ticks, verbose, metricsAddr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "snnctl.toml", "path to run config toml")
	cmd.Flags().Uint64VarP(&ticks, "ticks", "t", 0, "override the config's tick count (0 keeps the config value)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while running")

	return cmd
}

func runRun(cmd *cobra.Command, configPath string, tickOverride uint64, verbose bool, metricsAddr string) error {
	log := newLogger(verbose)
	runID := uuid.New().String()
	runLog := log.WithField("run_id", runID)

	cfg, err := config.LoadOptional(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if tickOverride != 0 {
		cfg.Ticks = tickOverride
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}

	rt, err := config.Build(cfg)
	if err != nil {
		return fmt.Errorf("building runtime: %w", err)
	}

	runLog.WithFields(logrus.Fields{
		"neurons":    rt.NeuronsCount(),
		"ticks":      cfg.Ticks,
		"wheel_size": cfg.WheelSize,
	}).Info("starting run")

	var metrics *telemetry.Metrics
	if cfg.MetricsAddr != "" {
		metrics = telemetry.New()
		server := &http.Server{Addr: cfg.MetricsAddr, Handler: metrics.Handler()}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				runLog.WithError(err).Error("metrics server stopped")
			}
		}()
		runLog.WithField("addr", cfg.MetricsAddr).Info("serving metrics")
	}

	for i := uint64(0); i < cfg.Ticks; i++ {
		events := rt.Step()
		edgeVisits, spikesScheduled := rt.LastStepStats()
		if metrics != nil {
			metrics.ObserveStep(len(events), edgeVisits, spikesScheduled, rt.Wheel().CurrentTime())
		}
		runLog.WithFields(logrus.Fields{
			"tick":             i,
			"fired":            len(events),
			"edge_visits":      edgeVisits,
			"spikes_scheduled": spikesScheduled,
		}).Debug("tick complete")
	}

	runLog.Info("run complete")
	return nil
}
