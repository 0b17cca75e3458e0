package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ocs_dashboard/internal/config"
	"ocs_dashboard/internal/handlers"
	"ocs_dashboard/internal/logger"
	"ocs_dashboard/internal/repository"
	"ocs_dashboard/internal/repository/db"
	"ocs_dashboard/internal/server"
	"ocs_dashboard/internal/service"
	"ocs_dashboard/internal/twin"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard web server and the simulation ticker",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	// init logger
	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)

	specs, err := config.LoadFleet(cfg.Simulation.AssetsFile)
	if err != nil {
		return err
	}
	fleet, err := twin.NewFleet(specs, twin.NewRand(cfg.Simulation.Seed), time.Now)
	if err != nil {
		return fmt.Errorf("build fleet: %w", err)
	}

	// open DB
	conn, err := openDB(cfg, log)
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, fleet, service.Options{
		Log:           log,
		Clock:         time.Now,
		TelemetryRand: twin.NewRand(telemetrySeed(cfg.Simulation.Seed)),
		MaxEventAge:   cfg.Events.Retention,
		MaxEvents:     cfg.Events.MaxEntries,
	})
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// start simulator (via composed service)
	go services.Simulator.Run(ctx, cfg.Simulation.Tick)
	log.Infow("simulation_started", "assets", fleet.Keys(), "tick", cfg.Simulation.Tick)

	scheduler, err := startRetention(ctx, cfg.Events.PruneSchedule, services.Retention, log)
	if err != nil {
		return err
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, scheduler, srv, log)
	return nil
}

// openDB initializes the event log database using configuration.
func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	if cfg.DB.DSN == db.DefaultDSN {
		log.Infow("event log kept in memory", "dsn", cfg.DB.DSN)
	}
	return db.InitDB(cfg.DB.DSN)
}

// telemetrySeed derives a second stream so telemetry draws do not shift the fleet's.
func telemetrySeed(seed uint64) uint64 {
	if seed == 0 {
		return 0
	}
	return seed + 1
}

// startRetention schedules event-log pruning. An empty schedule returns a nil scheduler.
func startRetention(ctx context.Context, schedule string, retention service.Retention, log *logger.Logger) (*cron.Cron, error) {
	if schedule == "" {
		log.Infow("event pruning disabled")
		return nil, nil
	}
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		_, _ = retention.Prune(ctx)
	}); err != nil {
		return nil, fmt.Errorf("schedule event pruning: %w", err)
	}
	c.Start()
	return c, nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, scheduler *cron.Cron, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
