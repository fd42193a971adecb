package main

import (
	"database/sql"
	"fmt"

	"alerts_review/internal/config"
	"alerts_review/internal/logger"
	"alerts_review/internal/repository"
	"alerts_review/internal/repository/db"
	"alerts_review/internal/service"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/config.yml"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "alerts-review",
	Short: "Alert case review backend",
	Long: `alerts-review serves the case review API for pool and spa alerts.
Reviewers list cases, read telemetry around them, add notes and resolve or
suppress them; every case detail carries a slow-heating verdict.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigPath, "config file")
}

// app is everything a command needs after startup.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	db       *sql.DB
	services *service.Service
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Errorw("sqlite_close_failed", "err", err)
	}
	_ = a.log.Sync()
}

// bootstrap loads config, then opens the store and wires the services.
func bootstrap() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.Get(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})

	conn, err := db.InitDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init sqlite: %w", err)
	}

	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Options{
		SigningKey:    cfg.Auth.SigningKey,
		TokenTTL:      cfg.Auth.TokenTTL,
		ListLimit:     cfg.Cases.ListLimit,
		WindowPadding: cfg.Cases.WindowPadding,
		Thresholds:    cfg.Heating,
		Location:      cfg.Location(),
		SimulatorStep: cfg.Simulator.Step,
	}, log)

	return &app{cfg: cfg, log: log, db: conn, services: services}, nil
}
