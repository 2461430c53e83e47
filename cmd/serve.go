package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MyelinBots/nabeatsu-go/internal/db"
	"github.com/MyelinBots/nabeatsu-go/internal/log"
	"github.com/MyelinBots/nabeatsu-go/internal/router"
	"github.com/MyelinBots/nabeatsu-go/internal/server"
	"github.com/spf13/cobra"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log.Info.Printf("starting %s %s", cfg.AppConfig.APPName, cfg.AppConfig.Version)

		if migrateOnStart {
			if err := db.MigrateUp(cfg.DBConfig); err != nil {
				return err
			}
		}

		database, err := db.NewDatabase(cfg.DBConfig)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(); err != nil {
				log.Warn.Printf("close database: %v", err)
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		handler := router.Init(server.NewServices(cfg.AppConfig, database))
		return server.Run(ctx, server.New(cfg.AppConfig, handler))
	},
}
