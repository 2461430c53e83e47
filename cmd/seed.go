package cmd

import (
	"github.com/MyelinBots/nabeatsu-go/internal/db"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/gameconfig"
	"github.com/MyelinBots/nabeatsu-go/internal/log"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default game configuration if it is missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.NewDatabase(cfg.DBConfig)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := gameconfig.NewGameConfigRepository(database).EnsureDefaultConfig(cmd.Context()); err != nil {
			return err
		}
		log.Info.Printf("game config seeded")
		return nil
	},
}
