package cmd

import (
	"github.com/MyelinBots/nabeatsu-go/config"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:           "nabeatsu",
	Short:         "Nabeatsu game and comment board backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	// no subcommand means serve
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile, "path to the JSON config file")
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
	}

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.Config, error) {
	return config.LoadConfig(configFile)
}
