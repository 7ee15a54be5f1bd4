package main

import (
	"embed"
	"io"
	"os"

	"secretsanta/internal/config"

	"github.com/google/logger"
	"github.com/spf13/cobra"
)

//go:embed all:templates
var templateFS embed.FS

//go:embed all:assets
var assetsFS embed.FS

var cfg *config.AppConfig

var rootCmd = &cobra.Command{
	Use:           "secretsanta",
	Short:         "Secret santa draw and lookup server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger.Init("secretsanta", cfg.Verbose, false, io.Discard)
		return nil
	},
}

func main() {
	rootCmd.AddCommand(generateCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
