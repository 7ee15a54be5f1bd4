package main

import (
	"fmt"

	"secretsanta/internal/config"
	"secretsanta/internal/services"
	"secretsanta/internal/store"

	"github.com/google/logger"
	"github.com/spf13/cobra"
)

var outputFile string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draw the secret santa pairs and write the records files",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "full records file (overrides SANTA_DB_FILE)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	roster, err := config.LoadRoster(cfg.RosterFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Participants:")
	for _, p := range roster.Participants {
		fmt.Fprintf(out, "%s - Group %s\n", p.Name, p.Group)
	}

	service := services.NewSantaService(services.NewRand(), roster.Restrictions, cfg.MaxAttempts, cfg.CodeLength)
	result, err := service.Run(roster.Participants)
	if err != nil {
		return fmt.Errorf("draw aborted, no files written: %w", err)
	}

	fmt.Fprintf(out, "\nValid assignment found after %d attempt(s). Access codes:\n", result.Attempts)
	for _, rec := range result.Public {
		fmt.Fprintf(out, "%s | %s\n", rec.ParticipantName, rec.AccessCode)
	}

	fullPath := cfg.DBFile
	if outputFile != "" {
		fullPath = outputFile
	}
	// Write failures are reported per file; they do not fail the command.
	if err := store.NewJSONStore(fullPath, cfg.PublicFile).Save(result.Access, result.Public); err != nil {
		logger.Errorf("Draw completed but some files were not written: %v", err)
	}
	return nil
}
