package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mentoraq/backend/internal/config"
	"github.com/mentoraq/backend/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// newRootCommand builds the CLI. Every subcommand sees the loaded config.
func newRootCommand() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:           "mentora",
		Short:         "MentoraQ Q&A backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = *loaded
			logger.Init(cfg.App.Environment, cfg.App.LogLevel)
			return nil
		},
	}

	cmd.AddCommand(newServeCommand(&cfg))
	cmd.AddCommand(newMigrateCommand(&cfg))
	cmd.AddCommand(newSeedCommand(&cfg))

	return cmd
}
