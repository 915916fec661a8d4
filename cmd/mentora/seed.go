package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mentoraq/backend/internal/config"
	"github.com/mentoraq/backend/internal/seed"
)

func newSeedCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all questions and answers with demo data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			_, err = seed.Run(cmd.Context(), st, time.Now())
			return err
		},
	}
}
