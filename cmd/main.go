// Package main runs the interactive bank management console.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/go-petr/pet-atm/internal/consoledelivery"
	"github.com/go-petr/pet-atm/internal/customerrepo"
	"github.com/go-petr/pet-atm/internal/customerservice"
	"github.com/go-petr/pet-atm/internal/middleware"
	"github.com/go-petr/pet-atm/pkg/configpkg"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "pet-atm",
	Short:        "In-memory bank management console",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configpkg.Load(configPath)
		if err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}

		logger := middleware.GetLogger(config)

		repo := customerrepo.NewRepoMem(config.MaxCustomers)
		service := customerservice.New(repo, config.MinimumBalance())
		handler := consoledelivery.NewHandler(service, cmd.InOrStdin(), cmd.OutOrStdout(), middleware.OperationLogger(logger))

		logger.Info().
			Int("max_customers", config.MaxCustomers).
			Str("min_balance", config.MinBalance).
			Msg("BANK CONSOLE HAS STARTED")

		ctx := logger.WithContext(context.Background())
		if err := handler.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("console stopped")
			return err
		}

		logger.Info().Int("customers", repo.Count(ctx)).Msg("BANK CONSOLE HAS STOPPED")

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./configs", "directory containing app.env")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Send()
		os.Exit(1)
	}
}
