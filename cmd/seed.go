// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/provisioning-dashboard/internal/config"
	"github.com/canonical/provisioning-dashboard/internal/db"
	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/storage"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/pkg/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default administrator and example project",
	Long:  `Create the default administrator and example project when the database has no users. Reads DSN, DEFAULT_ADMIN_EMAIL and DEFAULT_ADMIN_PASSWORD from the environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs := new(config.EnvSpec)
		if err := envconfig.Process("", specs); err != nil {
			return fmt.Errorf("issues with environment sourcing: %w", err)
		}

		logger := logging.NewLogger(specs.LogLevel)
		defer logger.Sync()

		tracer := tracing.NewNoopTracer()
		monitor := monitoring.NewNoopMonitor(serviceName, logger)

		cfg := dbConfig(specs)
		cfg.TracingEnabled = false

		dbClient, err := db.NewDBClient(cfg, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create database client: %w", err)
		}
		defer dbClient.Close()

		seeded, err := seedDefaultData(cmd.Context(), storage.NewStorage(dbClient, tracer, monitor, logger), dbClient, specs, tracer, logger)
		if err != nil {
			return err
		}

		if seeded {
			fmt.Fprintf(cmd.OutOrStdout(), "Default data created, administrator %s\n", specs.DefaultAdminEmail)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Database already has users, nothing to do")
		}
		return nil
	},
}

func seedDefaultData(
	ctx context.Context,
	s seed.StorageInterface,
	tx seed.TxInterface,
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) (bool, error) {
	return seed.NewSeeder(s, tx, tracer, logger).Run(ctx, seed.Options{
		AdminEmail:    specs.DefaultAdminEmail,
		AdminPassword: specs.DefaultAdminPassword,
	})
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
