// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	endpoint    string
	accessToken string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "app",
	Short: "Provisioning Dashboard",
	Long:  `Provisioning Dashboard server and CLI for managing federated learning projects and their startup kits.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "http://localhost:8443", "Dashboard API endpoint")
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", os.Getenv("DASHBOARD_TOKEN"), "Access token, defaults to $DASHBOARD_TOKEN")
}
