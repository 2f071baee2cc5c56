// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/provisioning-dashboard/internal/version"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dashboard version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
				"name":    serviceName,
				"version": version.Version,
			})
		}

		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Provisioning Dashboard %s\n", version.Version)
		return err
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print the version as JSON")
	rootCmd.AddCommand(versionCmd)
}
