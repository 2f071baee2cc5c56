// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in and print an access token",
	Long:  `Log in and print an access token. Export it as DASHBOARD_TOKEN for the other client commands.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newDashboardClient(endpoint, "")

		var resp struct {
			AccessToken string `json:"access_token"`
			User        struct {
				Name string `json:"name"`
				Role string `json:"role"`
			} `json:"user"`
		}

		err := client.do(cmd.Context(), http.MethodPost, "/login", map[string]string{
			"email":    args[0],
			"password": loginPassword,
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Logged in as %s (%s)\n", resp.User.Name, resp.User.Role)
		fmt.Fprintln(cmd.OutOrStdout(), resp.AccessToken)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
}
