// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	applicationRole    string
	applicationMessage string
	applicationStatus  string
)

var applicationCmd = &cobra.Command{
	Use:   "application",
	Short: "Apply to projects and review applications",
}

var applyCmd = &cobra.Command{
	Use:   "apply [project id]",
	Short: "Apply to join a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newDashboardClient(endpoint, accessToken)

		var resp struct {
			ApplicationID string `json:"application_id"`
		}
		err := client.do(cmd.Context(), http.MethodPost, "/projects/"+args[0]+"/apply", map[string]string{
			"role_requested": applicationRole,
			"message":        applicationMessage,
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to apply: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Application submitted: %s\n", resp.ApplicationID)
		return nil
	},
}

var listApplicationsCmd = &cobra.Command{
	Use:   "list [project id]",
	Short: "List the applications of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newDashboardClient(endpoint, accessToken)

		path := "/projects/" + args[0] + "/applications"
		if applicationStatus != "" {
			path += "?status=" + url.QueryEscape(applicationStatus)
		}

		var resp struct {
			Applications []struct {
				ID        string `json:"id"`
				UserEmail string `json:"user_email"`
				Role      string `json:"role_requested"`
				Status    string `json:"status"`
				CreatedAt string `json:"created_at"`
			} `json:"applications"`
		}
		if err := client.do(cmd.Context(), http.MethodGet, path, nil, &resp); err != nil {
			return fmt.Errorf("failed to list applications: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tAPPLICANT\tROLE\tSTATUS\tCREATED_AT")
		for _, a := range resp.Applications {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.UserEmail, a.Role, a.Status, a.CreatedAt)
		}
		return w.Flush()
	},
}

func reviewCmd(action string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " [application id]",
		Short: fmt.Sprintf("%s an application", action),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newDashboardClient(endpoint, accessToken)

			var resp struct {
				Message string `json:"message"`
			}
			err := client.do(cmd.Context(), http.MethodPost, "/applications/"+args[0]+"/approve", map[string]string{
				"action": action,
			}, &resp)
			if err != nil {
				return fmt.Errorf("failed to %s application: %w", action, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(applicationCmd)
	applicationCmd.AddCommand(applyCmd)
	applicationCmd.AddCommand(listApplicationsCmd)
	applicationCmd.AddCommand(reviewCmd("approve"))
	applicationCmd.AddCommand(reviewCmd("reject"))

	applyCmd.Flags().StringVar(&applicationRole, "role", "user", "Requested role (user, org_admin or proj_admin)")
	applyCmd.Flags().StringVar(&applicationMessage, "message", "", "Message to the project reviewers")
	listApplicationsCmd.Flags().StringVar(&applicationStatus, "status", "", "Only list applications in this status")
}
