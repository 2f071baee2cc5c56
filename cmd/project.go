// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	projectDescription string
	forceProvision     bool
	kitOutputDir       string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects and their startup kits",
}

var listProjectsCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newDashboardClient(endpoint, accessToken)

		var resp struct {
			Projects []struct {
				ID           string `json:"id"`
				Name         string `json:"name"`
				CreatorEmail string `json:"creator_email"`
				Frozen       bool   `json:"frozen"`
				CreatedAt    string `json:"created_at"`
			} `json:"projects"`
		}
		if err := client.do(cmd.Context(), http.MethodGet, "/projects", nil, &resp); err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCREATOR\tFROZEN\tCREATED_AT")
		for _, p := range resp.Projects {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n", p.ID, p.Name, p.CreatorEmail, p.Frozen, p.CreatedAt)
		}
		return w.Flush()
	},
}

var createProjectCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newDashboardClient(endpoint, accessToken)

		var resp struct {
			ProjectID string `json:"project_id"`
		}
		err := client.do(cmd.Context(), http.MethodPost, "/projects", map[string]string{
			"name":        args[0],
			"description": projectDescription,
		}, &resp)
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Project created: %s (ID: %s)\n", args[0], resp.ProjectID)
		return nil
	},
}

var provisionProjectCmd = &cobra.Command{
	Use:   "provision [id]",
	Short: "Provision a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newDashboardClient(endpoint, accessToken)

		path := "/provision/" + args[0]
		if forceProvision {
			path += "?force=true"
		}

		var resp struct {
			Workspace string   `json:"workspace"`
			Cached    bool     `json:"cached"`
			Warnings  []string `json:"warnings"`
		}
		if err := client.do(cmd.Context(), http.MethodPost, path, nil, &resp); err != nil {
			return fmt.Errorf("failed to provision project: %w", err)
		}

		state := "provisioned"
		if resp.Cached {
			state = "already provisioned"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Project %s %s in %s\n", args[0], state, resp.Workspace)
		for _, w := range resp.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		}
		return nil
	},
}

var downloadKitCmd = &cobra.Command{
	Use:   "download [server|client|admin|all] [project id] [item id]",
	Short: "Download a startup kit",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newDashboardClient(endpoint, accessToken)

		path := "/download/" + args[0] + "/" + args[1]
		if len(args) == 3 {
			path += "/" + args[2]
		}

		data, filename, err := client.download(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("failed to download kit: %w", err)
		}

		if filename == "" {
			filename = args[0] + "_startup_kit.zip"
		}
		target := filepath.Join(kitOutputDir, filepath.Base(filename))

		if err := os.WriteFile(target, data, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", target, len(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(listProjectsCmd)
	projectCmd.AddCommand(createProjectCmd)
	projectCmd.AddCommand(provisionProjectCmd)
	projectCmd.AddCommand(downloadKitCmd)

	createProjectCmd.Flags().StringVar(&projectDescription, "description", "", "Project description")
	provisionProjectCmd.Flags().BoolVar(&forceProvision, "force", false, "Discard previous output and provision again")
	downloadKitCmd.Flags().StringVarP(&kitOutputDir, "output", "o", ".", "Directory to save the archive in")
}
