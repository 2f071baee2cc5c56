// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

const (
	workspaceBuilderPath  = "nvflare.lighter.impl.workspace.WorkspaceBuilder"
	staticFileBuilderPath = "nvflare.lighter.impl.static_file.StaticFileBuilder"
	certBuilderPath       = "nvflare.lighter.impl.cert.CertBuilder"
	signatureBuilderPath  = "nvflare.lighter.impl.signature.SignatureBuilder"
	overseerAgentPath     = "nvflare.ha.dummy_overseer_agent.DummyOverseerAgent"

	masterTemplate = "master_template.yml"
	configFolder   = "config"
)

// Document is the project file consumed by the provisioning tool.
type Document struct {
	APIVersion   int           `yaml:"api_version"`
	Name         string        `yaml:"name"`
	Description  string        `yaml:"description"`
	Participants []Participant `yaml:"participants"`
	Builders     []BuildStep   `yaml:"builders"`
}

type Participant struct {
	Name               string    `yaml:"name"`
	Type               string    `yaml:"type"`
	Org                string    `yaml:"org"`
	FedLearnPort       int       `yaml:"fed_learn_port,omitempty"`
	AdminPort          int       `yaml:"admin_port,omitempty"`
	ConnectionSecurity string    `yaml:"connection_security,omitempty"`
	Capacity           *Capacity `yaml:"capacity,omitempty"`
	Role               string    `yaml:"role,omitempty"`
}

type Capacity struct {
	NumOfGPUs      int `yaml:"num_of_gpus"`
	MemPerGPUInGiB int `yaml:"mem_per_gpu_in_GiB"`
}

// BuildStep is one entry of the tool's builder pipeline.
type BuildStep struct {
	Path string         `yaml:"path"`
	Args map[string]any `yaml:"args"`
}

// PlannedParticipant ties a database row to the name it is provisioned under.
type PlannedParticipant struct {
	ID   string
	Kind types.ParticipantKind
	Name string
}

// BuildReport lists what Build left out of the document.
type BuildReport struct {
	Participants       []PlannedParticipant
	UnsupportedServers []string
	Excluded           []string
}

// Warnings renders the report as user facing warnings.
func (r *BuildReport) Warnings() []string {
	warnings := make([]string, 0, len(r.UnsupportedServers))
	for _, name := range r.UnsupportedServers {
		warnings = append(warnings, fmt.Sprintf("server %s was not provisioned: only one server per project is supported", name))
	}
	return warnings
}

func (d *Document) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project document: %w", err)
	}
	return out, nil
}

func defaultBuilders(scheme, spEndpoint string) []BuildStep {
	return []BuildStep{
		{
			Path: workspaceBuilderPath,
			Args: map[string]any{
				"template_file": []string{masterTemplate},
			},
		},
		{
			Path: staticFileBuilderPath,
			Args: map[string]any{
				"config_folder": configFolder,
				"scheme":        scheme,
				"overseer_agent": map[string]any{
					"path":            overseerAgentPath,
					"overseer_exists": false,
					"args": map[string]any{
						"sp_end_point": spEndpoint,
					},
				},
			},
		},
		{Path: certBuilderPath, Args: map[string]any{}},
		{Path: signatureBuilderPath, Args: map[string]any{}},
	}
}
