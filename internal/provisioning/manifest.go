// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

const manifestFile = "manifest.yaml"

var ErrNoManifest = errors.New("project has not been provisioned")

// ManifestEntry maps a participant to its kit directory, relative to the
// output root. Directory is empty when the tool produced nothing for it.
type ManifestEntry struct {
	ID        string                `yaml:"id" json:"id"`
	Name      string                `yaml:"name" json:"name"`
	Kind      types.ParticipantKind `yaml:"kind" json:"kind"`
	Directory string                `yaml:"directory,omitempty" json:"directory,omitempty"`
}

// Manifest records a successful provisioning run.
type Manifest struct {
	ProjectID     string          `yaml:"project_id" json:"project_id"`
	OutputRoot    string          `yaml:"output_root" json:"workspace"`
	ProvisionedAt time.Time       `yaml:"provisioned_at" json:"provisioned_at"`
	Participants  []ManifestEntry `yaml:"participants" json:"participants"`
	Warnings      []string        `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// Lookup returns the entry for the participant row id of the given kind.
func (m *Manifest) Lookup(kind types.ParticipantKind, id string) (ManifestEntry, bool) {
	for _, e := range m.Participants {
		if e.Kind == kind && e.ID == id {
			return e, true
		}
	}
	return ManifestEntry{}, false
}

// Entries returns every entry of the given kind.
func (m *Manifest) Entries(kind types.ParticipantKind) []ManifestEntry {
	entries := make([]ManifestEntry, 0)
	for _, e := range m.Participants {
		if e.Kind == kind {
			entries = append(entries, e)
		}
	}
	return entries
}

func readManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoManifest
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m := new(Manifest)
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return m, nil
}

// writeManifest replaces the manifest atomically.
func writeManifest(dir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	tmp, err := os.CreateTemp(dir, manifestFile+".*")
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(dir, manifestFile)); err != nil {
		return fmt.Errorf("failed to store manifest: %w", err)
	}

	return nil
}
