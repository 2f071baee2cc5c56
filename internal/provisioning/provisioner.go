// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

const (
	StateNotProvisioned = "not_provisioned"
	StateProvisioned    = "provisioned"

	cliComponent = "provisioning-cli"
)

// Result is returned by Provision. Cached is set when no run was needed.
type Result struct {
	*Manifest

	Cached bool `json:"cached"`
}

type Status struct {
	State         string     `json:"status"`
	OutputRoot    string     `json:"workspace,omitempty"`
	Items         []string   `json:"items,omitempty"`
	ProvisionedAt *time.Time `json:"provisioned_at,omitempty"`
	LastUpdated   *time.Time `json:"last_updated,omitempty"`
	// Stale is set when the project changed after the last run.
	Stale bool `json:"stale"`
}

// Provisioner runs the provisioning tool once per project and remembers the
// outcome in a manifest under <workspace>/project_<id>.
type Provisioner struct {
	builder BuilderInterface
	storage StorageInterface
	runner  CommandRunnerInterface

	workspaceDir string
	marker       string

	locks *keyedMutex
	now   func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *Provisioner) projectDir(projectID string) (string, error) {
	if projectID == "" || projectID != filepath.Base(projectID) || strings.HasPrefix(projectID, ".") {
		return "", types.Validationf("invalid project id %q", projectID)
	}
	return filepath.Join(p.workspaceDir, "project_"+projectID), nil
}

// Provision returns the recorded output unless force is set or the project
// was never provisioned. Calls for one project are serialized.
func (p *Provisioner) Provision(ctx context.Context, projectID string, force bool) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "provisioning.Provisioner.Provision")
	defer span.End()

	dir, err := p.projectDir(projectID)
	if err != nil {
		return nil, err
	}

	unlock := p.locks.Lock(projectID)
	defer unlock()

	if !force {
		m, err := readManifest(dir)
		if err == nil {
			return &Result{Manifest: m, Cached: true}, nil
		}
		if !errors.Is(err, ErrNoManifest) {
			p.logger.Warnf("ignoring manifest of project %s: %v", projectID, err)
		}
	}

	doc, report, err := p.builder.Build(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("failed to remove previous output: %w", err)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create project workspace: %w", err)
	}

	m, err := p.run(ctx, projectID, dir, doc, report)
	if err != nil {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			p.logger.Errorf("failed to clean up output of project %s: %v", projectID, rmErr)
		}
		return nil, err
	}

	return &Result{Manifest: m}, nil
}

func (p *Provisioner) ForceReprovision(ctx context.Context, projectID string) (*Result, error) {
	return p.Provision(ctx, projectID, true)
}

func (p *Provisioner) run(ctx context.Context, projectID, dir string, doc *Document, report *BuildReport) (*Manifest, error) {
	data, err := doc.Marshal()
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "project-*.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to create project file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write project file: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to write project file: %w", err)
	}

	res, err := p.runner.Run(ctx, f.Name(), dir)
	if err != nil {
		p.setAvailability(0)
		return nil, &types.ProvisioningError{ProjectID: projectID, ExitCode: -1, Err: err}
	}
	p.setAvailability(1)

	if res.ExitCode != 0 {
		return nil, &types.ProvisioningError{ProjectID: projectID, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	p.logger.Infof("provisioned project %s in %s", projectID, res.Duration)

	warnings := report.Warnings()

	root, found := p.locateOutput(dir)
	if !found {
		msg := fmt.Sprintf("output marker %s not found, using %s", p.marker, root)
		p.logger.Warnf("project %s: %s", projectID, msg)
		warnings = append(warnings, msg)
	}

	m := &Manifest{
		ProjectID:     projectID,
		OutputRoot:    root,
		ProvisionedAt: p.now().UTC(),
		Participants:  make([]ManifestEntry, 0, len(report.Participants)),
	}

	for _, planned := range report.Participants {
		entry := ManifestEntry{ID: planned.ID, Name: planned.Name, Kind: planned.Kind}

		if info, err := os.Stat(filepath.Join(root, planned.Name)); err == nil && info.IsDir() {
			entry.Directory = planned.Name
		} else {
			warnings = append(warnings, fmt.Sprintf("no output directory for %s %s", planned.Kind, planned.Name))
		}

		m.Participants = append(m.Participants, entry)
	}

	m.Warnings = warnings

	if err := writeManifest(dir, m); err != nil {
		return nil, err
	}

	return m, nil
}

// locateOutput scans one level below dir for the marker directory.
func (p *Provisioner) locateOutput(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return dir, false
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		candidate := filepath.Join(dir, e.Name(), p.marker)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
	}

	return dir, false
}

func (p *Provisioner) Status(ctx context.Context, projectID string) (*Status, error) {
	ctx, span := p.tracer.Start(ctx, "provisioning.Provisioner.Status")
	defer span.End()

	project, err := p.storage.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	dir, err := p.projectDir(projectID)
	if err != nil {
		return nil, err
	}

	m, err := readManifest(dir)
	if errors.Is(err, ErrNoManifest) {
		return &Status{State: StateNotProvisioned}, nil
	}
	if err != nil {
		return nil, err
	}

	items := make([]string, 0)
	if entries, err := os.ReadDir(m.OutputRoot); err == nil {
		for _, e := range entries {
			items = append(items, e.Name())
		}
	}

	provisionedAt := m.ProvisionedAt
	updatedAt := project.UpdatedAt

	return &Status{
		State:         StateProvisioned,
		OutputRoot:    m.OutputRoot,
		Items:         items,
		ProvisionedAt: &provisionedAt,
		LastUpdated:   &updatedAt,
		Stale:         updatedAt.After(provisionedAt),
	}, nil
}

// Discard removes every output of the project.
func (p *Provisioner) Discard(ctx context.Context, projectID string) error {
	_, span := p.tracer.Start(ctx, "provisioning.Provisioner.Discard")
	defer span.End()

	dir, err := p.projectDir(projectID)
	if err != nil {
		return err
	}

	unlock := p.locks.Lock(projectID)
	defer unlock()

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to discard output of project %s: %w", projectID, err)
	}

	return nil
}

func (p *Provisioner) setAvailability(v float64) {
	tags := map[string]string{"component": cliComponent}
	if err := p.monitor.SetDependencyAvailability(tags, v); err != nil {
		p.logger.Debugf("failed to set %s availability: %v", cliComponent, err)
	}
}

func NewProvisioner(
	builder BuilderInterface,
	storage StorageInterface,
	runner CommandRunnerInterface,
	workspaceDir string,
	marker string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Provisioner, error) {
	abs, err := filepath.Abs(workspaceDir)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace directory: %w", err)
	}

	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create workspace directory: %w", err)
	}

	return &Provisioner{
		builder:      builder,
		storage:      storage,
		runner:       runner,
		workspaceDir: abs,
		marker:       marker,
		locks:        newKeyedMutex(),
		now:          time.Now,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}, nil
}
