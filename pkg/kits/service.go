// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kits

import (
	"context"
	"fmt"

	startupkits "github.com/canonical/provisioning-dashboard/internal/kits"
	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/provisioning"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

// KindAll requests a bundle of every kit in the project.
const KindAll = "all"

var bundleOrder = []types.ParticipantKind{types.KindServer, types.KindClient, types.KindAdmin}

type Service struct {
	storage     StorageInterface
	tx          TxInterface
	authz       AuthorizerInterface
	provisioner ProvisionerInterface
	packager    PackagerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Provision runs the provisioning tool for the project, or returns the
// recorded output unless force is set.
func (s *Service) Provision(ctx context.Context, user *types.User, projectID string, force bool) (*provisioning.Result, error) {
	ctx, span := s.tracer.Start(ctx, "kits.Service.Provision")
	defer span.End()

	project, err := s.storage.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CanManageProject(ctx, user, project); err != nil {
		return nil, err
	}

	s.logger.Security().ProvisioningRun(user.Email, projectID, force)

	return s.provisioner.Provision(ctx, projectID, force)
}

func (s *Service) Status(ctx context.Context, projectID string) (*provisioning.Status, error) {
	ctx, span := s.tracer.Start(ctx, "kits.Service.Status")
	defer span.End()

	return s.provisioner.Status(ctx, projectID)
}

// Download packages one startup kit, provisioning the project first when
// needed. kind "all" bundles every kit of the project.
func (s *Service) Download(ctx context.Context, user *types.User, kind, projectID, itemID string) (*startupkits.Kit, error) {
	ctx, span := s.tracer.Start(ctx, "kits.Service.Download")
	defer span.End()

	project, err := s.storage.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if kind == KindAll {
		return s.downloadAll(ctx, user, project)
	}

	k := types.ParticipantKind(kind)
	if !k.Valid() {
		return nil, types.Validationf("unknown kit type %q", kind)
	}

	if err := s.authz.CanDownloadKit(ctx, user, project, k, itemID); err != nil {
		return nil, err
	}

	if itemID != "" {
		if err := s.checkParticipant(ctx, k, projectID, itemID); err != nil {
			return nil, err
		}
	}

	result, err := s.provisioner.Provision(ctx, projectID, false)
	if err != nil {
		return nil, err
	}

	dir, err := kitDirectory(result.Manifest, k, itemID)
	if err != nil {
		return nil, err
	}

	req := startupkits.Request{Kind: k, ItemID: itemID, Name: dir}

	kit, err := s.packager.Package(ctx, result.OutputRoot, req)
	if err != nil {
		return nil, err
	}

	s.countDownload(ctx, user, k, itemID)

	return kit, nil
}

func (s *Service) downloadAll(ctx context.Context, user *types.User, project *types.Project) (*startupkits.Kit, error) {
	if err := s.authz.CanManageProject(ctx, user, project); err != nil {
		return nil, err
	}

	result, err := s.provisioner.Provision(ctx, project.ID, false)
	if err != nil {
		return nil, err
	}

	kits := make([]*startupkits.Kit, 0)
	for _, kind := range bundleOrder {
		for _, entry := range result.Entries(kind) {
			if entry.Directory == "" {
				s.logger.Warnf("no kit directory recorded for %s %s of project %s", kind, entry.Name, project.ID)
				continue
			}

			kit, err := s.packager.Package(ctx, result.OutputRoot, startupkits.Request{Kind: kind, Name: entry.Directory, ItemID: entry.ID})
			if err != nil {
				s.logger.Warnf("skipping %s kit %s of project %s: %v", kind, entry.Name, project.ID, err)
				continue
			}
			kits = append(kits, kit)
		}
	}

	if len(kits) == 0 {
		return nil, fmt.Errorf("%w: no startup kits available for project %s", types.ErrNotFound, project.ID)
	}

	bundle, err := s.packager.Bundle(ctx, fmt.Sprintf("project_%s_startup_kits.zip", project.ID), kits)
	if err != nil {
		return nil, err
	}

	s.countDownload(ctx, user, "", "")

	return bundle, nil
}

func (s *Service) checkParticipant(ctx context.Context, kind types.ParticipantKind, projectID, id string) error {
	var err error
	switch kind {
	case types.KindServer:
		_, err = s.storage.GetServer(ctx, projectID, id)
	case types.KindClient:
		_, err = s.storage.GetClient(ctx, projectID, id)
	case types.KindAdmin:
		_, err = s.storage.GetAdmin(ctx, projectID, id)
	}
	return err
}

// kitDirectory picks the recorded directory for the participant, or for
// the first participant of the kind when no item was asked for. A requested
// participant without a recorded directory has no kit. An empty result
// without an item leaves the choice to the directory heuristics.
func kitDirectory(m *provisioning.Manifest, kind types.ParticipantKind, itemID string) (string, error) {
	if itemID != "" {
		var entry provisioning.ManifestEntry
		if m != nil {
			entry, _ = m.Lookup(kind, itemID)
		}
		if entry.Directory == "" {
			return "", fmt.Errorf("%w: no startup kit for %s %s, provision the project again", types.ErrNotFound, kind, itemID)
		}
		return entry.Directory, nil
	}

	if m == nil {
		return "", nil
	}

	for _, entry := range m.Entries(kind) {
		if entry.Directory != "" {
			return entry.Directory, nil
		}
	}
	return "", nil
}

// countDownload bumps the download counters. Failures do not fail the download.
func (s *Service) countDownload(ctx context.Context, user *types.User, kind types.ParticipantKind, itemID string) {
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if itemID != "" {
			if err := s.storage.IncrementParticipantDownloads(ctx, kind, itemID); err != nil {
				return err
			}
		}
		return s.storage.IncrementUserDownloads(ctx, user.ID)
	})
	if err != nil {
		s.logger.Warnf("failed to record download by %s: %v", user.Email, err)
	}
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	authz AuthorizerInterface,
	provisioner ProvisionerInterface,
	packager PackagerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		tx:          tx,
		authz:       authz,
		provisioner: provisioner,
		packager:    packager,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
