// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"fmt"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

// Builder turns the stored project into a provisioning document.
type Builder struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Build includes the primary server, every client and every admin that is
// not rejected. Servers after the primary are reported as unsupported.
func (b *Builder) Build(ctx context.Context, projectID string) (*Document, *BuildReport, error) {
	ctx, span := b.tracer.Start(ctx, "provisioning.Builder.Build")
	defer span.End()

	project, err := b.storage.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	servers, err := b.storage.ListServers(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list servers: %w", err)
	}

	clients, err := b.storage.ListClients(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list clients: %w", err)
	}

	admins, err := b.storage.ListAdmins(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list admins: %w", err)
	}

	report := new(BuildReport)

	var primary *types.Server
	for _, s := range servers {
		switch {
		case s.ApprovalState == types.ApprovalRejected:
			report.Excluded = append(report.Excluded, s.Name)
		case primary == nil:
			primary = s
		default:
			report.UnsupportedServers = append(report.UnsupportedServers, s.Name)
		}
	}

	if primary == nil {
		return nil, nil, types.Validationf("project %s must have at least one server", projectID)
	}

	for _, name := range report.UnsupportedServers {
		b.logger.Warnf("project %s: server %s is not provisioned, only the primary server is supported", projectID, name)
	}

	doc := &Document{
		APIVersion:  project.APIVersion,
		Name:        project.Name,
		Description: project.Description,
		Builders: defaultBuilders(
			project.Scheme,
			fmt.Sprintf("%s:%d:%d", project.ServerName, primary.FedLearnPort, primary.AdminPort),
		),
	}

	doc.Participants = append(doc.Participants, Participant{
		Name:               project.ServerName,
		Type:               string(types.KindServer),
		Org:                primary.Org,
		FedLearnPort:       primary.FedLearnPort,
		AdminPort:          primary.AdminPort,
		ConnectionSecurity: primary.ConnectionSecurity,
	})
	report.Participants = append(report.Participants, PlannedParticipant{ID: primary.ID, Kind: types.KindServer, Name: project.ServerName})

	for _, c := range clients {
		if c.ApprovalState == types.ApprovalRejected {
			report.Excluded = append(report.Excluded, c.Name)
			continue
		}

		doc.Participants = append(doc.Participants, Participant{
			Name: c.Name,
			Type: string(types.KindClient),
			Org:  c.Org,
			Capacity: &Capacity{
				NumOfGPUs:      c.NumGPUs,
				MemPerGPUInGiB: c.GPUMemoryGiB,
			},
		})
		report.Participants = append(report.Participants, PlannedParticipant{ID: c.ID, Kind: types.KindClient, Name: c.Name})
	}

	for _, a := range admins {
		if a.ApprovalState == types.ApprovalRejected {
			report.Excluded = append(report.Excluded, a.Email)
			continue
		}

		doc.Participants = append(doc.Participants, Participant{
			Name: a.Email,
			Type: string(types.KindAdmin),
			Org:  a.Org,
			Role: a.Role,
		})
		report.Participants = append(report.Participants, PlannedParticipant{ID: a.ID, Kind: types.KindAdmin, Name: a.Email})
	}

	return doc, report, nil
}

func NewBuilder(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Builder {
	return &Builder{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
