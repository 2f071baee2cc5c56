// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/storage"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package provisioning -destination ./mock_interfaces.go -source=./interfaces.go

func testProject() *types.Project {
	return &types.Project{
		ID:          "p1",
		Name:        "Example Project",
		Description: "demo",
		APIVersion:  3,
		Scheme:      "grpc",
		ServerName:  "fl.example.com",
	}
}

func newTestBuilder(ctrl *gomock.Controller) (*Builder, *MockStorageInterface) {
	mockStorage := NewMockStorageInterface(ctrl)
	logger := logging.NewNoopLogger()
	return NewBuilder(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mockStorage
}

func expectParticipants(m *MockStorageInterface, servers []*types.Server, clients []*types.Client, admins []*types.Admin) {
	m.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(testProject(), nil)
	m.EXPECT().ListServers(gomock.Any(), "p1").Return(servers, nil)
	m.EXPECT().ListClients(gomock.Any(), "p1").Return(clients, nil)
	m.EXPECT().ListAdmins(gomock.Any(), "p1").Return(admins, nil)
}

func TestBuilder_Build_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "project not found",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(nil, fmt.Errorf("project: %w", storage.ErrNotFound))
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "no servers",
			setupMocks: func(m *MockStorageInterface) {
				expectParticipants(m, nil, []*types.Client{{Name: "site-1"}}, nil)
			},
			expectedErr: types.ErrValidation,
		},
		{
			name: "only rejected servers",
			setupMocks: func(m *MockStorageInterface) {
				expectParticipants(m, []*types.Server{{Name: "s1", ApprovalState: types.ApprovalRejected}}, nil, nil)
			},
			expectedErr: types.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b, mockStorage := newTestBuilder(ctrl)
			tc.setupMocks(mockStorage)

			_, _, err := b.Build(context.Background(), "p1")

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockStorage := newTestBuilder(ctrl)

	expectParticipants(
		mockStorage,
		[]*types.Server{
			{ID: "s1", Name: "primary", Org: "acme", FedLearnPort: 9002, AdminPort: 9003, ConnectionSecurity: types.ConnectionMTLS, ApprovalState: types.ApprovalApproved},
			{ID: "s2", Name: "backup", Org: "acme", FedLearnPort: 8002, AdminPort: 8003, ApprovalState: types.ApprovalApproved},
		},
		[]*types.Client{
			{ID: "c1", Name: "site-1", Org: "acme", NumGPUs: 2, GPUMemoryGiB: 24, ApprovalState: types.ApprovalPending},
			{ID: "c2", Name: "site-2", Org: "beta", ApprovalState: types.ApprovalRejected},
		},
		[]*types.Admin{
			{ID: "a1", Email: "admin@example.com", Org: "acme", Role: types.AdminRoleProjectAdmin, ApprovalState: types.ApprovalApproved},
		},
	)

	doc, report, err := b.Build(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Participants) != 3 {
		t.Fatalf("expected 3 participants, got %d: %+v", len(doc.Participants), doc.Participants)
	}

	server := doc.Participants[0]
	if server.Name != "fl.example.com" || server.Type != "server" || server.FedLearnPort != 9002 || server.ConnectionSecurity != "mtls" {
		t.Errorf("unexpected server participant %+v", server)
	}

	client := doc.Participants[1]
	if client.Name != "site-1" || client.Capacity == nil || client.Capacity.NumOfGPUs != 2 || client.Capacity.MemPerGPUInGiB != 24 {
		t.Errorf("unexpected client participant %+v", client)
	}

	admin := doc.Participants[2]
	if admin.Name != "admin@example.com" || admin.Role != "project_admin" {
		t.Errorf("unexpected admin participant %+v", admin)
	}

	if len(report.UnsupportedServers) != 1 || report.UnsupportedServers[0] != "backup" {
		t.Errorf("expected backup to be unsupported, got %v", report.UnsupportedServers)
	}

	if len(report.Excluded) != 1 || report.Excluded[0] != "site-2" {
		t.Errorf("expected site-2 to be excluded, got %v", report.Excluded)
	}

	if len(report.Warnings()) != 1 {
		t.Errorf("expected one warning, got %v", report.Warnings())
	}

	if len(report.Participants) != 3 || report.Participants[0].ID != "s1" {
		t.Errorf("unexpected planned participants %+v", report.Participants)
	}
}

func TestDocument_Marshal(t *testing.T) {
	doc := &Document{
		APIVersion: 3,
		Name:       "Example Project",
		Participants: []Participant{
			{Name: "fl.example.com", Type: "server", Org: "acme", FedLearnPort: 8002, AdminPort: 8003},
		},
		Builders: defaultBuilders("grpc", "fl.example.com:8002:8003"),
	}

	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed struct {
		APIVersion   int              `yaml:"api_version"`
		Participants []map[string]any `yaml:"participants"`
		Builders     []struct {
			Path string         `yaml:"path"`
			Args map[string]any `yaml:"args"`
		} `yaml:"builders"`
	}
	if err := yaml.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}

	if parsed.APIVersion != 3 {
		t.Errorf("expected api_version 3, got %d", parsed.APIVersion)
	}

	if _, ok := parsed.Participants[0]["capacity"]; ok {
		t.Error("server participant must not carry a capacity")
	}

	if len(parsed.Builders) != 4 || parsed.Builders[0].Path != workspaceBuilderPath || parsed.Builders[3].Path != signatureBuilderPath {
		t.Fatalf("unexpected builders %+v", parsed.Builders)
	}

	templates, ok := parsed.Builders[0].Args["template_file"].([]any)
	if !ok || len(templates) != 1 || templates[0] != masterTemplate {
		t.Errorf("unexpected template_file %v", parsed.Builders[0].Args["template_file"])
	}

	overseer, ok := parsed.Builders[1].Args["overseer_agent"].(map[string]any)
	if !ok {
		t.Fatalf("missing overseer_agent in %v", parsed.Builders[1].Args)
	}

	args, _ := overseer["args"].(map[string]any)
	if overseer["overseer_exists"] != false || args["sp_end_point"] != "fl.example.com:8002:8003" {
		t.Errorf("unexpected overseer agent %v", overseer)
	}
}
