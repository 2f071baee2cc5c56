// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

// fakeRunner lays out a tree the way the provisioning tool does:
// <output>/<project name>/prod_00/<participant>/startup/fed.json
type fakeRunner struct {
	calls      atomic.Int32
	running    atomic.Int32
	overlapped atomic.Bool

	exitCode   int
	stderr     string
	skipMarker bool
	delay      time.Duration

	mu          sync.Mutex
	configPaths []string
}

func (f *fakeRunner) Run(ctx context.Context, configPath, outputDir string) (*RunResult, error) {
	f.calls.Add(1)
	if f.running.Add(1) > 1 {
		f.overlapped.Store(true)
	}
	defer f.running.Add(-1)

	f.mu.Lock()
	f.configPaths = append(f.configPaths, configPath)
	f.mu.Unlock()

	time.Sleep(f.delay)

	if f.exitCode != 0 {
		return &RunResult{ExitCode: f.exitCode, Stderr: f.stderr}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	doc := new(Document)
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, err
	}

	root := filepath.Join(outputDir, doc.Name)
	if !f.skipMarker {
		root = filepath.Join(root, "prod_00")
	}

	for _, p := range doc.Participants {
		dir := filepath.Join(root, p.Name, "startup")
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(dir, "fed.json"), []byte(`{"name":"`+p.Name+`"}`), 0o600); err != nil {
			return nil, err
		}
	}

	return &RunResult{}, nil
}

func (f *fakeRunner) lastConfigPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.configPaths[len(f.configPaths)-1]
}

type fakeBuilder struct {
	err error
}

func (f *fakeBuilder) Build(ctx context.Context, projectID string) (*Document, *BuildReport, error) {
	if f.err != nil {
		return nil, nil, f.err
	}

	doc := &Document{
		APIVersion: 3,
		Name:       "Example Project",
		Participants: []Participant{
			{Name: "fl.example.com", Type: "server", Org: "acme"},
			{Name: "site-1", Type: "client", Org: "acme"},
			{Name: "admin@example.com", Type: "admin", Org: "acme"},
		},
	}
	report := &BuildReport{
		Participants: []PlannedParticipant{
			{ID: "s1", Kind: types.KindServer, Name: "fl.example.com"},
			{ID: "c1", Kind: types.KindClient, Name: "site-1"},
			{ID: "a1", Kind: types.KindAdmin, Name: "admin@example.com"},
		},
		UnsupportedServers: []string{"backup"},
	}
	return doc, report, nil
}

func newTestProvisioner(t *testing.T, builder BuilderInterface, storage StorageInterface, runner CommandRunnerInterface) *Provisioner {
	t.Helper()

	logger := logging.NewNoopLogger()
	p, err := NewProvisioner(builder, storage, runner, t.TempDir(), "prod_00", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	require.NoError(t, err)
	return p
}

func TestProvisioner_CachesOutput(t *testing.T) {
	runner := new(fakeRunner)
	p := newTestProvisioner(t, new(fakeBuilder), nil, runner)

	first, err := p.Provision(context.Background(), "p1", false)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := p.Provision(context.Background(), "p1", false)
	require.NoError(t, err)
	assert.True(t, second.Cached)

	assert.Equal(t, int32(1), runner.calls.Load())
	assert.Equal(t, first.OutputRoot, second.OutputRoot)
	assert.Equal(t, filepath.Join(p.workspaceDir, "project_p1", "Example Project", "prod_00"), first.OutputRoot)
}

func TestProvisioner_ForceReprovision(t *testing.T) {
	runner := new(fakeRunner)
	p := newTestProvisioner(t, new(fakeBuilder), nil, runner)

	first, err := p.Provision(context.Background(), "p1", false)
	require.NoError(t, err)

	stalePath := filepath.Join(first.OutputRoot, "leftover")
	require.NoError(t, os.WriteFile(stalePath, []byte("x"), 0o600))

	second, err := p.ForceReprovision(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, int32(2), runner.calls.Load())
	assert.False(t, second.Cached)
	assert.NoFileExists(t, stalePath)
	assert.False(t, second.ProvisionedAt.Before(first.ProvisionedAt))

	third, err := p.Provision(context.Background(), "p1", false)
	require.NoError(t, err)
	assert.True(t, third.Cached)
	assert.True(t, second.ProvisionedAt.Equal(third.ProvisionedAt))
}

func TestProvisioner_Manifest(t *testing.T) {
	p := newTestProvisioner(t, new(fakeBuilder), nil, new(fakeRunner))

	res, err := p.Provision(context.Background(), "p1", false)
	require.NoError(t, err)

	entry, ok := res.Lookup(types.KindClient, "c1")
	require.True(t, ok)
	assert.Equal(t, "site-1", entry.Directory)

	assert.Len(t, res.Entries(types.KindAdmin), 1)
	assert.Contains(t, res.Warnings[0], "backup")

	_, ok = res.Lookup(types.KindClient, "missing")
	assert.False(t, ok)
}

func TestProvisioner_ToolFailure(t *testing.T) {
	runner := &fakeRunner{exitCode: 2, stderr: "invalid project file"}
	p := newTestProvisioner(t, new(fakeBuilder), nil, runner)

	_, err := p.Provision(context.Background(), "p1", false)

	var provErr *types.ProvisioningError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, 2, provErr.ExitCode)
	assert.Equal(t, "invalid project file", provErr.Stderr)

	assert.NoFileExists(t, runner.lastConfigPath())
	assert.NoDirExists(t, filepath.Join(p.workspaceDir, "project_p1"))
}

func TestProvisioner_RemovesConfigOnSuccess(t *testing.T) {
	runner := new(fakeRunner)
	p := newTestProvisioner(t, new(fakeBuilder), nil, runner)

	_, err := p.Provision(context.Background(), "p1", false)
	require.NoError(t, err)

	assert.NoFileExists(t, runner.lastConfigPath())
}

func TestProvisioner_MissingMarkerIsSoft(t *testing.T) {
	runner := &fakeRunner{skipMarker: true}
	p := newTestProvisioner(t, new(fakeBuilder), nil, runner)

	res, err := p.Provision(context.Background(), "p1", false)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(p.workspaceDir, "project_p1"), res.OutputRoot)

	found := false
	for _, w := range res.Warnings {
		if strings.HasPrefix(w, "output marker prod_00 not found") {
			found = true
		}
	}
	assert.True(t, found, "expected a marker warning in %v", res.Warnings)
}

func TestProvisioner_BuildFailureKeepsPreviousOutput(t *testing.T) {
	builder := new(fakeBuilder)
	p := newTestProvisioner(t, builder, nil, new(fakeRunner))

	first, err := p.Provision(context.Background(), "p1", false)
	require.NoError(t, err)

	builder.err = types.Validationf("project p1 must have at least one server")

	_, err = p.ForceReprovision(context.Background(), "p1")
	require.ErrorIs(t, err, types.ErrValidation)
	assert.DirExists(t, first.OutputRoot)
}

func TestProvisioner_SerializesPerProject(t *testing.T) {
	runner := &fakeRunner{delay: 20 * time.Millisecond}
	p := newTestProvisioner(t, new(fakeBuilder), nil, runner)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.ForceReprovision(context.Background(), "p1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(4), runner.calls.Load())
	assert.False(t, runner.overlapped.Load(), "runs for one project overlapped")
}

func TestProvisioner_RejectsPathLikeIDs(t *testing.T) {
	p := newTestProvisioner(t, new(fakeBuilder), nil, new(fakeRunner))

	for _, id := range []string{"", "../etc", "a/b", ".."} {
		_, err := p.Provision(context.Background(), id, false)
		assert.ErrorIs(t, err, types.ErrValidation, "id %q", id)
	}
}

func TestProvisioner_StatusAndDiscard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := &types.Project{ID: "p1", UpdatedAt: time.Now().Add(-time.Hour)}
	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(project, nil).AnyTimes()

	p := newTestProvisioner(t, new(fakeBuilder), mockStorage, new(fakeRunner))

	status, err := p.Status(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, StateNotProvisioned, status.State)

	_, err = p.Provision(context.Background(), "p1", false)
	require.NoError(t, err)

	status, err = p.Status(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, StateProvisioned, status.State)
	assert.False(t, status.Stale)
	assert.ElementsMatch(t, []string{"fl.example.com", "site-1", "admin@example.com"}, status.Items)

	project.UpdatedAt = time.Now().Add(time.Hour)

	status, err = p.Status(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, status.Stale)

	require.NoError(t, p.Discard(context.Background(), "p1"))

	status, err = p.Status(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, StateNotProvisioned, status.State)
}

func TestProvisioner_StatusUnknownProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notFound := errors.New("project: resource not found")
	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetProjectByID(gomock.Any(), "p9").Return(nil, notFound)

	p := newTestProvisioner(t, new(fakeBuilder), mockStorage, new(fakeRunner))

	_, err := p.Status(context.Background(), "p9")
	assert.ErrorIs(t, err, notFound)
}

func TestKeyedMutex(t *testing.T) {
	k := newKeyedMutex()

	unlockA := k.Lock("a")
	unlockB := k.Lock("b")

	acquired := make(chan struct{})
	go func() {
		unlock := k.Lock("a")
		close(acquired)
		unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock on the same key must block")
	case <-time.After(20 * time.Millisecond):
	}

	unlockA()
	<-acquired
	unlockB()

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.locks)
}
