// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kits

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

// Request identifies one kit. Name is the directory recorded in the
// manifest, if any. ItemID only affects the archive name.
type Request struct {
	Kind   types.ParticipantKind
	Name   string
	ItemID string
}

func (r Request) Filename() string {
	if r.ItemID != "" {
		return fmt.Sprintf("%s_%s_startup_kit.zip", r.Kind, r.ItemID)
	}
	return fmt.Sprintf("%s_startup_kit.zip", r.Kind)
}

// Kit is a zipped startup kit.
type Kit struct {
	Filename string
	Data     []byte
	Files    int
}

type Packager struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Package zips the kit directory matching req below outputRoot.
func (p *Packager) Package(ctx context.Context, outputRoot string, req Request) (*Kit, error) {
	_, span := p.tracer.Start(ctx, "kits.Packager.Package")
	defer span.End()

	dirs, err := listDirs(outputRoot)
	if err != nil {
		return nil, err
	}

	match, err := LocateKit(dirs, req.Kind, req.Name)
	if err != nil {
		return nil, err
	}

	if match.Ambiguous() {
		p.logger.Warnf("several %s kits in %s, using %s out of %v", req.Kind, outputRoot, match.Dir, match.Candidates)
	}

	data, files, err := zipDir(filepath.Join(outputRoot, match.Dir))
	if err != nil {
		return nil, err
	}

	return &Kit{Filename: req.Filename(), Data: data, Files: files}, nil
}

// Bundle wraps several kits into one archive.
func (p *Packager) Bundle(ctx context.Context, filename string, kits []*Kit) (*Kit, error) {
	_, span := p.tracer.Start(ctx, "kits.Packager.Bundle")
	defer span.End()

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	for _, k := range kits {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: k.Filename, Method: zip.Store})
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to bundle: %w", k.Filename, err)
		}
		if _, err := w.Write(k.Data); err != nil {
			return nil, fmt.Errorf("failed to add %s to bundle: %w", k.Filename, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish bundle: %w", err)
	}

	return &Kit{Filename: filename, Data: buf.Bytes(), Files: len(kits)}, nil
}

func listDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: output directory %s", types.ErrNotFound, root)
		}
		return nil, fmt.Errorf("failed to read output directory: %w", err)
	}

	dirs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}

// zipDir archives every regular file below dir with paths relative to it.
func zipDir(dir string) ([]byte, int, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	files := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := io.Copy(w, f); err != nil {
			return err
		}

		files++
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to archive %s: %w", dir, err)
	}

	if err := zw.Close(); err != nil {
		return nil, 0, fmt.Errorf("failed to finish archive: %w", err)
	}

	return buf.Bytes(), files, nil
}

func NewPackager(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Packager {
	return &Packager{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
