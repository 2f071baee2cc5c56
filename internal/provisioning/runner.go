// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
)

// waitDelay bounds how long output pipes are drained after the tool is killed.
const waitDelay = 5 * time.Second

var ErrEmptyCommand = errors.New("provisioning command is empty")

// RunResult is the captured outcome of a completed run. A non-zero
// ExitCode is not an error at this level.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// ExecRunner invokes "<command> -p <config> -w <output>" as a subprocess.
type ExecRunner struct {
	command []string
	timeout time.Duration

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (r *ExecRunner) Run(ctx context.Context, configPath, outputDir string) (*RunResult, error) {
	ctx, span := r.tracer.Start(ctx, "provisioning.ExecRunner.Run")
	defer span.End()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := append(append([]string{}, r.command[1:]...), "-p", configPath, "-w", outputDir)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.command[0], args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	r.logger.Debugf("running %s %s", r.command[0], strings.Join(args, " "))

	start := time.Now()
	err := cmd.Run()

	result := &RunResult{
		Stdout:   stdout.String(),
		Stderr:   strings.TrimSpace(stderr.String()),
		Duration: time.Since(start),
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("provisioning command did not finish: %w", ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to start provisioning command: %w", err)
	}

	return result, nil
}

// NewExecRunner splits command with shell quoting rules.
func NewExecRunner(command string, timeout time.Duration, tracer tracing.TracingInterface, logger logging.LoggerInterface) (*ExecRunner, error) {
	parts, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("invalid provisioning command %q: %w", command, err)
	}

	if len(parts) == 0 {
		return nil, ErrEmptyCommand
	}

	return &ExecRunner{
		command: parts,
		timeout: timeout,
		tracer:  tracer,
		logger:  logger,
	}, nil
}
