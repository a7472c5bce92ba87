// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
)

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// BaseCLIEngineOption configures a BaseCLIEngine.
	BaseCLIEngineOption func(*BaseCLIEngine)

	// BaseCLIEngine provides common implementation for CLI-based compose
	// engines. Docker and Podman engines embed this struct; engine-specific
	// behavior (Available, Version) remains on the concrete types.
	BaseCLIEngine struct {
		name        string // Engine name for error messages (e.g., "docker", "podman")
		binaryPath  string // Resolved at construction via exec.LookPath
		execCommand ExecCommandFunc
	}
)

// WithExecCommand sets a custom command creation function.
// This is primarily used for testing with mock commands.
func WithExecCommand(fn ExecCommandFunc) BaseCLIEngineOption {
	return func(e *BaseCLIEngine) {
		e.execCommand = fn
	}
}

// NewBaseCLIEngine creates a BaseCLIEngine for the given binary.
func NewBaseCLIEngine(name, binaryPath string, opts ...BaseCLIEngineOption) *BaseCLIEngine {
	e := &BaseCLIEngine{
		name:        name,
		binaryPath:  binaryPath,
		execCommand: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the engine name.
func (e *BaseCLIEngine) Name() string {
	return e.name
}

// BinaryPath returns the path to the engine binary.
func (e *BaseCLIEngine) BinaryPath() string {
	return e.binaryPath
}

// CreateCommand creates an exec.Cmd for the engine binary.
func (e *BaseCLIEngine) CreateCommand(ctx context.Context, args ...string) *exec.Cmd {
	return e.execCommand(ctx, e.binaryPath, args...)
}

// RunCommandWithOutput executes a command and returns its stdout.
func (e *BaseCLIEngine) RunCommandWithOutput(ctx context.Context, args ...string) (string, error) {
	cmd := e.CreateCommand(ctx, args...)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("command %s %v failed: %w", e.binaryPath, args, err)
	}
	return string(out), nil
}

// Up starts a compose stack with the shared argument builder.
func (e *BaseCLIEngine) Up(ctx context.Context, opts UpOptions) error {
	cmd := e.CreateCommand(ctx, UpArgs(opts)...)
	cmd.Dir = opts.WorkDir
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	cmd.Env = mergeEnv(os.Environ(), opts.Env)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s compose up exited with status %d", e.name, exitErr.ExitCode())
		}
		return fmt.Errorf("%s compose up failed: %w", e.name, err)
	}
	return nil
}

// UpCommand renders the exact command Up would execute.
func (e *BaseCLIEngine) UpCommand(opts UpOptions) string {
	return RenderCommand(e.name, opts.Env, UpArgs(opts))
}

// mergeEnv appends overrides to base in deterministic order.
func mergeEnv(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := base
	for _, k := range keys {
		env = append(env, k+"="+overrides[k])
	}
	return env
}
