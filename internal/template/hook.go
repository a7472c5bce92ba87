// SPDX-License-Identifier: MPL-2.0

package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// HookExitError is returned when a post-init hook exits non-zero.
type HookExitError struct {
	ExitCode int
}

// Error implements the error interface.
func (e *HookExitError) Error() string {
	return fmt.Sprintf("post-init hook exited with status %d", e.ExitCode)
}

// ParseHook validates the syntax of a hook script without running it.
func ParseHook(script string) error {
	_, err := syntax.NewParser().Parse(strings.NewReader(script), "post_init")
	if err != nil {
		return fmt.Errorf("hook syntax error: %w", err)
	}
	return nil
}

// RunPostInit executes a manifest post_init script in the embedded shell
// interpreter with workDir as the working directory. The script runs with
// the parent process environment plus UTEMPLATE_PROJECT set to project.
func RunPostInit(ctx context.Context, script, workDir, project string, stdout, stderr io.Writer) error {
	parser := syntax.NewParser()
	prog, err := parser.Parse(strings.NewReader(script), "post_init")
	if err != nil {
		return fmt.Errorf("failed to parse hook: %w", err)
	}

	env := append(os.Environ(), "UTEMPLATE_PROJECT="+project)

	runner, err := interp.New(
		interp.Dir(workDir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &HookExitError{ExitCode: int(exitStatus)}
		}
		return fmt.Errorf("hook execution failed: %w", err)
	}

	return nil
}
