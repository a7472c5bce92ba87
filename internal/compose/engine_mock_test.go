// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

type (
	// MockCommandRecorder captures arguments passed to exec.Command for verification.
	// It uses the TestHelperProcess pattern to simulate command execution.
	MockCommandRecorder struct {
		// Invocations records each call to the mock exec.Command
		Invocations []MockInvocation
		// ExitCode is the exit code to return (0 = success)
		ExitCode int
		// Stdout is the output to write to stdout
		Stdout string
	}

	// MockInvocation represents a single invocation of exec.Command.
	MockInvocation struct {
		// Name is the command name (e.g., "docker", "podman")
		Name string
		// Args are the arguments passed to the command
		Args []string
	}
)

// NewMockCommandRecorder creates a new recorder with default settings (success, no output).
func NewMockCommandRecorder() *MockCommandRecorder {
	return &MockCommandRecorder{Invocations: make([]MockInvocation, 0)}
}

// CommandFunc returns a function that can replace execCommand for testing.
// The function records invocations and returns a command that runs TestHelperProcess.
func (m *MockCommandRecorder) CommandFunc(t *testing.T) ExecCommandFunc {
	t.Helper()
	return func(_ context.Context, name string, args ...string) *exec.Cmd {
		m.Invocations = append(m.Invocations, MockInvocation{Name: name, Args: args})

		// Publish the helper variables through the test process environment so
		// they survive callers that rebuild cmd.Env from os.Environ (e.g. Up).
		t.Setenv("GO_WANT_HELPER_PROCESS", "1")
		t.Setenv("GO_HELPER_EXIT_CODE", fmt.Sprintf("%d", m.ExitCode))
		t.Setenv("GO_HELPER_STDOUT", m.Stdout)

		cs := []string{"-test.run=TestHelperProcess", "--", name}
		cs = append(cs, args...)
		cmd := exec.Command(os.Args[0], cs...)
		cmd.Env = append(os.Environ(),
			"GO_WANT_HELPER_PROCESS=1",
			fmt.Sprintf("GO_HELPER_EXIT_CODE=%d", m.ExitCode),
			fmt.Sprintf("GO_HELPER_STDOUT=%s", m.Stdout),
		)
		return cmd
	}
}

// LastInvocation returns the most recent invocation, or nil if none.
func (m *MockCommandRecorder) LastInvocation() *MockInvocation {
	if len(m.Invocations) == 0 {
		return nil
	}
	return &m.Invocations[len(m.Invocations)-1]
}

// AssertLastArgs verifies the last invocation used exactly the given arguments.
func (m *MockCommandRecorder) AssertLastArgs(t *testing.T, expected []string) {
	t.Helper()
	inv := m.LastInvocation()
	if inv == nil {
		t.Errorf("expected args %v but no commands were invoked", expected)
		return
	}
	if strings.Join(inv.Args, " ") != strings.Join(expected, " ") {
		t.Errorf("expected args %v, got %v", expected, inv.Args)
	}
}

// TestHelperProcess is the helper process used by MockCommandRecorder.
// It is not a real test; it simulates the mocked command.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	if out := os.Getenv("GO_HELPER_STDOUT"); out != "" {
		fmt.Fprint(os.Stdout, out)
	}
	exitCode := 0
	if _, err := fmt.Sscanf(os.Getenv("GO_HELPER_EXIT_CODE"), "%d", &exitCode); err != nil {
		exitCode = 0
	}
	os.Exit(exitCode)
}
