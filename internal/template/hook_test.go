// SPDX-License-Identifier: MPL-2.0

package template

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseHook(t *testing.T) {
	t.Parallel()

	if err := ParseHook("echo hello && touch done"); err != nil {
		t.Errorf("ParseHook() error = %v for valid script", err)
	}
	if err := ParseHook("if true; then"); err == nil {
		t.Error("ParseHook() = nil error for unterminated if")
	}
}

func TestRunPostInit(t *testing.T) {
	t.Parallel()

	t.Run("runs in the work directory with project env", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		var stdout bytes.Buffer

		err := RunPostInit(context.Background(),
			"echo \"project=$UTEMPLATE_PROJECT\"; touch marker",
			dir, "shop", &stdout, &stdout)
		if err != nil {
			t.Fatalf("RunPostInit() error = %v", err)
		}

		if !strings.Contains(stdout.String(), "project=shop") {
			t.Errorf("stdout = %q, missing project env", stdout.String())
		}
		if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
			t.Errorf("hook did not run in work dir: %v", err)
		}
	})

	t.Run("non-zero exit becomes HookExitError", func(t *testing.T) {
		t.Parallel()
		err := RunPostInit(context.Background(), "exit 3", t.TempDir(), "shop", nil, nil)

		var exitErr *HookExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("RunPostInit() error = %v, want HookExitError", err)
		}
		if exitErr.ExitCode != 3 {
			t.Errorf("ExitCode = %d, want 3", exitErr.ExitCode)
		}
	})

	t.Run("canceled context stops the hook", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := RunPostInit(ctx, "sleep 10", t.TempDir(), "shop", nil, nil); err == nil {
			t.Error("RunPostInit() = nil error with canceled context")
		}
	})
}
