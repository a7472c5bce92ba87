// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"utemplate-cli/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev fallback", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestHasActionableSuggestions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "operation wrap without suggestions",
			err:  issue.WrapWithOperation(errors.New("boom"), "parse configuration"),
			want: false,
		},
		{
			name: "actionable error with suggestions",
			err: issue.NewErrorContext().
				WithOperation("load configuration").
				WithSuggestion("Check the CUE syntax").
				Wrap(errors.New("boom")).
				BuildError(),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := hasActionableSuggestions(tt.err); got != tt.want {
				t.Errorf("hasActionableSuggestions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderIssue_ConfigLoadFailed(t *testing.T) {
	// Not parallel: glamourStyle reads the package-level loadedConfig.
	var buf bytes.Buffer
	renderIssue(&buf, issue.ConfigLoadFailedId)

	if !strings.Contains(buf.String(), "configuration") {
		t.Errorf("rendered card missing configuration guidance:\n%s", buf.String())
	}
}

func TestRootCommandTree(t *testing.T) {
	t.Parallel()

	want := []string{"init", "agent", "skills", "php", "list", "docs", "config", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}
