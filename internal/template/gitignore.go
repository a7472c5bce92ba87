// SPDX-License-Identifier: MPL-2.0

package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// GitignoreUpdated means the entry was appended (or the file was
	// normalized to end with a newline).
	GitignoreUpdated GitignoreResult = "updated"
	// GitignoreUnchanged means the entry was already present.
	GitignoreUnchanged GitignoreResult = "unchanged"
	// GitignoreMissing means the project has no .gitignore. The filesystem
	// is left untouched; the caller is expected to print guidance.
	GitignoreMissing GitignoreResult = "missing"
)

// GitignoreResult indicates what happened to .gitignore.
type GitignoreResult string

// EnsureGitignoreEntry ensures entry is present in dir/.gitignore.
//
// The append is idempotent: an entry already present (with or without a
// trailing slash) is never duplicated. A missing .gitignore is never
// created; the function reports GitignoreMissing and leaves the filesystem
// unchanged.
func EnsureGitignoreEntry(dir, entry string) (GitignoreResult, error) {
	path := filepath.Join(dir, ".gitignore")

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return GitignoreMissing, nil
		}
		return "", fmt.Errorf("read .gitignore: %w", err)
	}

	if hasGitignoreEntry(string(content), entry) {
		// Entry exists; only normalize a missing trailing newline.
		if len(content) > 0 && content[len(content)-1] != '\n' {
			if err := writeFileAtomic(path, append(content, '\n'), 0o644); err != nil {
				return "", fmt.Errorf("update .gitignore: %w", err)
			}
			return GitignoreUpdated, nil
		}
		return GitignoreUnchanged, nil
	}

	newContent := string(content)
	if len(newContent) > 0 && !strings.HasSuffix(newContent, "\n") {
		newContent += "\n"
	}
	newContent += entry + "\n"

	if err := writeFileAtomic(path, []byte(newContent), 0o644); err != nil {
		return "", fmt.Errorf("update .gitignore: %w", err)
	}
	return GitignoreUpdated, nil
}

// hasGitignoreEntry checks whether entry is already present. Entries with
// and without a trailing slash are treated as equivalent.
func hasGitignoreEntry(content, entry string) bool {
	bare := strings.TrimSuffix(entry, "/")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == entry || trimmed == bare || trimmed == bare+"/" {
			return true
		}
	}
	return false
}
