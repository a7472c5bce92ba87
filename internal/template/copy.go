// SPDX-License-Identifier: MPL-2.0

package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrDestinationExists is the sentinel error wrapped by DestinationExistsError.
var ErrDestinationExists = errors.New("destination already exists")

// DestinationExistsError is returned when a copy would overwrite an existing
// file and force was not requested. It wraps ErrDestinationExists.
type DestinationExistsError struct {
	Path string
}

// Error implements the error interface.
func (e *DestinationExistsError) Error() string {
	return fmt.Sprintf("destination already exists: %s", e.Path)
}

// Unwrap returns ErrDestinationExists so callers can use errors.Is.
func (e *DestinationExistsError) Unwrap() error { return ErrDestinationExists }

// CopyFile copies a single file out of src into dstPath. Without force, an
// existing destination aborts the copy and is left untouched. With force,
// the destination is replaced atomically with the current source content.
func CopyFile(src fs.FS, srcPath, dstPath string, force bool) error {
	data, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return fmt.Errorf("read template file %s: %w", srcPath, err)
	}

	if _, err := os.Stat(dstPath); err == nil {
		if !force {
			return &DestinationExistsError{Path: dstPath}
		}
		return writeFileAtomic(dstPath, data, 0o644)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", dstPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}
	return os.WriteFile(dstPath, data, 0o644)
}

// treeEntry is one file of a payload tree scheduled for copying.
type treeEntry struct {
	srcPath string // path within the source fs
	dstPath string // absolute destination path
}

// CopyTree copies an entire payload tree into dstDir. rename, when non-nil,
// maps source-relative paths to destination-relative paths (used to rename
// compose files); returning "" keeps the original path.
//
// Conflicts are detected for the whole tree before anything is written, so
// a copy without force either lands completely or leaves the destination
// untouched. Returns the destination-relative paths that were written.
func CopyTree(src fs.FS, dstDir string, force bool, rename func(rel string) string) ([]string, error) {
	var entries []treeEntry

	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := p
		if rename != nil {
			if mapped := rename(p); mapped != "" {
				rel = mapped
			}
		}
		entries = append(entries, treeEntry{
			srcPath: p,
			dstPath: filepath.Join(dstDir, filepath.FromSlash(rel)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk template payload: %w", err)
	}

	// Conflict check first so a failed run leaves the destination untouched.
	if !force {
		for _, e := range entries {
			if _, err := os.Stat(e.dstPath); err == nil {
				return nil, &DestinationExistsError{Path: e.dstPath}
			} else if !os.IsNotExist(err) {
				return nil, fmt.Errorf("stat %s: %w", e.dstPath, err)
			}
		}
	}

	written := make([]string, 0, len(entries))
	for _, e := range entries {
		data, err := fs.ReadFile(src, e.srcPath)
		if err != nil {
			return nil, fmt.Errorf("read template file %s: %w", e.srcPath, err)
		}
		if err := os.MkdirAll(filepath.Dir(e.dstPath), 0o755); err != nil {
			return nil, fmt.Errorf("create parent directory: %w", err)
		}

		if _, err := os.Stat(e.dstPath); err == nil {
			// Only reachable with force.
			if err := writeFileAtomic(e.dstPath, data, 0o644); err != nil {
				return nil, err
			}
		} else if err := os.WriteFile(e.dstPath, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", e.dstPath, err)
		}

		rel, err := filepath.Rel(dstDir, e.dstPath)
		if err != nil {
			rel = e.dstPath
		}
		written = append(written, rel)
	}

	return written, nil
}
