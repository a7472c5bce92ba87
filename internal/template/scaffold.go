// SPDX-License-Identifier: MPL-2.0

package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// ErrWrongKind is returned when an operation is invoked against a template
// of a different kind (e.g. `init` against a skill pack).
var ErrWrongKind = errors.New("template kind mismatch")

type (
	// InitComposeRequest captures the inputs of `utemplate init`.
	InitComposeRequest struct {
		// Template is the registry name of a compose template (e.g. "postgres").
		Template string
		// ProjectName prefixes container names in the copied compose file.
		ProjectName string
		// DBName substitutes the template's database placeholder. Empty
		// means a name derived from ProjectName.
		DBName string
		// OutputDir is the directory the template subtree is created in.
		OutputDir string
		// ComposeName is the file name given to the copied compose file.
		ComposeName string
		// Force overwrites existing destination files.
		Force bool
		// RunHooks enables the manifest post_init hook.
		RunHooks bool
		// Stdout and Stderr receive hook output.
		Stdout io.Writer
		Stderr io.Writer
	}

	// InitComposeResult describes what a compose scaffold produced.
	InitComposeResult struct {
		// Dir is the directory the files landed in.
		Dir string
		// ComposeFile is the path of the rewritten compose file.
		ComposeFile string
		// Files are the destination-relative paths written.
		Files []string
		// HookRan reports whether a post_init hook executed.
		HookRan bool
	}

	// InitDocumentRequest captures the inputs of `utemplate agent init`.
	InitDocumentRequest struct {
		// Template is the registry name of a document template (e.g. "agent").
		Template string
		// Dir is the target project directory.
		Dir string
		// Force overwrites an existing document.
		Force bool
		// Gitignore enables the .gitignore entry maintenance.
		Gitignore bool
	}

	// InitDocumentResult describes what a document scaffold produced.
	InitDocumentResult struct {
		// Path is the copied document.
		Path string
		// GitignoreEntry is the entry maintained (empty when not requested).
		GitignoreEntry string
		// Gitignore reports what happened to .gitignore (empty when not requested).
		Gitignore GitignoreResult
	}

	// InitSkillRequest captures the inputs of `utemplate skills init`.
	InitSkillRequest struct {
		// Skill is the short skill name (e.g. "react"); resolved as
		// "skills/<name>" in the registry.
		Skill string
		// Dir is the target project directory.
		Dir string
		// Force overwrites existing destination files.
		Force bool
	}

	// InitSkillResult describes what a skill scaffold produced.
	InitSkillResult struct {
		// Dir is the directory the pack landed in.
		Dir string
		// Files are the destination-relative paths written.
		Files []string
	}
)

// InitCompose scaffolds a compose template: copies the payload tree into
// <OutputDir>/<template>/, renames the compose file to ComposeName,
// substitutes the database placeholder across the payload, prefixes every
// container_name with the project name, and runs the post_init hook.
func (r *Registry) InitCompose(ctx context.Context, req InitComposeRequest) (*InitComposeResult, error) {
	tmpl, err := r.Get(req.Template)
	if err != nil {
		return nil, err
	}
	if tmpl.Kind != KindCompose {
		return nil, fmt.Errorf("%w: %s is a %s template", ErrWrongKind, req.Template, tmpl.Kind)
	}

	if err := ValidateProjectName(req.ProjectName); err != nil {
		return nil, err
	}

	dbName := req.DBName
	if dbName == "" {
		dbName = DefaultDBName(req.ProjectName)
	}

	payload, err := tmpl.Payload()
	if err != nil {
		return nil, err
	}

	dstDir := filepath.Join(req.OutputDir, path.Base(req.Template))
	rename := func(rel string) string {
		if rel == tmpl.Compose.File {
			return req.ComposeName
		}
		return ""
	}

	written, err := CopyTree(payload, dstDir, req.Force, rename)
	if err != nil {
		return nil, err
	}

	// Substitution pass over the copied files. Payloads are small text
	// files, so a read-rewrite cycle per file is fine.
	composePath := filepath.Join(dstDir, req.ComposeName)
	for _, rel := range written {
		p := filepath.Join(dstDir, rel)
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reread %s: %w", p, err)
		}

		rewritten := ReplacePlaceholder(data, tmpl.Compose.DBPlaceholder, dbName)
		if p == composePath {
			rewritten, err = PrefixContainerNames(rewritten, req.ProjectName)
			if err != nil {
				return nil, err
			}
		}

		if string(rewritten) != string(data) {
			if err := writeFileAtomic(p, rewritten, 0o644); err != nil {
				return nil, err
			}
		}
	}

	result := &InitComposeResult{
		Dir:         dstDir,
		ComposeFile: composePath,
		Files:       written,
	}

	if req.RunHooks && tmpl.Hooks.PostInit != "" {
		if err := RunPostInit(ctx, tmpl.Hooks.PostInit, dstDir, req.ProjectName, req.Stdout, req.Stderr); err != nil {
			return result, err
		}
		result.HookRan = true
	}

	return result, nil
}

// InitDocument scaffolds a document template into the project root and
// optionally maintains its .gitignore entry.
func (r *Registry) InitDocument(_ context.Context, req InitDocumentRequest) (*InitDocumentResult, error) {
	tmpl, err := r.Get(req.Template)
	if err != nil {
		return nil, err
	}
	if tmpl.Kind != KindDocument {
		return nil, fmt.Errorf("%w: %s is a %s template", ErrWrongKind, req.Template, tmpl.Kind)
	}

	payload, err := tmpl.Payload()
	if err != nil {
		return nil, err
	}

	dstPath := filepath.Join(req.Dir, tmpl.Document.File)
	if err := CopyFile(payload, tmpl.Document.File, dstPath, req.Force); err != nil {
		return nil, err
	}

	result := &InitDocumentResult{Path: dstPath}

	if req.Gitignore && tmpl.Document.GitignoreEntry != "" {
		res, err := EnsureGitignoreEntry(req.Dir, tmpl.Document.GitignoreEntry)
		if err != nil {
			return result, err
		}
		result.GitignoreEntry = tmpl.Document.GitignoreEntry
		result.Gitignore = res
	}

	return result, nil
}

// InitSkill scaffolds a skill pack into its manifest-declared target
// directory inside the project.
func (r *Registry) InitSkill(_ context.Context, req InitSkillRequest) (*InitSkillResult, error) {
	name := "skills/" + req.Skill
	tmpl, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if tmpl.Kind != KindSkill {
		return nil, fmt.Errorf("%w: %s is a %s template", ErrWrongKind, name, tmpl.Kind)
	}

	payload, err := tmpl.Payload()
	if err != nil {
		return nil, err
	}

	dstDir := filepath.Join(req.Dir, filepath.FromSlash(tmpl.Skill.TargetDir))
	written, err := CopyTree(payload, dstDir, req.Force, nil)
	if err != nil {
		return nil, err
	}

	return &InitSkillResult{Dir: dstDir, Files: written}, nil
}
