// SPDX-License-Identifier: MPL-2.0

package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//go:embed all:assets
var assetsFS embed.FS

const (
	manifestFileName = "template.toml"
	readmeFileName   = "README.md"
	payloadDirName   = "files"
)

// ErrTemplateNotFound is returned when a template name does not resolve.
var ErrTemplateNotFound = errors.New("template not found")

type (
	// TemplateNotFoundError is returned when a template name does not
	// resolve. It wraps ErrTemplateNotFound for errors.Is().
	TemplateNotFoundError struct {
		Name string
	}

	// Template is a shipped template: its manifest plus access to the
	// embedded payload tree and README.
	Template struct {
		Manifest

		// RegistryName is the name the template resolves under, mirroring
		// its directory in the assets layout (e.g. "skills/react").
		RegistryName string

		source fs.FS  // filesystem the template was loaded from
		root   string // template directory within source
	}

	// Registry resolves template names to shipped templates. Names mirror
	// the assets layout: "postgres", "agent", "skills/react".
	Registry struct {
		templates map[string]*Template
	}
)

// Error implements the error interface.
func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found: %q", e.Name)
}

// Unwrap returns ErrTemplateNotFound so callers can use errors.Is.
func (e *TemplateNotFoundError) Unwrap() error { return ErrTemplateNotFound }

// Payload returns the template's files/ tree as an fs.FS.
func (t *Template) Payload() (fs.FS, error) {
	sub, err := fs.Sub(t.source, path.Join(t.root, payloadDirName))
	if err != nil {
		return nil, fmt.Errorf("template %s has no payload: %w", t.Name, err)
	}
	return sub, nil
}

// README returns the template's README.md content.
func (t *Template) README() ([]byte, error) {
	data, err := fs.ReadFile(t.source, path.Join(t.root, readmeFileName))
	if err != nil {
		return nil, fmt.Errorf("template %s has no README: %w", t.Name, err)
	}
	return data, nil
}

// NewRegistry builds a registry from a filesystem laid out like assets/:
// every directory containing a template.toml becomes a template keyed by
// its path relative to the root.
func NewRegistry(source fs.FS) (*Registry, error) {
	r := &Registry{templates: make(map[string]*Template)}

	err := fs.WalkDir(source, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != manifestFileName {
			return nil
		}

		data, err := fs.ReadFile(source, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		m, err := ParseManifest(data)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}

		dir := path.Dir(p)
		r.templates[dir] = &Template{
			Manifest:     *m,
			RegistryName: dir,
			source:       source,
			root:         dir,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Get resolves a template by name.
func (r *Registry) Get(name string) (*Template, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, &TemplateNotFoundError{Name: name}
	}
	return t, nil
}

// List returns all templates sorted by registry name.
func (r *Registry) List() []*Template {
	names := maps.Keys(r.templates)
	slices.Sort(names)

	out := make([]*Template, 0, len(names))
	for _, name := range names {
		out = append(out, r.templates[name])
	}
	return out
}

// Names returns all registry names in sorted order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.templates)
	slices.Sort(names)
	return names
}

var (
	defaultRegistry     *Registry
	defaultRegistryErr  error
	defaultRegistryOnce sync.Once
)

// Default returns the registry built from the embedded assets.
func Default() (*Registry, error) {
	defaultRegistryOnce.Do(func() {
		sub, err := fs.Sub(assetsFS, "assets")
		if err != nil {
			defaultRegistryErr = err
			return
		}
		defaultRegistry, defaultRegistryErr = NewRegistry(sub)
	})
	return defaultRegistry, defaultRegistryErr
}
