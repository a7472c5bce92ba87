// SPDX-License-Identifier: MPL-2.0

package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	// KindCompose templates ship a Docker Compose service tree.
	KindCompose Kind = "compose"
	// KindDocument templates ship a single document copied into the project root.
	KindDocument Kind = "document"
	// KindSkill templates ship an agent skill pack directory.
	KindSkill Kind = "skill"
)

var (
	// ErrInvalidManifest is the sentinel error wrapped by manifest validation failures.
	ErrInvalidManifest = errors.New("invalid template manifest")
	// ErrInvalidKind is returned when a manifest declares an unknown kind.
	ErrInvalidKind = errors.New("invalid template kind")
)

type (
	// Kind classifies what a template ships and how it is scaffolded.
	Kind string

	// ComposeManifest describes the compose payload of a KindCompose template.
	ComposeManifest struct {
		// File is the compose file name inside the payload tree. It is
		// renamed to the configured compose file name when copied.
		File string `toml:"file"`
		// DBPlaceholder is the literal placeholder substituted by --db-name
		// (empty when the template has no database).
		DBPlaceholder string `toml:"db_placeholder"`
	}

	// DocumentManifest describes the payload of a KindDocument template.
	DocumentManifest struct {
		// File is the document copied into the target project root.
		File string `toml:"file"`
		// GitignoreEntry is the entry --gitignore appends (optional).
		GitignoreEntry string `toml:"gitignore_entry"`
	}

	// SkillManifest describes the payload of a KindSkill template.
	SkillManifest struct {
		// TargetDir is the project-relative directory the pack is copied to.
		TargetDir string `toml:"target_dir"`
	}

	// HooksManifest declares optional lifecycle scripts.
	HooksManifest struct {
		// PostInit is a POSIX shell script run in the output directory after
		// a successful copy. It executes in the embedded interpreter, not
		// the system shell.
		PostInit string `toml:"post_init"`
	}

	// Manifest is the parsed template.toml of a shipped template.
	Manifest struct {
		Name        string           `toml:"name"`
		Description string           `toml:"description"`
		Kind        Kind             `toml:"kind"`
		Compose     ComposeManifest  `toml:"compose"`
		Document    DocumentManifest `toml:"document"`
		Skill       SkillManifest    `toml:"skill"`
		Hooks       HooksManifest    `toml:"hooks"`
	}
)

// Validate returns an error if the Kind is not one of the defined kinds.
func (k Kind) Validate() error {
	switch k {
	case KindCompose, KindDocument, KindSkill:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: compose, document, skill)", ErrInvalidKind, k)
	}
}

// Validate checks the cross-field constraints of a manifest.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidManifest)
	}
	if err := m.Kind.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidManifest, m.Name, err)
	}

	switch m.Kind {
	case KindCompose:
		if m.Compose.File == "" {
			return fmt.Errorf("%w: %s: compose.file is required for compose templates", ErrInvalidManifest, m.Name)
		}
	case KindDocument:
		if m.Document.File == "" {
			return fmt.Errorf("%w: %s: document.file is required for document templates", ErrInvalidManifest, m.Name)
		}
	case KindSkill:
		if m.Skill.TargetDir == "" {
			return fmt.Errorf("%w: %s: skill.target_dir is required for skill templates", ErrInvalidManifest, m.Name)
		}
	}

	// A malformed hook should fail at registry build, not mid-scaffold.
	if m.Hooks.PostInit != "" {
		if err := ParseHook(m.Hooks.PostInit); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidManifest, m.Name, err)
		}
	}

	return nil
}

// ParseManifest decodes and validates a template.toml payload.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
