// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ContainerEngineDocker uses the Docker CLI (with the compose plugin).
	ContainerEngineDocker ContainerEngine = "docker"
	// ContainerEnginePodman uses the Podman CLI (with podman compose).
	ContainerEnginePodman ContainerEngine = "podman"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidContainerEngine is returned when a ContainerEngine value is not recognized.
	ErrInvalidContainerEngine = errors.New("invalid container engine")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidComposeFileName is returned when the compose file name is empty or a path.
	ErrInvalidComposeFileName = errors.New("invalid compose file name")
	// ErrInvalidPHPVersion is returned when a PHP version does not look like MAJOR.MINOR.
	ErrInvalidPHPVersion = errors.New("invalid php version")
)

type (
	// ContainerEngine specifies which container CLI drives compose stacks.
	ContainerEngine string

	// InvalidContainerEngineError is returned when a ContainerEngine value is
	// not recognized. It wraps ErrInvalidContainerEngine for errors.Is().
	InvalidContainerEngineError struct {
		Value ContainerEngine
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is().
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// PHPConfig holds defaults for the `utemplate php` commands.
	PHPConfig struct {
		// DefaultVersion is the PHP version used when `php start` is invoked
		// without an explicit version argument (MAJOR.MINOR, e.g. "8.3").
		DefaultVersion string `mapstructure:"default_version"`
	}

	// UIConfig holds user-interface preferences.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// Config is the fully resolved utemplate configuration.
	Config struct {
		// ContainerEngine selects docker or podman for compose stacks.
		ContainerEngine ContainerEngine `mapstructure:"container_engine"`

		// ComposeFileName is the default name given to copied compose files
		// (overridable per invocation with --compose-name).
		ComposeFileName string `mapstructure:"compose_file_name"`

		// OutputDir is the default scaffolding target. Empty means the
		// current directory for `init` and the platform data directory for
		// `php start`.
		OutputDir string `mapstructure:"output_dir"`

		PHP PHPConfig `mapstructure:"php"`
		UI  UIConfig  `mapstructure:"ui"`
	}
)

// Error implements the error interface.
func (e *InvalidContainerEngineError) Error() string {
	return fmt.Sprintf("invalid container engine %q (valid: docker, podman)", e.Value)
}

// Unwrap returns ErrInvalidContainerEngine so callers can use errors.Is.
func (e *InvalidContainerEngineError) Unwrap() error { return ErrInvalidContainerEngine }

// Validate returns an error if the ContainerEngine is not one of the defined engines.
func (e ContainerEngine) Validate() error {
	switch e {
	case ContainerEngineDocker, ContainerEnginePodman:
		return nil
	default:
		return &InvalidContainerEngineError{Value: e}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme so callers can use errors.Is.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Validate returns an error if the ColorScheme is not one of the defined schemes.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: s}
	}
}

// Validate checks constraints the CUE schema cannot or should not express
// twice: engine and color scheme enums, a bare (non-path) compose file name,
// and a plausible PHP default version.
func (c *Config) Validate() error {
	if err := c.ContainerEngine.Validate(); err != nil {
		return err
	}
	if err := c.UI.ColorScheme.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(c.ComposeFileName) == "" || strings.ContainsAny(c.ComposeFileName, `/\`) {
		return fmt.Errorf("%w: %q must be a bare file name", ErrInvalidComposeFileName, c.ComposeFileName)
	}

	if !isVersionLike(c.PHP.DefaultVersion) {
		return fmt.Errorf("%w: %q (expected MAJOR.MINOR, e.g. \"8.3\")", ErrInvalidPHPVersion, c.PHP.DefaultVersion)
	}

	return nil
}

// isVersionLike reports whether s looks like "MAJOR.MINOR" with numeric parts.
func isVersionLike(s string) bool {
	major, minor, ok := strings.Cut(s, ".")
	if !ok || major == "" || minor == "" {
		return false
	}
	for _, part := range []string{major, minor} {
		for _, c := range part {
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

// DefaultConfig returns the built-in defaults applied before any config file.
func DefaultConfig() *Config {
	return &Config{
		ContainerEngine: ContainerEngineDocker,
		ComposeFileName: "docker-compose.yml",
		OutputDir:       "",
		PHP: PHPConfig{
			DefaultVersion: "8.3",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
