// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"context"
	"fmt"
	"io"
)

// Engine defines the interface for compose operations.
type Engine interface {
	// Name returns the engine name (docker or podman)
	Name() string
	// Available checks if the engine can run compose commands on this system
	Available() bool
	// Version returns the engine version
	Version(ctx context.Context) (string, error)
	// Up starts a compose stack
	Up(ctx context.Context, opts UpOptions) error
	// UpCommand renders the exact command Up would execute
	UpCommand(opts UpOptions) string
}

// UpOptions contains options for bringing a compose stack up.
type UpOptions struct {
	// File is the compose file path
	File string
	// WorkDir is the directory the command runs in
	WorkDir string
	// Env contains extra environment variables for the compose process
	Env map[string]string
	// Detach runs the stack in the background
	Detach bool
	// ExtraArgs are passed through to the compose CLI verbatim
	ExtraArgs []string
	// Stdout is where to write command output
	Stdout io.Writer
	// Stderr is where to write command errors
	Stderr io.Writer
}

// EngineType identifies the compose engine type
type EngineType string

const (
	EngineTypeDocker EngineType = "docker"
	EngineTypePodman EngineType = "podman"
)

// ErrEngineNotAvailable is returned when a compose engine is not available
type ErrEngineNotAvailable struct {
	Engine string
	Reason string
}

func (e *ErrEngineNotAvailable) Error() string {
	return fmt.Sprintf("compose engine '%s' is not available: %s", e.Engine, e.Reason)
}

// NewEngine creates a new compose engine based on preference, falling back
// to the other engine when the preferred one is unavailable.
func NewEngine(preferredType EngineType) (Engine, error) {
	switch preferredType {
	case EngineTypeDocker:
		engine := NewDockerEngine()
		if engine.Available() {
			return engine, nil
		}
		podmanEngine := NewPodmanEngine()
		if podmanEngine.Available() {
			return podmanEngine, nil
		}
		return nil, &ErrEngineNotAvailable{
			Engine: "docker",
			Reason: "docker is not installed or not accessible, and podman fallback is also not available",
		}

	case EngineTypePodman:
		engine := NewPodmanEngine()
		if engine.Available() {
			return engine, nil
		}
		dockerEngine := NewDockerEngine()
		if dockerEngine.Available() {
			return dockerEngine, nil
		}
		return nil, &ErrEngineNotAvailable{
			Engine: "podman",
			Reason: "podman is not installed or not accessible, and docker fallback is also not available",
		}

	default:
		return nil, fmt.Errorf("unknown compose engine type: %s", preferredType)
	}
}

// AutoDetectEngine tries to find an available compose engine.
func AutoDetectEngine() (Engine, error) {
	docker := NewDockerEngine()
	if docker.Available() {
		return docker, nil
	}

	podman := NewPodmanEngine()
	if podman.Available() {
		return podman, nil
	}

	return nil, &ErrEngineNotAvailable{
		Engine: "any",
		Reason: "no compose engine (docker or podman) is available on this system",
	}
}
