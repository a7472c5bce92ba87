// SPDX-License-Identifier: MPL-2.0

// Package compose provides an abstraction layer for compose-capable
// container runtimes (Docker/Podman). Engines wrap the respective CLI;
// commands are built once so the same argument slice backs both real
// execution and dry-run rendering.
package compose
