// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error infrastructure: ActionableError
// carries operation/resource/suggestion context for CLI rendering, and the
// issue catalog maps well-known failure classes to markdown help cards.
package issue
