// SPDX-License-Identifier: MPL-2.0

// Package template holds the embedded template registry and the scaffolding
// engine that copies templates into target projects.
//
// Each shipped template is a directory under assets/ containing a
// template.toml manifest, a README.md, and a files/ payload tree. The
// registry resolves template names to their manifests and payloads; the
// scaffolding functions copy payloads with overwrite guards, rename and
// rewrite compose files, maintain .gitignore entries, and run optional
// post-init hook scripts in the embedded shell interpreter.
package template
