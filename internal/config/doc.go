// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the utemplate configuration. User
// configuration lives in a CUE file under the platform config directory;
// it is validated against an embedded schema and merged over defaults via
// viper, so a missing or partial file always yields a usable Config.
package config
