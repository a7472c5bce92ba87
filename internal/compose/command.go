// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"sort"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// UpArgs constructs arguments for a compose up command.
//
// Generated command: <binary> compose -f <file> up [-d] [extra args...]
func UpArgs(opts UpOptions) []string {
	args := []string{"compose"}

	if opts.File != "" {
		args = append(args, "-f", opts.File)
	}

	args = append(args, "up")

	if opts.Detach {
		args = append(args, "-d")
	}

	args = append(args, opts.ExtraArgs...)
	return args
}

// RenderCommand formats a command line the way a user would type it in a
// shell: env overrides first (sorted), then the binary and its arguments,
// each token shell-quoted.
func RenderCommand(binary string, env map[string]string, args []string) string {
	var parts []string

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, k+"="+quoteToken(env[k]))
	}

	parts = append(parts, quoteToken(binary))
	for _, arg := range args {
		parts = append(parts, quoteToken(arg))
	}

	return strings.Join(parts, " ")
}

// quoteToken shell-quotes a single token. Tokens that cannot be represented
// in POSIX shell (embedded NUL) are passed through unquoted; they cannot
// occur in compose arguments in practice.
func quoteToken(s string) string {
	quoted, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return s
	}
	return quoted
}
