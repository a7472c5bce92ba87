// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"utemplate-cli/internal/config"
	"utemplate-cli/internal/issue"

	"github.com/charmbracelet/log"
)

// glamourStyle maps the configured color scheme to a glamour style name.
// Auto falls back to dark, which matches most developer terminals.
func glamourStyle() string {
	if loadedConfig.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}

// renderIssue prints a styled issue card for a well-known failure class.
// Rendering problems are logged, never fatal; the card is advisory output.
func renderIssue(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}

	rendered, err := entry.Render(glamourStyle())
	if err != nil {
		log.Warn("failed to render issue card", "issueID", id, "error", err)
		return
	}
	fmt.Fprint(w, rendered)
}
