// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"utemplate-cli/internal/template"

	"github.com/spf13/cobra"
)

// listCmd lists the shipped templates
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := template.Default()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("Available templates"))
	fmt.Fprintln(out)

	// Stable kind order: stacks first, then documents and skill packs.
	for _, kind := range []template.Kind{template.KindCompose, template.KindDocument, template.KindSkill} {
		header := map[template.Kind]string{
			template.KindCompose:  "Compose stacks",
			template.KindDocument: "Documents",
			template.KindSkill:    "Skill packs",
		}[kind]

		printed := false
		for _, tmpl := range reg.List() {
			if tmpl.Kind != kind {
				continue
			}
			if !printed {
				fmt.Fprintln(out, SubtitleStyle.Render(header+":"))
				printed = true
			}
			fmt.Fprintf(out, "  %-20s %s\n", CmdStyle.Render(tmpl.RegistryName), tmpl.Description)
		}
		if printed {
			fmt.Fprintln(out)
		}
	}

	fmt.Fprintln(out, SubtitleStyle.Render("Run 'utemplate docs <template>' for details."))
	return nil
}
