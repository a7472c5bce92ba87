// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"utemplate-cli/internal/template"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// docsCmd renders a template's README to the terminal
var docsCmd = &cobra.Command{
	Use:   "docs <template>",
	Short: "Show documentation for a template",
	Example: `  utemplate docs postgres
  utemplate docs skills/react`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeAllTemplates,
	RunE:              runDocs,
}

func runDocs(cmd *cobra.Command, args []string) error {
	reg, err := template.Default()
	if err != nil {
		return err
	}

	tmpl, err := reg.Get(args[0])
	if err != nil {
		return wrapScaffoldError(err)
	}

	readme, err := tmpl.README()
	if err != nil {
		return err
	}

	rendered, err := glamour.Render(string(readme), glamourStyle())
	if err != nil {
		// Styled rendering is best-effort; plain markdown still informs.
		fmt.Fprint(cmd.OutOrStdout(), string(readme))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// completeAllTemplates offers every registry name for shell completion.
func completeAllTemplates(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	reg, err := template.Default()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, tmpl := range reg.List() {
		names = append(names, tmpl.RegistryName+"\t"+tmpl.Description)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
