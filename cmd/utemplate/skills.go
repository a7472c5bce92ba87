// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"utemplate-cli/internal/template"

	"github.com/spf13/cobra"
)

var (
	skillsForce bool

	// skillsCmd groups agent skill pack commands
	skillsCmd = &cobra.Command{
		Use:   "skills",
		Short: "Manage agent skill packs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// skillsInitCmd installs a skill pack into the current project
	skillsInitCmd = &cobra.Command{
		Use:   "init <skill>",
		Short: "Install an agent skill pack into the current project",
		Long: `Install an agent skill pack into the current project.

The pack's files are copied into the directory the pack declares (under
.agent/skills/). Existing files are never overwritten unless --force is
given; a conflict aborts the whole copy.`,
		Example: `  utemplate skills init react
  utemplate skills init typescript --force`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSkills,
		RunE:              runSkillsInit,
	}
)

func init() {
	skillsInitCmd.Flags().BoolVarP(&skillsForce, "force", "f", false, "overwrite existing files")

	skillsCmd.AddCommand(skillsInitCmd)
}

func runSkillsInit(cmd *cobra.Command, args []string) error {
	reg, err := template.Default()
	if err != nil {
		return err
	}

	result, err := reg.InitSkill(cmd.Context(), template.InitSkillRequest{
		Skill: args[0],
		Dir:   ".",
		Force: skillsForce,
	})
	if err != nil {
		return wrapScaffoldError(err)
	}

	absDir, _ := filepath.Abs(result.Dir)
	fmt.Printf("%s Installed %s skill pack into %s\n", SuccessStyle.Render("✓"), args[0], absDir)
	for _, rel := range result.Files {
		fmt.Printf("    %s\n", VerboseStyle.Render(rel))
	}

	return nil
}

// completeSkills offers skill pack names for shell completion.
func completeSkills(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	reg, err := template.Default()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, tmpl := range reg.List() {
		if tmpl.Kind == template.KindSkill {
			names = append(names, strings.TrimPrefix(tmpl.RegistryName, "skills/")+"\t"+tmpl.Description)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
