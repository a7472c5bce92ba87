// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"utemplate-cli/internal/issue"
	"utemplate-cli/internal/template"

	"github.com/spf13/cobra"
)

var (
	agentForce     bool
	agentGitignore bool

	// agentCmd groups agent instruction file commands
	agentCmd = &cobra.Command{
		Use:   "agent",
		Short: "Manage the project's agent instruction file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// agentInitCmd copies AGENTS.md into the current directory
	agentInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create AGENTS.md in the current directory",
		Long: `Create AGENTS.md in the current directory.

AGENTS.md holds standing instructions for coding agents working in the
project. An existing file is never overwritten unless --force is given.

With --gitignore, the '.agent/' working directory is added to the
project's .gitignore. The entry is appended at most once, and a missing
.gitignore is reported but never created.`,
		Example: `  utemplate agent init
  utemplate agent init --gitignore
  utemplate agent init --force`,
		Args: cobra.NoArgs,
		RunE: runAgentInit,
	}
)

func init() {
	agentInitCmd.Flags().BoolVarP(&agentForce, "force", "f", false, "overwrite an existing AGENTS.md")
	agentInitCmd.Flags().BoolVarP(&agentGitignore, "gitignore", "g", false, "add the .agent/ entry to .gitignore")

	agentCmd.AddCommand(agentInitCmd)
}

func runAgentInit(cmd *cobra.Command, args []string) error {
	reg, err := template.Default()
	if err != nil {
		return err
	}

	result, err := reg.InitDocument(cmd.Context(), template.InitDocumentRequest{
		Template:  "agent",
		Dir:       ".",
		Force:     agentForce,
		Gitignore: agentGitignore,
	})
	if err != nil {
		return wrapScaffoldError(err)
	}

	absPath, _ := filepath.Abs(result.Path)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)

	switch result.Gitignore {
	case template.GitignoreUpdated:
		fmt.Printf("%s Added %s to .gitignore\n", SuccessStyle.Render("✓"), CmdStyle.Render(result.GitignoreEntry))
	case template.GitignoreUnchanged:
		fmt.Printf("%s .gitignore already contains %s\n", SubtitleStyle.Render("•"), CmdStyle.Render(result.GitignoreEntry))
	case template.GitignoreMissing:
		// Guidance only; a missing .gitignore is not an error.
		renderIssue(cmd.OutOrStdout(), issue.GitignoreMissingId)
	}

	return nil
}
