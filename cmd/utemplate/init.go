// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"utemplate-cli/internal/template"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	initProjectName string
	initDBName      string
	initOutputDir   string
	initComposeName string
	initForce       bool
	initNoHooks     bool

	// initCmd scaffolds a compose template into the target project
	initCmd = &cobra.Command{
		Use:   "init <template>",
		Short: "Scaffold a compose service template",
		Long: `Scaffold a compose service template into the target project.

The template's files are copied into <output-dir>/<template>/. Every
'container_name' in the compose file is prefixed with the project name so
multiple projects can run the same stack side by side, and templates that
declare a database placeholder get the database name substituted.

Existing files are never overwritten unless --force is given; a conflicting
destination aborts the whole copy and leaves the project untouched.`,
		Example: `  utemplate init postgres --project-name shop
  utemplate init mysql --project-name shop --db-name orders
  utemplate init wordpress --project-name blog -n compose.dev.yml`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeComposeTemplates,
		RunE:              runInit,
	}
)

func init() {
	initCmd.Flags().StringVar(&initProjectName, "project-name", "", "project name used to prefix container names (required)")
	initCmd.Flags().StringVar(&initDBName, "db-name", "", "database name (default derived from the project name)")
	initCmd.Flags().StringVar(&initOutputDir, "output-dir", "", "directory to scaffold into (default from config, falling back to the current directory)")
	initCmd.Flags().StringVarP(&initComposeName, "compose-name", "n", "", "file name for the copied compose file (default from config)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
	initCmd.Flags().BoolVar(&initNoHooks, "no-hooks", false, "skip the template's post-init hook")

	_ = initCmd.MarkFlagRequired("project-name")
}

func runInit(cmd *cobra.Command, args []string) error {
	reg, err := template.Default()
	if err != nil {
		return err
	}

	outputDir := initOutputDir
	if outputDir == "" {
		outputDir = loadedConfig.OutputDir
	}
	composeName := initComposeName
	if composeName == "" {
		composeName = loadedConfig.ComposeFileName
	}

	log.Debug("scaffolding compose template",
		"template", args[0], "project", initProjectName, "outputDir", outputDir)

	result, err := reg.InitCompose(cmd.Context(), template.InitComposeRequest{
		Template:    args[0],
		ProjectName: initProjectName,
		DBName:      initDBName,
		OutputDir:   outputDir,
		ComposeName: composeName,
		Force:       initForce,
		RunHooks:    !initNoHooks,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	})
	if err != nil {
		return wrapScaffoldError(err)
	}

	absDir, _ := filepath.Abs(result.Dir)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absDir)
	for _, rel := range result.Files {
		fmt.Printf("    %s\n", VerboseStyle.Render(rel))
	}
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Printf("  1. Review %s\n", CmdStyle.Render(filepath.Join(result.Dir, composeName)))
	fmt.Printf("  2. Start the stack: %s\n", CmdStyle.Render(fmt.Sprintf("%s compose -f %s up -d",
		loadedConfig.ContainerEngine, filepath.Join(result.Dir, composeName))))

	return nil
}

// completeComposeTemplates offers compose template names for shell completion.
func completeComposeTemplates(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	reg, err := template.Default()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, tmpl := range reg.List() {
		if tmpl.Kind == template.KindCompose {
			names = append(names, tmpl.Name+"\t"+tmpl.Description)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
