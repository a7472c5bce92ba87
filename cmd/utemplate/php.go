// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"utemplate-cli/internal/compose"
	"utemplate-cli/internal/config"
	"utemplate-cli/internal/issue"
	"utemplate-cli/internal/template"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	phpDryRun bool

	// phpCmd groups PHP dev environment commands
	phpCmd = &cobra.Command{
		Use:   "php",
		Short: "Manage the PHP dev environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// phpStartCmd scaffolds (if needed) and starts the PHP stack
	phpStartCmd = &cobra.Command{
		Use:   "start [version]",
		Short: "Start a PHP dev environment for the given version",
		Long: `Start a PHP dev environment for the given version.

On first use the PHP template is scaffolded into the output directory;
later runs reuse the existing scaffold. The stack is then started with
'<engine> compose up -d', with PHP_VERSION pinning the container image.

The version defaults to php.default_version from the configuration.
Arguments after '--' are passed through to the compose CLI verbatim.`,
		Example: `  utemplate php start 8.4
  utemplate php start 8.3 --dry-run
  utemplate php start 8.4 -- --build`,
		Args: func(cmd *cobra.Command, args []string) error {
			// Args after `--` belong to compose, not to us.
			n := len(args)
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				n = dash
			}
			if n > 1 {
				return fmt.Errorf("accepts at most 1 version argument, received %d", n)
			}
			return nil
		},
		RunE: runPHPStart,
	}
)

// phpVersionRe matches MAJOR.MINOR PHP versions.
var phpVersionRe = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)

func init() {
	phpStartCmd.Flags().BoolVar(&phpDryRun, "dry-run", false, "print the compose command without executing it")

	phpCmd.AddCommand(phpStartCmd)
}

func runPHPStart(cmd *cobra.Command, args []string) error {
	positional := args
	extraArgs := []string{}
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		positional = args[:dash]
		extraArgs = args[dash:]
	}

	version := loadedConfig.PHP.DefaultVersion
	if len(positional) > 0 {
		version = positional[0]
	}
	if !phpVersionRe.MatchString(version) {
		return fmt.Errorf("invalid PHP version %q (expected MAJOR.MINOR, e.g. 8.4)", version)
	}

	stackDir, err := ensurePHPScaffold(cmd, version)
	if err != nil {
		return err
	}

	engine, err := compose.NewEngine(compose.EngineType(loadedConfig.ContainerEngine))
	if err != nil {
		renderIssue(os.Stderr, issue.ComposeEngineNotFoundId)
		return err
	}

	opts := compose.UpOptions{
		File:      loadedConfig.ComposeFileName,
		WorkDir:   stackDir,
		Env:       map[string]string{"PHP_VERSION": version},
		Detach:    true,
		ExtraArgs: extraArgs,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}

	if phpDryRun {
		fmt.Printf("%s (in %s)\n", CmdStyle.Render(engine.UpCommand(opts)), stackDir)
		return nil
	}

	log.Debug("starting PHP stack", "engine", engine.Name(), "version", version, "dir", stackDir)
	if err := engine.Up(cmd.Context(), opts); err != nil {
		return err
	}

	fmt.Printf("%s PHP %s dev environment is up\n", SuccessStyle.Render("✓"), version)
	fmt.Printf("  %s\n", SubtitleStyle.Render("http://localhost:8000 serves the src/ directory"))
	return nil
}

// ensurePHPScaffold scaffolds the php template on first use and returns the
// stack directory. An existing scaffold is reused as-is.
func ensurePHPScaffold(cmd *cobra.Command, version string) (string, error) {
	outputDir := loadedConfig.OutputDir
	if outputDir == "" {
		// A stack utemplate manages itself lives under the data dir, not
		// in whatever directory the command happens to run from.
		var err error
		outputDir, err = config.DataDir()
		if err != nil {
			return "", err
		}
	}
	stackDir := filepath.Join(outputDir, "php")

	if _, err := os.Stat(filepath.Join(stackDir, loadedConfig.ComposeFileName)); err == nil {
		log.Debug("reusing existing PHP scaffold", "dir", stackDir)
		return stackDir, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat %s: %w", stackDir, err)
	}

	reg, err := template.Default()
	if err != nil {
		return "", err
	}

	// Container names are prefixed per version so stacks for different PHP
	// versions do not collide.
	projectName := "php" + strings.ReplaceAll(version, ".", "-")

	result, err := reg.InitCompose(cmd.Context(), template.InitComposeRequest{
		Template:    "php",
		ProjectName: projectName,
		OutputDir:   outputDir,
		ComposeName: loadedConfig.ComposeFileName,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	})
	if err != nil {
		return "", wrapScaffoldError(err)
	}

	fmt.Printf("%s Scaffolded PHP dev environment in %s\n", SuccessStyle.Render("✓"), result.Dir)
	return result.Dir, nil
}
