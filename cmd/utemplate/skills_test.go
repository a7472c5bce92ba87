// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"utemplate-cli/internal/template"
	"utemplate-cli/internal/testutil"
)

// Not parallel: skills init operates on the process working directory and
// the package-level flag vars.

func resetSkillsFlags(t *testing.T) {
	t.Helper()
	origForce := skillsForce
	t.Cleanup(func() { skillsForce = origForce })
	skillsForce = false
	skillsInitCmd.SetContext(context.Background())
}

func TestSkillsInit(t *testing.T) {
	resetSkillsFlags(t)
	dir := t.TempDir()
	t.Cleanup(testutil.MustChdir(t, dir))

	if err := runSkillsInit(skillsInitCmd, []string{"react"}); err != nil {
		t.Fatalf("runSkillsInit() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, ".agent", "skills", "react", "SKILL.md")); err != nil {
		t.Errorf("SKILL.md missing: %v", err)
	}
}

func TestSkillsInit_RerunWithoutForce(t *testing.T) {
	resetSkillsFlags(t)
	t.Cleanup(testutil.MustChdir(t, t.TempDir()))

	if err := runSkillsInit(skillsInitCmd, []string{"typescript"}); err != nil {
		t.Fatalf("first runSkillsInit() error = %v", err)
	}
	err := runSkillsInit(skillsInitCmd, []string{"typescript"})
	if !errors.Is(err, template.ErrDestinationExists) {
		t.Errorf("second runSkillsInit() error = %v, want ErrDestinationExists", err)
	}

	skillsForce = true
	if err := runSkillsInit(skillsInitCmd, []string{"typescript"}); err != nil {
		t.Errorf("forced runSkillsInit() error = %v", err)
	}
}

func TestSkillsInit_UnknownSkill(t *testing.T) {
	resetSkillsFlags(t)
	t.Cleanup(testutil.MustChdir(t, t.TempDir()))

	err := runSkillsInit(skillsInitCmd, []string{"cobol"})
	if !errors.Is(err, template.ErrTemplateNotFound) {
		t.Errorf("runSkillsInit() error = %v, want ErrTemplateNotFound", err)
	}
}
