// SPDX-License-Identifier: MPL-2.0

package template

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegistry_InitCompose(t *testing.T) {
	t.Parallel()

	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	t.Run("scaffolds postgres with substitutions", func(t *testing.T) {
		t.Parallel()
		out := t.TempDir()

		res, err := reg.InitCompose(context.Background(), InitComposeRequest{
			Template:    "postgres",
			ProjectName: "shop",
			OutputDir:   out,
			ComposeName: "docker-compose.yml",
		})
		if err != nil {
			t.Fatalf("InitCompose() error = %v", err)
		}

		if res.Dir != filepath.Join(out, "postgres") {
			t.Errorf("Dir = %q, want %q", res.Dir, filepath.Join(out, "postgres"))
		}

		compose, err := os.ReadFile(res.ComposeFile)
		if err != nil {
			t.Fatalf("read compose file: %v", err)
		}
		if !strings.Contains(string(compose), "container_name: shop-postgres") {
			t.Errorf("compose missing prefixed container name:\n%s", compose)
		}
		if strings.Contains(string(compose), "__DB_NAME__") {
			t.Error("compose still contains the db placeholder")
		}
		if !strings.Contains(string(compose), "shop") {
			t.Errorf("compose missing derived db name:\n%s", compose)
		}
	})

	t.Run("custom db and compose names", func(t *testing.T) {
		t.Parallel()
		out := t.TempDir()

		res, err := reg.InitCompose(context.Background(), InitComposeRequest{
			Template:    "postgres",
			ProjectName: "my-app",
			DBName:      "orders",
			OutputDir:   out,
			ComposeName: "compose.dev.yml",
		})
		if err != nil {
			t.Fatalf("InitCompose() error = %v", err)
		}

		if filepath.Base(res.ComposeFile) != "compose.dev.yml" {
			t.Errorf("ComposeFile = %q, want compose.dev.yml", res.ComposeFile)
		}
		if _, err := os.Stat(filepath.Join(res.Dir, "docker-compose.yml")); !os.IsNotExist(err) {
			t.Error("original compose name written despite rename")
		}

		env, err := os.ReadFile(filepath.Join(res.Dir, ".env"))
		if err != nil {
			t.Fatalf("read .env: %v", err)
		}
		if !strings.Contains(string(env), "orders") {
			t.Errorf(".env missing custom db name:\n%s", env)
		}
	})

	t.Run("rerun without force fails and leaves the tree untouched", func(t *testing.T) {
		t.Parallel()
		out := t.TempDir()

		req := InitComposeRequest{
			Template:    "postgres",
			ProjectName: "shop",
			OutputDir:   out,
			ComposeName: "docker-compose.yml",
		}
		res, err := reg.InitCompose(context.Background(), req)
		if err != nil {
			t.Fatalf("first InitCompose() error = %v", err)
		}
		before, err := os.ReadFile(res.ComposeFile)
		if err != nil {
			t.Fatal(err)
		}

		_, err = reg.InitCompose(context.Background(), req)
		if !errors.Is(err, ErrDestinationExists) {
			t.Fatalf("second InitCompose() error = %v, want ErrDestinationExists", err)
		}

		after, err := os.ReadFile(res.ComposeFile)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(before, after) {
			t.Error("existing scaffold was modified by the failed rerun")
		}
	})

	t.Run("force replaces an existing scaffold", func(t *testing.T) {
		t.Parallel()
		out := t.TempDir()

		req := InitComposeRequest{
			Template:    "postgres",
			ProjectName: "shop",
			OutputDir:   out,
			ComposeName: "docker-compose.yml",
		}
		res, err := reg.InitCompose(context.Background(), req)
		if err != nil {
			t.Fatalf("first InitCompose() error = %v", err)
		}
		if err := os.WriteFile(res.ComposeFile, []byte("clobbered"), 0o644); err != nil {
			t.Fatal(err)
		}

		req.Force = true
		if _, err := reg.InitCompose(context.Background(), req); err != nil {
			t.Fatalf("forced InitCompose() error = %v", err)
		}

		compose, err := os.ReadFile(res.ComposeFile)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(compose), "container_name: shop-postgres") {
			t.Errorf("forced rerun did not restore the compose file:\n%s", compose)
		}
	})

	t.Run("post_init hook runs when enabled", func(t *testing.T) {
		t.Parallel()
		out := t.TempDir()
		var stdout bytes.Buffer

		res, err := reg.InitCompose(context.Background(), InitComposeRequest{
			Template:    "sonarqube",
			ProjectName: "quality",
			OutputDir:   out,
			ComposeName: "docker-compose.yml",
			RunHooks:    true,
			Stdout:      &stdout,
			Stderr:      &stdout,
		})
		if err != nil {
			t.Fatalf("InitCompose() error = %v", err)
		}
		if !res.HookRan {
			t.Error("HookRan = false, want true")
		}
		if !strings.Contains(stdout.String(), "vm.max_map_count") {
			t.Errorf("hook output = %q, missing guidance", stdout.String())
		}
	})

	t.Run("invalid project name", func(t *testing.T) {
		t.Parallel()
		_, err := reg.InitCompose(context.Background(), InitComposeRequest{
			Template:    "postgres",
			ProjectName: "Bad Name",
			OutputDir:   t.TempDir(),
			ComposeName: "docker-compose.yml",
		})
		if !errors.Is(err, ErrInvalidProjectName) {
			t.Errorf("InitCompose() error = %v, want ErrInvalidProjectName", err)
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()
		_, err := reg.InitCompose(context.Background(), InitComposeRequest{
			Template:    "oracle",
			ProjectName: "shop",
			OutputDir:   t.TempDir(),
			ComposeName: "docker-compose.yml",
		})
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("InitCompose() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("wrong kind", func(t *testing.T) {
		t.Parallel()
		_, err := reg.InitCompose(context.Background(), InitComposeRequest{
			Template:    "agent",
			ProjectName: "shop",
			OutputDir:   t.TempDir(),
			ComposeName: "docker-compose.yml",
		})
		if !errors.Is(err, ErrWrongKind) {
			t.Errorf("InitCompose() error = %v, want ErrWrongKind", err)
		}
	})
}

func TestRegistry_InitDocument(t *testing.T) {
	t.Parallel()

	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	t.Run("copies the document", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		res, err := reg.InitDocument(context.Background(), InitDocumentRequest{
			Template: "agent",
			Dir:      dir,
		})
		if err != nil {
			t.Fatalf("InitDocument() error = %v", err)
		}

		if res.Path != filepath.Join(dir, "AGENTS.md") {
			t.Errorf("Path = %q", res.Path)
		}
		if _, err := os.Stat(res.Path); err != nil {
			t.Errorf("document missing: %v", err)
		}
		if res.Gitignore != "" {
			t.Errorf("Gitignore = %q without --gitignore", res.Gitignore)
		}
	})

	t.Run("rerun without force fails and keeps local edits", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		if _, err := reg.InitDocument(context.Background(), InitDocumentRequest{Template: "agent", Dir: dir}); err != nil {
			t.Fatalf("first InitDocument() error = %v", err)
		}
		path := filepath.Join(dir, "AGENTS.md")
		edited := []byte("# my edits\n")
		if err := os.WriteFile(path, edited, 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := reg.InitDocument(context.Background(), InitDocumentRequest{Template: "agent", Dir: dir})
		if !errors.Is(err, ErrDestinationExists) {
			t.Fatalf("second InitDocument() error = %v, want ErrDestinationExists", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, edited) {
			t.Error("local edits were overwritten by the failed rerun")
		}
	})

	t.Run("gitignore entry maintained when requested", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("dist/\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		res, err := reg.InitDocument(context.Background(), InitDocumentRequest{
			Template:  "agent",
			Dir:       dir,
			Gitignore: true,
		})
		if err != nil {
			t.Fatalf("InitDocument() error = %v", err)
		}
		if res.Gitignore != GitignoreUpdated {
			t.Errorf("Gitignore = %q, want %q", res.Gitignore, GitignoreUpdated)
		}
		if res.GitignoreEntry != ".agent/" {
			t.Errorf("GitignoreEntry = %q", res.GitignoreEntry)
		}

		content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), ".agent/") {
			t.Errorf(".gitignore = %q, missing entry", content)
		}
	})

	t.Run("missing gitignore reported without touching the filesystem", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		res, err := reg.InitDocument(context.Background(), InitDocumentRequest{
			Template:  "agent",
			Dir:       dir,
			Gitignore: true,
		})
		if err != nil {
			t.Fatalf("InitDocument() error = %v", err)
		}
		if res.Gitignore != GitignoreMissing {
			t.Errorf("Gitignore = %q, want %q", res.Gitignore, GitignoreMissing)
		}
		if _, err := os.Stat(filepath.Join(dir, ".gitignore")); !os.IsNotExist(err) {
			t.Error(".gitignore was created")
		}
	})
}

func TestRegistry_InitSkill(t *testing.T) {
	t.Parallel()

	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	t.Run("installs into the manifest target dir", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		res, err := reg.InitSkill(context.Background(), InitSkillRequest{Skill: "react", Dir: dir})
		if err != nil {
			t.Fatalf("InitSkill() error = %v", err)
		}

		want := filepath.Join(dir, ".agent", "skills", "react")
		if res.Dir != want {
			t.Errorf("Dir = %q, want %q", res.Dir, want)
		}
		if _, err := os.Stat(filepath.Join(res.Dir, "SKILL.md")); err != nil {
			t.Errorf("SKILL.md missing: %v", err)
		}
	})

	t.Run("rerun without force fails", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		if _, err := reg.InitSkill(context.Background(), InitSkillRequest{Skill: "typescript", Dir: dir}); err != nil {
			t.Fatalf("first InitSkill() error = %v", err)
		}
		_, err := reg.InitSkill(context.Background(), InitSkillRequest{Skill: "typescript", Dir: dir})
		if !errors.Is(err, ErrDestinationExists) {
			t.Errorf("second InitSkill() error = %v, want ErrDestinationExists", err)
		}
	})

	t.Run("unknown skill", func(t *testing.T) {
		t.Parallel()
		_, err := reg.InitSkill(context.Background(), InitSkillRequest{Skill: "cobol", Dir: t.TempDir()})
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("InitSkill() error = %v, want ErrTemplateNotFound", err)
		}
	})
}
