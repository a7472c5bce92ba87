// SPDX-License-Identifier: MPL-2.0

package template

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValidateProjectName(t *testing.T) {
	t.Parallel()

	valid := []string{"myapp", "my-app", "a", "app2", "my-app-2"}
	for _, name := range valid {
		if err := ValidateProjectName(name); err != nil {
			t.Errorf("ValidateProjectName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "My-App", "2app", "-app", "my_app", "my app", "app!"}
	for _, name := range invalid {
		err := ValidateProjectName(name)
		if !errors.Is(err, ErrInvalidProjectName) {
			t.Errorf("ValidateProjectName(%q) = %v, want ErrInvalidProjectName", name, err)
		}
	}
}

func TestDefaultDBName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		project string
		want    string
	}{
		{"myapp", "myapp"},
		{"my-app", "my_app"},
		{"my-big-app", "my_big_app"},
	}
	for _, tt := range tests {
		if got := DefaultDBName(tt.project); got != tt.want {
			t.Errorf("DefaultDBName(%q) = %q, want %q", tt.project, got, tt.want)
		}
	}
}

func TestPrefixContainerNames(t *testing.T) {
	t.Parallel()

	in := `# Local development stack.
services:
  db:
    image: postgres:17
    container_name: postgres # renamed per project
    environment:
      POSTGRES_DB: app
  admin:
    image: adminer:latest
    container_name: adminer
  worker:
    image: busybox:latest
`

	out, err := PrefixContainerNames([]byte(in), "shop")
	if err != nil {
		t.Fatalf("PrefixContainerNames() error = %v", err)
	}
	got := string(out)

	for _, want := range []string{
		"container_name: shop-postgres",
		"container_name: shop-adminer",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// Comments survive the rewrite.
	for _, comment := range []string{"# Local development stack.", "# renamed per project"} {
		if !strings.Contains(got, comment) {
			t.Errorf("output lost comment %q:\n%s", comment, got)
		}
	}

	// Everything else is structurally intact.
	var parsed struct {
		Services map[string]struct {
			Image         string `yaml:"image"`
			ContainerName string `yaml:"container_name"`
		} `yaml:"services"`
	}
	if err := yaml.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if parsed.Services["db"].Image != "postgres:17" {
		t.Errorf("db image = %q, want postgres:17", parsed.Services["db"].Image)
	}
	if parsed.Services["worker"].ContainerName != "" {
		t.Errorf("worker gained a container_name: %q", parsed.Services["worker"].ContainerName)
	}
}

func TestPrefixContainerNames_NoServices(t *testing.T) {
	t.Parallel()

	in := []byte("volumes:\n  data:\n")
	out, err := PrefixContainerNames(in, "shop")
	if err != nil {
		t.Fatalf("PrefixContainerNames() error = %v", err)
	}
	if string(out) != string(in) {
		t.Errorf("output = %q, want input unchanged", out)
	}
}

func TestPrefixContainerNames_InvalidYAML(t *testing.T) {
	t.Parallel()

	if _, err := PrefixContainerNames([]byte("services: [\n"), "shop"); err == nil {
		t.Error("PrefixContainerNames() = nil error for invalid YAML")
	}
}

func TestReplacePlaceholder(t *testing.T) {
	t.Parallel()

	in := []byte("POSTGRES_DB: __DB_NAME__\n# __DB_NAME__ again\n")
	got := ReplacePlaceholder(in, "__DB_NAME__", "shop_db")
	want := "POSTGRES_DB: shop_db\n# shop_db again\n"
	if string(got) != want {
		t.Errorf("ReplacePlaceholder() = %q, want %q", got, want)
	}

	if out := ReplacePlaceholder(in, "", "x"); string(out) != string(in) {
		t.Error("empty placeholder must be a no-op")
	}
}
