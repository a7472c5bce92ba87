// SPDX-License-Identifier: MPL-2.0

package template

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidProjectName is the sentinel error wrapped by InvalidProjectNameError.
var ErrInvalidProjectName = errors.New("invalid project name")

// InvalidProjectNameError is returned when a project name cannot be used as
// a container name prefix. It wraps ErrInvalidProjectName.
type InvalidProjectNameError struct {
	Value string
}

// Error implements the error interface.
func (e *InvalidProjectNameError) Error() string {
	return fmt.Sprintf("invalid project name %q (lowercase letters, digits and hyphens, starting with a letter)", e.Value)
}

// Unwrap returns ErrInvalidProjectName so callers can use errors.Is.
func (e *InvalidProjectNameError) Unwrap() error { return ErrInvalidProjectName }

// projectNameRe matches names usable as container name prefixes.
var projectNameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateProjectName checks that name can prefix container names.
func ValidateProjectName(name string) error {
	if !projectNameRe.MatchString(name) {
		return &InvalidProjectNameError{Value: name}
	}
	return nil
}

// DefaultDBName derives a database name from the project name: hyphens are
// not valid in most database identifiers, so they become underscores.
func DefaultDBName(projectName string) string {
	return strings.ReplaceAll(projectName, "-", "_")
}

// PrefixContainerNames rewrites a compose file so every
// services.*.container_name value is prefixed with "<project>-". The YAML
// is edited through the node API, which keeps comments intact.
func PrefixContainerNames(data []byte, project string) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse compose file: %w", err)
	}
	if len(doc.Content) == 0 {
		return data, nil
	}

	root := doc.Content[0]
	services := mappingValue(root, "services")
	if services == nil || services.Kind != yaml.MappingNode {
		// No services section; nothing to rewrite.
		return data, nil
	}

	for i := 0; i+1 < len(services.Content); i += 2 {
		service := services.Content[i+1]
		if service.Kind != yaml.MappingNode {
			continue
		}
		if name := mappingValue(service, "container_name"); name != nil && name.Kind == yaml.ScalarNode {
			name.Value = project + "-" + name.Value
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode compose file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode compose file: %w", err)
	}

	return buf.Bytes(), nil
}

// mappingValue returns the value node for key in a YAML mapping, or nil.
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// ReplacePlaceholder substitutes every occurrence of placeholder in data.
// Used for database-name placeholders in compose and env files.
func ReplacePlaceholder(data []byte, placeholder, value string) []byte {
	if placeholder == "" {
		return data
	}
	return bytes.ReplaceAll(data, []byte(placeholder), []byte(value))
}
