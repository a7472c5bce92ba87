// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a well-known failure class in the catalog.
type Id int

const (
	TemplateNotFoundId Id = iota + 1
	DestinationExistsId
	GitignoreMissingId
	ComposeEngineNotFoundId
	InvalidProjectNameId
	ConfigLoadFailedId
	HookFailedId
)

// MarkdownMsg is markdown text that will be rendered to the terminal.
type MarkdownMsg string

// HttpLink is a URL shown in the "See also" section of an issue card.
type HttpLink string

// Renderer renders markdown to styled terminal output.
type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

// Issue is a catalog entry describing a well-known failure class with
// actionable help text.
type Issue struct {
	id       Id          // ID used to look up the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation links, may be empty
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue card as styled terminal output using the given
// glamour style path ("" for auto).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	templateNotFoundIssue = &Issue{
		id: TemplateNotFoundId,
		mdMsg: `
# Template not found!

The template name you specified does not match any shipped template.

## Things you can try:
- List all available templates:
~~~
$ utemplate list
~~~

- Check for typos in the template name
- Read a template's documentation:
~~~
$ utemplate docs postgres
~~~`,
	}

	destinationExistsIssue = &Issue{
		id: DestinationExistsId,
		mdMsg: `
# Destination already exists!

The file or directory this template would create is already present, and
utemplate refuses to overwrite it by default.

## Things you can try:
- Overwrite it with the current template content:
~~~
$ utemplate <command> --force
~~~

- Scaffold into a different directory:
~~~
$ utemplate init <template> --project-name myapp --output-dir ./elsewhere
~~~

- Remove or rename the existing file first`,
	}

	gitignoreMissingIssue = &Issue{
		id: GitignoreMissingId,
		mdMsg: `
# No .gitignore in this project!

utemplate only appends entries to an existing .gitignore; it never creates
one, so your working tree was left untouched.

## Things you can try:
- Create a .gitignore and re-run:
~~~
$ touch .gitignore
$ utemplate agent init --gitignore
~~~

- Or add the entry yourself:
~~~
$ echo '.agent/' >> .gitignore
~~~`,
	}

	composeEngineNotFoundIssue = &Issue{
		id: ComposeEngineNotFoundId,
		mdMsg: `
# Container engine not found!

Starting a compose stack requires Docker or Podman, and neither is
available on this system.

## Supported container engines:
- **Docker** (with the compose plugin)
- **Podman** (with podman-compose)

## Things you can try:
- Install Docker:
  - https://docs.docker.com/get-docker/

- Install Podman:
  - Linux: ` + "`sudo apt install podman`" + ` or ` + "`sudo dnf install podman`" + `
  - macOS: ` + "`brew install podman`" + `

- Select an engine explicitly in your config file:
~~~cue
container_engine: "podman"
~~~`,
	}

	invalidProjectNameIssue = &Issue{
		id: InvalidProjectNameId,
		mdMsg: `
# Invalid project name!

The project name is used as a container name prefix, so it must consist of
lowercase letters, digits, and hyphens, and start with a letter.

## Examples of valid names:
~~~
$ utemplate init postgres --project-name my-shop
$ utemplate init mysql --project-name blog2
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config file contains syntax errors or values the schema rejects.
Defaults are applied until it parses again.

## Things you can try:
- Check the error message above for the specific field
- Show the resolved configuration:
~~~
$ utemplate config show
~~~

## Example of a valid config file:
~~~cue
container_engine:  "docker"
compose_file_name: "docker-compose.yml"

php: {
	default_version: "8.3"
}

ui: {
	verbose: false
}
~~~`,
	}

	hookFailedIssue = &Issue{
		id: HookFailedId,
		mdMsg: `
# Post-init hook failed!

The template was copied successfully, but its post_init script exited with
an error. The scaffolded files are left in place.

## Things you can try:
- Re-run the hook manually from the output directory
- Skip hooks entirely:
~~~
$ utemplate init <template> --project-name myapp --no-hooks
~~~`,
	}

	catalog = map[Id]*Issue{
		TemplateNotFoundId:      templateNotFoundIssue,
		DestinationExistsId:     destinationExistsIssue,
		GitignoreMissingId:      gitignoreMissingIssue,
		ComposeEngineNotFoundId: composeEngineNotFoundIssue,
		InvalidProjectNameId:    invalidProjectNameIssue,
		ConfigLoadFailedId:      configLoadFailedIssue,
		HookFailedId:            hookFailedIssue,
	}
)

// Get returns the catalog entry for id, or nil if none exists.
func Get(id Id) *Issue {
	return catalog[id]
}

// Ids returns all catalog ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(catalog)
	slices.Sort(ids)
	return ids
}
