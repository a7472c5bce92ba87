// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"

	"utemplate-cli/internal/issue"
	"utemplate-cli/internal/template"
)

// wrapScaffoldError maps well-known scaffolding failures to their issue
// cards before handing the error back to cobra. The card goes to stderr;
// the error itself still drives the nonzero exit.
func wrapScaffoldError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, template.ErrTemplateNotFound):
		renderIssue(os.Stderr, issue.TemplateNotFoundId)
	case errors.Is(err, template.ErrDestinationExists):
		renderIssue(os.Stderr, issue.DestinationExistsId)
	case errors.Is(err, template.ErrInvalidProjectName):
		renderIssue(os.Stderr, issue.InvalidProjectNameId)
	}

	var hookErr *template.HookExitError
	if errors.As(err, &hookErr) {
		renderIssue(os.Stderr, issue.HookFailedId)
		return &ExitError{Code: hookErr.ExitCode, Err: err}
	}

	return err
}
