package cli

import (
	"errors"
	"io/fs"

	"github.com/rambip/go-web-markdown/pkg/render"
)

// Exit codes for mdrender.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitRenderError indicates the document could not be rendered.
	ExitRenderError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeForError maps an error returned by command execution to a
// process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitIOError
	}

	var compErr *render.ComponentCreationError
	var tagErr *render.TagError
	if errors.As(err, &compErr) || errors.As(err, &tagErr) {
		return ExitRenderError
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) {
		return ExitInvalidUsage
	}

	return ExitRenderError
}

// usageError marks invalid flag combinations or arguments.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }
