package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldInput = "input"

	// Rendering fields.
	FieldComponent = "component"
	FieldKind      = "kind"
	FieldEvents    = "events"
	FieldOffset    = "offset"
	FieldFormat    = "format"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
