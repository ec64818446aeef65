package render

import "fmt"

// ComponentCreationError reports that a registered component constructor
// rejected its invocation. It aborts the render that raised it.
type ComponentCreationError struct {
	// Name is the component name as written in the source tag.
	Name string
	// Err is the constructor's own error.
	Err error
}

func (e *ComponentCreationError) Error() string {
	return fmt.Sprintf("component %q: %v", e.Name, e.Err)
}

func (e *ComponentCreationError) Unwrap() error { return e.Err }

// TagError reports a structural problem with a custom component tag:
// malformed attribute syntax, or a start tag never closed before the end
// of the document.
type TagError struct {
	// Name is the tag name, when one could be read.
	Name string
	// Offset is the byte offset of the offending tag in the source.
	Offset int
	// Reason describes what was wrong.
	Reason string
}

func (e *TagError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("tag at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("tag <%s> at offset %d: %s", e.Name, e.Offset, e.Reason)
}
