package types

import "fmt"

// =============================================================================
// ERROR KINDS
// =============================================================================
// Every failure aborts the run. The cmd package maps these to exit codes:
// UsageError -> 2, everything else -> 1.

// UsageError reports invalid command-line arguments.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// ParseError reports an input that is not well-formed XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError reports a document whose root element is not the legacy root.
type SchemaError struct {
	Path string
	Tag  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("expected <%s>, got <%s> in %s", LegacyRootTag, e.Tag, e.Path)
}

// IOError reports a filesystem failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
