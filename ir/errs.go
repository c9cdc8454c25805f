package ir

import "fmt"

// TypeError reports a node whose Type is outside the closed Type enumeration.
// It is raised at the point the offending node is reached.
type TypeError struct {
	Path string
	Type Type
}

func (e *TypeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("type error at %s: unsupported node type %d", e.Path, int(e.Type))
	}
	return fmt.Sprintf("type error: unsupported node type %d", int(e.Type))
}

// ConvertError reports a Go value that cannot be represented as a Node.
type ConvertError struct {
	Path    string
	Message string
}

func (e *ConvertError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("convert error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("convert error: %s", e.Message)
}
