// Package tools provides a metadata-driven registry for MCP tool definitions.
// Tools are defined declaratively and registered through type-safe handlers.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a registry client method with a matching Args type.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "search_content")
	Name string

	// Method is the client method name (e.g., "SearchContent")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (search, read)
	Category string

	// ReadOnly indicates the tool doesn't modify Confluence state
	ReadOnly bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
