package builtin

// Component names a UI component placed in a widget.
type Component string

// Renderer names a property setter implementation.
type Renderer string

// Contents placed by the bootstrap's inline plugins.
const (
	ContentLogo               Component = "Logo"
	ContentComponentsPane     Component = "ComponentsPane"
	ContentPagesPane          Component = "PagesPane"
	ContentEventBindDialog    Component = "EventBindDialog"
	ContentVariableBindDialog Component = "VariableBindDialog"
)
