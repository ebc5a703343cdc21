package host

import "context"

// InitFunc initializes a plugin against the host.
type InitFunc func(ctx context.Context, hc Context) error

// Plugin is a named unit contributing behavior or UI to the editor.
type Plugin struct {
	Name string
	Init InitFunc
}

// NewPlugin builds a plugin descriptor.
func NewPlugin(name string, init InitFunc) Plugin {
	return Plugin{Name: name, Init: init}
}

// WithName returns a copy of the plugin registered under name.
func (p Plugin) WithName(name string) Plugin {
	p.Name = name
	return p
}

// Validate checks the descriptor is registrable.
func (p Plugin) Validate() error {
	if p.Name == "" {
		return ErrEmptyPluginName
	}
	if p.Init == nil {
		return ErrNilInit
	}
	return nil
}

// Noop returns a plugin whose initializer does nothing.
func Noop(name string) Plugin {
	return NewPlugin(name, func(context.Context, Context) error { return nil })
}
