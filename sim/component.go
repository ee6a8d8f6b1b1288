package sim

// Named is implemented by anything that reports a stable name, such as the
// tracker or the monitor.
type Named interface {
	Name() string
}

// ComponentBase gives a handler a name and a set of hooks.
type ComponentBase struct {
	HookableBase
	name string
}

// Name reports the name the component was created with.
func (c *ComponentBase) Name() string {
	return c.name
}
