package linter

// Registry maps linter names to factories. It is built once at process
// start, passed by reference into the config resolver and the engine, and
// never modified during a run. Lookup is case-sensitive and exact.
type Registry struct {
	names     []string
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a linter factory under its canonical name. Registering the
// same name twice replaces the factory but keeps the original position.
func (r *Registry) Register(name string, f Factory) {
	if _, ok := r.factories[name]; !ok {
		r.names = append(r.names, name)
	}
	r.factories[name] = f
}

// Lookup returns the factory for name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns all registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
