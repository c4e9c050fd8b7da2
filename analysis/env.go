package analysis

// Binding is one resolved name: its checked type and, when the binding's
// block was evaluated, its value. A binding with a nil Value was type
// checked but never evaluated.
type Binding struct {
	Type  Type
	Value Value
}

// Env is a lexical environment chain. The root env holds the session's
// cross-turn bindings; function application pushes child frames.
type Env struct {
	vars   map[string]Binding
	parent *Env
}

// NewEnv creates an environment with an optional parent.
func NewEnv(parent *Env) *Env {
	return &Env{vars: make(map[string]Binding), parent: parent}
}

// NewGlobalEnv creates a root environment seeded with session bindings.
func NewGlobalEnv(globals map[string]Binding) *Env {
	env := NewEnv(nil)
	for name, b := range globals {
		env.vars[name] = b
	}
	return env
}

// Define binds a name in this frame, shadowing any outer binding.
func (e *Env) Define(name string, b Binding) {
	e.vars[name] = b
}

// Lookup resolves a name through the chain.
func (e *Env) Lookup(name string) (Binding, bool) {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.vars[name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}
