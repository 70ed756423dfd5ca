package runtime

import "sort"

// Environment is an immutable mapping from identifier to value. Extending an
// environment allocates a single frame pointing at the old chain, so every
// extension shares structure with its ancestors and closures can hold a
// snapshot by keeping the pointer they were given. A nil *Environment is the
// empty environment.
type Environment struct {
	name   string
	value  Value
	parent *Environment
}

// EmptyEnvironment returns the environment with no bindings.
func EmptyEnvironment() *Environment {
	return nil
}

// Extend returns a new environment in which name maps to value. A prior
// binding for name is shadowed, not removed; the receiver is untouched.
func (e *Environment) Extend(name string, value Value) *Environment {
	return &Environment{name: name, value: value, parent: e}
}

// Find retrieves the innermost binding for name.
func (e *Environment) Find(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if env.name == name {
			return env.value, true
		}
	}
	return nil, false
}

// Snapshot returns the visible bindings (shadowed entries omitted).
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value)
	for env := e; env != nil; env = env.parent {
		if _, ok := out[env.name]; !ok {
			out[env.name] = env.value
		}
	}
	return out
}

// Keys returns the visible binding names in sorted order (useful for
// determinism in tests).
func (e *Environment) Keys() []string {
	seen := e.Snapshot()
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
