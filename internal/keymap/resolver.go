package keymap

import "slices"

// Resolver maps Bubble Tea key strings to actions.
type Resolver struct {
	actions map[string]Action // key -> action
	keys    map[Action][]string
}

// NewResolver creates a resolver from bindings. When two bindings claim a
// key, the later one wins and the key is no longer listed for the earlier
// action.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bind(key, b.Action)
		}
	}
	return r
}

func (r *Resolver) bind(key string, action Action) {
	if prev, ok := r.actions[key]; ok {
		if prev == action {
			return
		}
		r.keys[prev] = slices.DeleteFunc(r.keys[prev], func(k string) bool { return k == key })
		if len(r.keys[prev]) == 0 {
			delete(r.keys, prev)
		}
	}
	r.actions[key] = action
	r.keys[action] = append(r.keys[action], key)
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// Lookup is Resolve with an explicit found flag.
func (r *Resolver) Lookup(key string) (Action, bool) {
	a, ok := r.actions[key]
	return a, ok
}

// KeysFor returns the keys that resolve to action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}
