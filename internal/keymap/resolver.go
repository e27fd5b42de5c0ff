package keymap

// Resolver maps key strings to actions.
type Resolver struct {
	byKey    map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings. A key bound in several
// contexts resolves to the last binding; per-action key lists stay
// duplicate-free.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		byKey:    make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	seen := make(map[Action]map[string]bool)
	for _, b := range bindings {
		if seen[b.Action] == nil {
			seen[b.Action] = make(map[string]bool)
		}
		for _, key := range b.Keys {
			r.byKey[key] = b.Action
			if !seen[b.Action][key] {
				seen[b.Action][key] = true
				r.byAction[b.Action] = append(r.byAction[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key]
}

// KeysFor returns the keys bound to an action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}
