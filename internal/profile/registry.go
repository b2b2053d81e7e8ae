package profile

// Registry holds all declared profiles for a single application instance,
// keyed by name. The conventional "main" profile is created implicitly so
// configuration can always extend it.
type Registry struct {
	profiles map[string]*Profile
	order    []string
}

// NewRegistry creates a Registry pre-populated with the default profile.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]*Profile)}
	r.Register(MainProfile)
	return r
}

// Register returns the profile for the given name, creating it on first use.
// Repeated calls against the same name accumulate configuration on the same
// profile rather than overwriting it.
func (r *Registry) Register(name string) *Profile {
	if p, ok := r.profiles[name]; ok {
		return p
	}
	p := newProfile(name)
	r.profiles[name] = p
	r.order = append(r.order, name)
	return p
}

// Len reports the number of registered profiles.
func (r *Registry) Len() int { return len(r.profiles) }

// Snapshot returns a defensive copy of all profiles in registration order.
// Planning runs against the snapshot, so configuration applied to the live
// registry afterwards cannot leak into an in-flight planning pass.
func (r *Registry) Snapshot() []*Profile {
	out := make([]*Profile, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.profiles[name].clone())
	}
	return out
}
