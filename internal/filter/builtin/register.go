package builtin

import "grift/internal/filter"

// RegisterAll adds all built-in filters to the registry.
func RegisterAll(r *filter.Registry) {
	r.Register(&Count{})
	r.Register(&First{})
	r.Register(&Grep{})
	r.Register(&Head{})
	r.Register(&Last{})
	r.Register(&Lower{})
	r.Register(&Number{})
	r.Register(&Reverse{})
	r.Register(&Sort{})
	r.Register(&Tail{})
	r.Register(&Trim{})
	r.Register(&Uniq{})
	r.Register(&Upper{})
}
