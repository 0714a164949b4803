package metadata

import (
	"fmt"
	"slices"
)

// Registry maps type ids to types.
// It is immutable once built.
type Registry struct {
	types map[uint32]*Type
	ids   []uint32
}

// NewRegistry indexes types and checks that
// every id they reference is present and that
// no composite mixes named and unnamed fields.
func NewRegistry(types []*Type) (*Registry, error) {
	r := &Registry{types: make(map[uint32]*Type, len(types))}
	for _, t := range types {
		if _, ok := r.types[t.ID]; ok {
			return nil, fmt.Errorf("duplicate type id %d", t.ID)
		}
		r.types[t.ID] = t
		r.ids = append(r.ids, t.ID)
	}
	slices.Sort(r.ids)
	for _, id := range r.ids {
		t := r.types[id]
		refs := t.refs()
		for _, p := range t.Params {
			refs = append(refs, p.Type)
		}
		for _, ref := range refs {
			if _, ok := r.types[ref]; !ok {
				return nil, &UnresolvedError{
					ID:   ref,
					From: fmt.Sprintf("type %d (%s)", t.ID, t.PathString()),
				}
			}
		}
		if err := checkFields(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func checkFields(t *Type) error {
	switch t.Kind {
	case CompositeKind:
		if t.Fields.mixed() {
			return &MixedFieldsError{ID: t.ID, Path: t.PathString()}
		}
	case VariantKind:
		seen := map[uint8]bool{}
		for _, v := range t.Variants {
			if v.Fields.mixed() {
				return &MixedFieldsError{ID: t.ID, Path: t.PathString(), Variant: v.Name}
			}
			if seen[v.Index] {
				return fmt.Errorf("type %d (%s): duplicate variant index %d", t.ID, t.PathString(), v.Index)
			}
			seen[v.Index] = true
		}
	}
	return nil
}

func (f Fields) mixed() bool {
	var named int
	for _, n := range f.Names {
		if n != "" {
			named++
		}
	}
	return named != 0 && named != len(f.Names)
}

func (r *Registry) Resolve(id uint32) (*Type, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, &UnresolvedError{ID: id}
	}
	return t, nil
}

// MustResolve panics when id is missing.
// Registries built by [Parse] have every
// referenced id, so generated code walkers
// use this instead of threading errors.
func (r *Registry) MustResolve(id uint32) *Type {
	t, err := r.Resolve(id)
	if err != nil {
		panic(err)
	}
	return t
}

// Types returns every type ordered by id
func (r *Registry) Types() []*Type {
	res := make([]*Type, len(r.ids))
	for i, id := range r.ids {
		res[i] = r.types[id]
	}
	return res
}

// Reachable returns the ids reachable from roots
// (including the roots) ordered by id.
func (r *Registry) Reachable(roots ...uint32) []uint32 {
	var (
		seen  = map[uint32]bool{}
		stack = slices.Clone(roots)
	)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		t, ok := r.types[id]
		if !ok {
			continue
		}
		seen[id] = true
		stack = append(stack, t.refs()...)
	}
	var res []uint32
	for id := range seen {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}
