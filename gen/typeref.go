package gen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/indexsupply/inkwrap/metadata"
	"github.com/indexsupply/inkwrap/scale"
)

// refs renders registry types as Go source: the type
// itself, an encode func expression and a decode func
// expression. Custom types are referred to by the names
// chosen in newPlan.
type refs struct {
	reg   *metadata.Registry
	names map[uint32]string

	// back[a][b] is set when composite a holds
	// composite b by value and b leads back to a.
	back map[uint32]map[uint32]bool
	// composites rendered as pointers
	ptrs map[uint32]bool
}

// embedded returns the custom composites that the
// fields of composite id hold by value. Option, Result,
// tuples and arrays are structs or arrays in Go and
// hold their elements by value. Slices and variants
// (interfaces) don't.
func (r *refs) embedded(id uint32) []uint32 {
	var (
		res  []uint32
		seen = map[uint32]bool{}
		walk func(id uint32)
	)
	walk = func(id uint32) {
		if seen[id] {
			return
		}
		seen[id] = true
		t := r.reg.MustResolve(id)
		switch t.Class() {
		case metadata.Reserved:
			return
		case metadata.Custom:
			if t.Kind == metadata.CompositeKind {
				res = append(res, id)
			}
			return
		case metadata.Builtin:
			args, err := builtin(t)
			if err != nil {
				return
			}
			for _, a := range args {
				walk(a)
			}
			return
		}
		switch t.Kind {
		case metadata.TupleKind:
			for _, e := range t.Elems {
				walk(e)
			}
		case metadata.ArrayKind:
			walk(t.Elem)
		}
	}
	for _, f := range r.reg.MustResolve(id).Fields.Types {
		walk(f)
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// breakCycles finds the references that would make a
// composite contain itself by value, which Go rejects
// (eg Node{Next Option[Node]}). Removing the back edges
// of a depth first search leaves the graph acyclic.
func (r *refs) breakCycles(ids []uint32) {
	const (
		unvisited = iota
		active
		done
	)
	var (
		state = map[uint32]int{}
		visit func(id uint32)
	)
	r.back = map[uint32]map[uint32]bool{}
	visit = func(id uint32) {
		state[id] = active
		for _, to := range r.embedded(id) {
			switch state[to] {
			case active:
				if r.back[id] == nil {
					r.back[id] = map[uint32]bool{}
				}
				r.back[id][to] = true
			case unvisited:
				visit(to)
			}
		}
		state[id] = done
	}
	for _, id := range ids {
		t := r.reg.MustResolve(id)
		if t.Class() == metadata.Custom && t.Kind == metadata.CompositeKind && state[id] == unvisited {
			visit(id)
		}
	}
}

// within returns refs for the fields of composite id.
// Back edges from id are rendered as pointers.
func (r *refs) within(id uint32) *refs {
	c := *r
	c.ptrs = r.back[id]
	return &c
}

func unsupported(t *metadata.Type, format string, args ...any) error {
	return &metadata.UnsupportedError{
		ID:     t.ID,
		Path:   t.PathString(),
		Reason: fmt.Sprintf(format, args...),
	}
}

type prim struct {
	gotype string
	codec  string
}

var prims = map[metadata.Prim]prim{
	metadata.Bool: {"bool", "Bool"},
	metadata.Char: {"rune", "Char"},
	metadata.Str:  {"string", "String"},
	metadata.U8:   {"uint8", "U8"},
	metadata.U16:  {"uint16", "U16"},
	metadata.U32:  {"uint32", "U32"},
	metadata.U64:  {"uint64", "U64"},
	metadata.U128: {"scale.U128", "U128"},
	metadata.U256: {"scale.U256", "U256"},
	metadata.I8:   {"int8", "I8"},
	metadata.I16:  {"int16", "I16"},
	metadata.I32:  {"int32", "I32"},
	metadata.I64:  {"int64", "I64"},
	metadata.I128: {"scale.I128", "I128"},
	metadata.I256: {"scale.I256", "I256"},
}

type reserved struct {
	gotype string
	codec  string
}

var reservedTypes = map[string]reserved{
	"AccountId": {"ink.AccountID", "AccountID"},
	"Hash":      {"ink.Hash", "Hash"},
	"LangError": {"ink.LangError", "LangError"},
}

func isU8(t *metadata.Type) bool {
	return t.Kind == metadata.PrimitiveKind && t.Prim == metadata.U8
}

func isBool(t *metadata.Type) bool {
	return t.Kind == metadata.PrimitiveKind && t.Prim == metadata.Bool
}

// variantField returns the type of the single
// field of the variant named name.
func variantField(t *metadata.Type, name string) (uint32, error) {
	for _, v := range t.Variants {
		if v.Name == name {
			if v.Fields.Len() != 1 {
				return 0, unsupported(t, "%s variant has %d fields", name, v.Fields.Len())
			}
			return v.Fields.Types[0], nil
		}
	}
	return 0, unsupported(t, "missing %s variant", name)
}

// builtin returns the ids of the type arguments
// of Option (1) and Result (2).
func builtin(t *metadata.Type) ([]uint32, error) {
	if t.Kind != metadata.VariantKind {
		return nil, unsupported(t, "builtin %s is not a variant", t.Name())
	}
	switch t.Name() {
	case "Option":
		some, err := variantField(t, "Some")
		if err != nil {
			return nil, err
		}
		return []uint32{some}, nil
	case "Result":
		ok, err := variantField(t, "Ok")
		if err != nil {
			return nil, err
		}
		e, err := variantField(t, "Err")
		if err != nil {
			return nil, err
		}
		return []uint32{ok, e}, nil
	default:
		return nil, unsupported(t, "unknown builtin type %s", t.Name())
	}
}

// typeRef renders the Go type of id
func (r *refs) typeRef(id uint32) (string, error) {
	t := r.reg.MustResolve(id)
	switch t.Class() {
	case metadata.Reserved:
		rt, ok := reservedTypes[t.Name()]
		if !ok {
			return "", unsupported(t, "unknown ink_primitives type")
		}
		return rt.gotype, nil
	case metadata.Builtin:
		args, err := builtin(t)
		if err != nil {
			return "", err
		}
		gts, err := r.typeRefs(args)
		if err != nil {
			return "", err
		}
		if len(gts) == 1 {
			return fmt.Sprintf("scale.Option[%s]", gts[0]), nil
		}
		return fmt.Sprintf("scale.Result[%s, %s]", gts[0], gts[1]), nil
	case metadata.Custom:
		name, ok := r.names[id]
		if !ok {
			return "", unsupported(t, "no declaration")
		}
		if r.ptrs[id] {
			return "*" + name, nil
		}
		return name, nil
	}
	switch t.Kind {
	case metadata.PrimitiveKind:
		return prims[t.Prim].gotype, nil
	case metadata.TupleKind:
		if len(t.Elems) == 0 {
			return "scale.Unit", nil
		}
		if len(t.Elems) > scale.MaxTuple {
			return "", unsupported(t, "tuple with %d elements", len(t.Elems))
		}
		gts, err := r.typeRefs(t.Elems)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("scale.Tuple%d[%s]", len(gts), strings.Join(gts, ", ")), nil
	case metadata.ArrayKind:
		elem, err := r.typeRef(t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d]%s", t.Len, elem), nil
	case metadata.SequenceKind:
		elem, err := r.typeRef(t.Elem)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case metadata.CompactKind:
		inner, err := r.compactInner(t)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("scale.Compact[%s]", inner.gotype), nil
	default:
		return "", unsupported(t, "%s types are not supported", t.Kind)
	}
}

func (r *refs) typeRefs(ids []uint32) ([]string, error) {
	res := make([]string, len(ids))
	for i, id := range ids {
		var err error
		res[i], err = r.typeRef(id)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (r *refs) compactInner(t *metadata.Type) (prim, error) {
	inner := r.reg.MustResolve(t.Elem)
	if inner.Kind != metadata.PrimitiveKind {
		return prim{}, unsupported(t, "compact of %s", inner.Kind)
	}
	switch inner.Prim {
	case metadata.U8, metadata.U16, metadata.U32, metadata.U64, metadata.U128:
		return prims[inner.Prim], nil
	default:
		return prim{}, unsupported(t, "compact of %s", inner.Prim)
	}
}

// encoder renders an expression of type
// func(*scale.Encoder, T) for the Go type of id.
func (r *refs) encoder(id uint32) (string, error) {
	t := r.reg.MustResolve(id)
	switch t.Class() {
	case metadata.Reserved:
		rt, ok := reservedTypes[t.Name()]
		if !ok {
			return "", unsupported(t, "unknown ink_primitives type")
		}
		return "ink.Encode" + rt.codec, nil
	case metadata.Builtin:
		args, err := builtin(t)
		if err != nil {
			return "", err
		}
		if len(args) == 1 {
			if isBool(r.reg.MustResolve(args[0])) {
				return "scale.EncodeOptionBool", nil
			}
			enc, err := r.encoder(args[0])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("scale.EncodeOption(%s)", enc), nil
		}
		encs, err := r.encoders(args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("scale.EncodeResult(%s)", strings.Join(encs, ", ")), nil
	case metadata.Custom:
		name, ok := r.names[id]
		if !ok {
			return "", unsupported(t, "no declaration")
		}
		if r.ptrs[id] {
			return fmt.Sprintf("func(e *scale.Encoder, v *%s) { encode%s(e, *v) }", name, name), nil
		}
		return "encode" + name, nil
	}
	switch t.Kind {
	case metadata.PrimitiveKind:
		return "scale.Encode" + prims[t.Prim].codec, nil
	case metadata.TupleKind:
		if len(t.Elems) == 0 {
			return "scale.EncodeUnit", nil
		}
		if len(t.Elems) > scale.MaxTuple {
			return "", unsupported(t, "tuple with %d elements", len(t.Elems))
		}
		encs, err := r.encoders(t.Elems)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("scale.EncodeTuple%d(%s)", len(encs), strings.Join(encs, ", ")), nil
	case metadata.ArrayKind:
		gt, err := r.typeRef(id)
		if err != nil {
			return "", err
		}
		if isU8(r.reg.MustResolve(t.Elem)) {
			return fmt.Sprintf("func(e *scale.Encoder, v %s) { e.Write(v[:]) }", gt), nil
		}
		enc, err := r.encoder(t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("func(e *scale.Encoder, v %s) { scale.EncodeArray(e, %s, v[:]) }", gt, enc), nil
	case metadata.SequenceKind:
		if isU8(r.reg.MustResolve(t.Elem)) {
			return "scale.EncodeBytes", nil
		}
		enc, err := r.encoder(t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("scale.EncodeSeq(%s)", enc), nil
	case metadata.CompactKind:
		inner, err := r.compactInner(t)
		if err != nil {
			return "", err
		}
		if inner.codec == "U128" {
			return "scale.EncodeCompactU128", nil
		}
		return fmt.Sprintf("scale.EncodeCompact[%s]", inner.gotype), nil
	default:
		return "", unsupported(t, "%s types are not supported", t.Kind)
	}
}

func (r *refs) encoders(ids []uint32) ([]string, error) {
	res := make([]string, len(ids))
	for i, id := range ids {
		var err error
		res[i], err = r.encoder(id)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// decoder renders an expression of type
// func(*scale.Decoder) T for the Go type of id.
func (r *refs) decoder(id uint32) (string, error) {
	t := r.reg.MustResolve(id)
	switch t.Class() {
	case metadata.Reserved:
		rt, ok := reservedTypes[t.Name()]
		if !ok {
			return "", unsupported(t, "unknown ink_primitives type")
		}
		return "ink.Decode" + rt.codec, nil
	case metadata.Builtin:
		args, err := builtin(t)
		if err != nil {
			return "", err
		}
		if len(args) == 1 {
			if isBool(r.reg.MustResolve(args[0])) {
				return "scale.DecodeOptionBool", nil
			}
			dec, err := r.decoder(args[0])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("scale.DecodeOption(%s)", dec), nil
		}
		decs, err := r.decoders(args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("scale.DecodeResult(%s)", strings.Join(decs, ", ")), nil
	case metadata.Custom:
		name, ok := r.names[id]
		if !ok {
			return "", unsupported(t, "no declaration")
		}
		if r.ptrs[id] {
			return fmt.Sprintf("func(d *scale.Decoder) *%s { v := decode%s(d); return &v }", name, name), nil
		}
		return "decode" + name, nil
	}
	switch t.Kind {
	case metadata.PrimitiveKind:
		return "scale.Decode" + prims[t.Prim].codec, nil
	case metadata.TupleKind:
		if len(t.Elems) == 0 {
			return "scale.DecodeUnit", nil
		}
		if len(t.Elems) > scale.MaxTuple {
			return "", unsupported(t, "tuple with %d elements", len(t.Elems))
		}
		decs, err := r.decoders(t.Elems)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("scale.DecodeTuple%d(%s)", len(decs), strings.Join(decs, ", ")), nil
	case metadata.ArrayKind:
		gt, err := r.typeRef(id)
		if err != nil {
			return "", err
		}
		if isU8(r.reg.MustResolve(t.Elem)) {
			return fmt.Sprintf("func(d *scale.Decoder) (v %s) { d.ReadInto(v[:]); return v }", gt), nil
		}
		dec, err := r.decoder(t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("func(d *scale.Decoder) (v %s) { scale.DecodeArray(d, %s, v[:]); return v }", gt, dec), nil
	case metadata.SequenceKind:
		if isU8(r.reg.MustResolve(t.Elem)) {
			return "scale.DecodeBytes", nil
		}
		dec, err := r.decoder(t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("scale.DecodeSeq(%s)", dec), nil
	case metadata.CompactKind:
		inner, err := r.compactInner(t)
		if err != nil {
			return "", err
		}
		if inner.codec == "U128" {
			return "scale.DecodeCompactU128", nil
		}
		return fmt.Sprintf("scale.DecodeCompact[%s]", inner.gotype), nil
	default:
		return "", unsupported(t, "%s types are not supported", t.Kind)
	}
}

func (r *refs) decoders(ids []uint32) ([]string, error) {
	res := make([]string, len(ids))
	for i, id := range ids {
		var err error
		res[i], err = r.decoder(id)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
