package gen

import (
	"errors"
	"go/parser"
	"maps"
	"slices"
	"testing"

	"kr.dev/diff"

	"github.com/indexsupply/inkwrap/metadata"
	"github.com/indexsupply/inkwrap/tc"
)

func primType(id uint32, p metadata.Prim) *metadata.Type {
	return &metadata.Type{ID: id, Kind: metadata.PrimitiveKind, Prim: p}
}

func one(name string, index uint8, id uint32) metadata.Variant {
	return metadata.Variant{
		Name:   name,
		Index:  index,
		Fields: metadata.Fields{Names: []string{""}, Types: []uint32{id}},
	}
}

func testRefs(t *testing.T) *refs {
	t.Helper()
	types := []*metadata.Type{
		primType(0, metadata.U32),
		primType(1, metadata.U8),
		{ID: 2, Kind: metadata.ArrayKind, Len: 32, Elem: 1},
		{ID: 3, Kind: metadata.ArrayKind, Len: 3, Elem: 0},
		{ID: 4, Kind: metadata.SequenceKind, Elem: 0},
		{ID: 5, Kind: metadata.SequenceKind, Elem: 1},
		{ID: 6, Kind: metadata.TupleKind, Elems: []uint32{0, 1}},
		{ID: 7, Kind: metadata.TupleKind},
		{ID: 8, Kind: metadata.CompactKind, Elem: 0},
		{
			ID:       9,
			Path:     []string{"Option"},
			Kind:     metadata.VariantKind,
			Variants: []metadata.Variant{{Name: "None"}, one("Some", 1, 0)},
		},
		{
			ID:       10,
			Path:     []string{"Option"},
			Kind:     metadata.VariantKind,
			Variants: []metadata.Variant{{Name: "None"}, one("Some", 1, 11)},
		},
		primType(11, metadata.Bool),
		{
			ID:       12,
			Path:     []string{"Result"},
			Kind:     metadata.VariantKind,
			Variants: []metadata.Variant{one("Ok", 0, 0), one("Err", 1, 13)},
		},
		{
			ID:       13,
			Path:     []string{"ink_primitives", "LangError"},
			Kind:     metadata.VariantKind,
			Variants: []metadata.Variant{{Name: "CouldNotReadInput", Index: 1}},
		},
		{
			ID:   14,
			Path: []string{"c", "Foo"},
			Kind: metadata.CompositeKind,
		},
		{ID: 15, Kind: metadata.BitSequenceKind},
		{ID: 16, Kind: metadata.TupleKind, Elems: []uint32{0, 0, 0, 0, 0, 0, 0}},
		primType(17, metadata.U256),
		{ID: 18, Kind: metadata.CompactKind, Elem: 17},
		{ID: 19, Kind: metadata.CompactKind, Elem: 20},
		primType(20, metadata.U128),
		{ID: 21, Kind: metadata.SequenceKind, Elem: 14},
		{
			ID:   22,
			Path: []string{"ink_primitives", "types", "AccountId"},
			Kind: metadata.CompositeKind,
			Fields: metadata.Fields{
				Names: []string{""},
				Types: []uint32{2},
			},
		},
	}
	reg, err := metadata.NewRegistry(types)
	tc.NoErr(t, err)
	return &refs{reg: reg, names: map[uint32]string{14: "Foo"}}
}

func TestTypeRef(t *testing.T) {
	r := testRefs(t)
	cases := []struct {
		id   uint32
		want string
	}{
		{0, "uint32"},
		{2, "[32]uint8"},
		{3, "[3]uint32"},
		{4, "[]uint32"},
		{5, "[]uint8"},
		{6, "scale.Tuple2[uint32, uint8]"},
		{7, "scale.Unit"},
		{8, "scale.Compact[uint32]"},
		{9, "scale.Option[uint32]"},
		{10, "scale.Option[bool]"},
		{12, "scale.Result[uint32, ink.LangError]"},
		{14, "Foo"},
		{19, "scale.Compact[scale.U128]"},
		{21, "[]Foo"},
		{22, "ink.AccountID"},
	}
	for _, c := range cases {
		got, err := r.typeRef(c.id)
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, got, c.want)
		if _, err := parser.ParseExpr(got); err != nil {
			t.Errorf("parsing %q: %s", got, err)
		}
	}
}

func TestEncoderDecoder(t *testing.T) {
	r := testRefs(t)
	cases := []struct {
		id  uint32
		enc string
		dec string
	}{
		{
			0,
			"scale.EncodeU32",
			"scale.DecodeU32",
		},
		{
			2,
			"func(e *scale.Encoder, v [32]uint8) { e.Write(v[:]) }",
			"func(d *scale.Decoder) (v [32]uint8) { d.ReadInto(v[:]); return v }",
		},
		{
			3,
			"func(e *scale.Encoder, v [3]uint32) { scale.EncodeArray(e, scale.EncodeU32, v[:]) }",
			"func(d *scale.Decoder) (v [3]uint32) { scale.DecodeArray(d, scale.DecodeU32, v[:]); return v }",
		},
		{
			4,
			"scale.EncodeSeq(scale.EncodeU32)",
			"scale.DecodeSeq(scale.DecodeU32)",
		},
		{
			5,
			"scale.EncodeBytes",
			"scale.DecodeBytes",
		},
		{
			6,
			"scale.EncodeTuple2(scale.EncodeU32, scale.EncodeU8)",
			"scale.DecodeTuple2(scale.DecodeU32, scale.DecodeU8)",
		},
		{
			7,
			"scale.EncodeUnit",
			"scale.DecodeUnit",
		},
		{
			8,
			"scale.EncodeCompact[uint32]",
			"scale.DecodeCompact[uint32]",
		},
		{
			9,
			"scale.EncodeOption(scale.EncodeU32)",
			"scale.DecodeOption(scale.DecodeU32)",
		},
		{
			10,
			"scale.EncodeOptionBool",
			"scale.DecodeOptionBool",
		},
		{
			12,
			"scale.EncodeResult(scale.EncodeU32, ink.EncodeLangError)",
			"scale.DecodeResult(scale.DecodeU32, ink.DecodeLangError)",
		},
		{
			19,
			"scale.EncodeCompactU128",
			"scale.DecodeCompactU128",
		},
		{
			21,
			"scale.EncodeSeq(encodeFoo)",
			"scale.DecodeSeq(decodeFoo)",
		},
		{
			22,
			"ink.EncodeAccountID",
			"ink.DecodeAccountID",
		},
	}
	for _, c := range cases {
		enc, err := r.encoder(c.id)
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, enc, c.enc)
		dec, err := r.decoder(c.id)
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, dec, c.dec)
		for _, s := range []string{enc, dec} {
			if _, err := parser.ParseExpr(s); err != nil {
				t.Errorf("parsing %q: %s", s, err)
			}
		}
	}
}

func TestUnsupported(t *testing.T) {
	r := testRefs(t)
	for _, id := range []uint32{15, 16, 18} {
		_, err := r.typeRef(id)
		var uerr *metadata.UnsupportedError
		if !errors.As(err, &uerr) {
			t.Errorf("type %d: want UnsupportedError got: %v", id, err)
			continue
		}
		diff.Test(t, t.Errorf, uerr.ID, id)

		_, err = r.encoder(id)
		if !errors.As(err, &uerr) {
			t.Errorf("type %d encoder: want UnsupportedError got: %v", id, err)
		}
		_, err = r.decoder(id)
		if !errors.As(err, &uerr) {
			t.Errorf("type %d decoder: want UnsupportedError got: %v", id, err)
		}
	}
}

func option(id, some uint32) *metadata.Type {
	return &metadata.Type{
		ID:       id,
		Path:     []string{"Option"},
		Kind:     metadata.VariantKind,
		Variants: []metadata.Variant{{Name: "None"}, one("Some", 1, some)},
	}
}

func composite(id uint32, name string, fields map[string]uint32) *metadata.Type {
	t := &metadata.Type{
		ID:     id,
		Path:   []string{"c", name},
		Kind:   metadata.CompositeKind,
		Fields: metadata.Fields{Named: true},
	}
	for _, n := range slices.Sorted(maps.Keys(fields)) {
		t.Fields.Names = append(t.Fields.Names, n)
		t.Fields.Types = append(t.Fields.Types, fields[n])
	}
	return t
}

func cycleRefs(t *testing.T) *refs {
	t.Helper()
	reg, err := metadata.NewRegistry([]*metadata.Type{
		primType(0, metadata.U32),
		composite(1, "Node", map[string]uint32{"value": 0, "next": 2}),
		option(2, 1),
		composite(3, "A", map[string]uint32{"b": 4}),
		composite(4, "B", map[string]uint32{"a": 5, "bs": 6}),
		option(5, 3),
		{ID: 6, Kind: metadata.SequenceKind, Elem: 4},
		composite(7, "Leaf", map[string]uint32{"x": 0}),
		composite(8, "Holder", map[string]uint32{"leaf": 7, "pair": 9, "arr": 10}),
		{ID: 9, Kind: metadata.TupleKind, Elems: []uint32{7, 7}},
		{ID: 10, Kind: metadata.ArrayKind, Len: 2, Elem: 11},
		composite(11, "Ring", map[string]uint32{"ring": 12}),
		{ID: 12, Kind: metadata.ArrayKind, Len: 0, Elem: 11},
	})
	tc.NoErr(t, err)
	r := &refs{reg: reg, names: map[uint32]string{
		1:  "Node",
		3:  "A",
		4:  "B",
		7:  "Leaf",
		8:  "Holder",
		11: "Ring",
	}}
	var ids []uint32
	for _, typ := range reg.Types() {
		ids = append(ids, typ.ID)
	}
	r.breakCycles(ids)
	return r
}

func TestBreakCycles(t *testing.T) {
	r := cycleRefs(t)
	diff.Test(t, t.Errorf, r.back, map[uint32]map[uint32]bool{
		1:  {1: true},
		4:  {3: true},
		11: {11: true},
	})
	cases := []struct {
		within uint32
		id     uint32
		want   string
	}{
		{1, 2, "scale.Option[*Node]"},
		{3, 4, "B"},
		{4, 5, "scale.Option[*A]"},
		{4, 6, "[]B"},
		{8, 9, "scale.Tuple2[Leaf, Leaf]"},
		{8, 10, "[2]Ring"},
		{11, 12, "[0]*Ring"},
	}
	for _, c := range cases {
		got, err := r.within(c.within).typeRef(c.id)
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, got, c.want)
	}

	// references outside of a declaration stay values
	got, err := r.typeRef(2)
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, got, "scale.Option[Node]")
}

func TestPointerCodec(t *testing.T) {
	r := cycleRefs(t).within(1)
	enc, err := r.encoder(2)
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, enc, "scale.EncodeOption(func(e *scale.Encoder, v *Node) { encodeNode(e, *v) })")
	dec, err := r.decoder(2)
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, dec, "scale.DecodeOption(func(d *scale.Decoder) *Node { v := decodeNode(d); return &v })")
	for _, s := range []string{enc, dec} {
		if _, err := parser.ParseExpr(s); err != nil {
			t.Errorf("parsing %q: %s", s, err)
		}
	}

	r = cycleRefs(t).within(11)
	enc, err = r.encoder(12)
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, enc, "func(e *scale.Encoder, v [0]*Ring) { scale.EncodeArray(e, func(e *scale.Encoder, v *Ring) { encodeRing(e, *v) }, v[:]) }")
}
