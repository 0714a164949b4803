package metadata

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goccy/go-json"
)

type jsonField struct {
	Name     string   `json:"name"`
	Type     uint32   `json:"type"`
	TypeName string   `json:"typeName"`
	Docs     []string `json:"docs"`
}

type jsonVariant struct {
	Name   string      `json:"name"`
	Index  uint8       `json:"index"`
	Fields []jsonField `json:"fields"`
	Docs   []string    `json:"docs"`
}

type jsonDef struct {
	Primitive *string   `json:"primitive"`
	Tuple     *[]uint32 `json:"tuple"`
	Array     *struct {
		Len  uint32 `json:"len"`
		Type uint32 `json:"type"`
	} `json:"array"`
	Sequence *struct {
		Type uint32 `json:"type"`
	} `json:"sequence"`
	Compact *struct {
		Type uint32 `json:"type"`
	} `json:"compact"`
	Composite *struct {
		Fields []jsonField `json:"fields"`
	} `json:"composite"`
	Variant *struct {
		Variants []jsonVariant `json:"variants"`
	} `json:"variant"`
	BitSequence *struct {
		BitStoreType uint32 `json:"bit_store_type"`
		BitOrderType uint32 `json:"bit_order_type"`
	} `json:"bitsequence"`
}

type jsonType struct {
	ID   uint32 `json:"id"`
	Type struct {
		Path   []string `json:"path"`
		Params []struct {
			Name string  `json:"name"`
			Type *uint32 `json:"type"`
		} `json:"params"`
		Def  jsonDef  `json:"def"`
		Docs []string `json:"docs"`
	} `json:"type"`
}

type jsonTypeRef struct {
	Type        uint32   `json:"type"`
	DisplayName []string `json:"displayName"`
}

type jsonEntry struct {
	Label      string       `json:"label"`
	Selector   string       `json:"selector"`
	Mutates    bool         `json:"mutates"`
	Payable    bool         `json:"payable"`
	Default    bool         `json:"default"`
	Docs       []string     `json:"docs"`
	ReturnType *jsonTypeRef `json:"returnType"`
	Args       []struct {
		Label string      `json:"label"`
		Type  jsonTypeRef `json:"type"`
	} `json:"args"`
}

type jsonEvent struct {
	Label string   `json:"label"`
	Docs  []string `json:"docs"`
	Args  []struct {
		Label   string      `json:"label"`
		Type    jsonTypeRef `json:"type"`
		Indexed bool        `json:"indexed"`
		Docs    []string    `json:"docs"`
	} `json:"args"`
}

type jsonMetadata struct {
	Version json.RawMessage `json:"version"`
	Source  struct {
		Hash     string `json:"hash"`
		Language string `json:"language"`
	} `json:"source"`
	Contract struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"contract"`
	Types []jsonType `json:"types"`
	Spec  struct {
		Constructors []jsonEntry `json:"constructors"`
		Messages     []jsonEntry `json:"messages"`
		Events       []jsonEvent `json:"events"`
	} `json:"spec"`
}

// ParseFile reads the metadata file at path and calls [Parse]
func ParseFile(path string) (*Contract, error) {
	js, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}
	return Parse(js)
}

// Parse decodes ink! v4 metadata. The result has
// every referenced type id resolved, fields are
// never mixed, selectors are 4 bytes and the code
// hash is 32 bytes.
func Parse(js []byte) (*Contract, error) {
	var m jsonMetadata
	if err := json.Unmarshal(js, &m); err != nil {
		return nil, fmt.Errorf("decoding metadata json: %w", err)
	}
	if v := strings.Trim(string(m.Version), `"`); v != "" && v != "4" {
		return nil, fmt.Errorf("metadata version %s: only version 4 is supported", v)
	}

	c := &Contract{
		Name:     m.Contract.Name,
		Version:  m.Contract.Version,
		Language: m.Source.Language,
	}
	h, err := hexutil.Decode(m.Source.Hash)
	if err != nil {
		return nil, fmt.Errorf("decoding source hash: %w", err)
	}
	if len(h) != len(c.CodeHash) {
		return nil, fmt.Errorf("source hash has %d bytes, want 32", len(h))
	}
	copy(c.CodeHash[:], h)

	types := make([]*Type, len(m.Types))
	for i := range m.Types {
		types[i], err = newType(m.Types[i])
		if err != nil {
			return nil, err
		}
	}
	c.Registry, err = NewRegistry(types)
	if err != nil {
		return nil, err
	}

	for _, j := range m.Spec.Constructors {
		e, err := newEntryPoint(c.Registry, j, true)
		if err != nil {
			return nil, err
		}
		c.Constructors = append(c.Constructors, e)
	}
	for _, j := range m.Spec.Messages {
		e, err := newEntryPoint(c.Registry, j, false)
		if err != nil {
			return nil, err
		}
		c.Messages = append(c.Messages, e)
	}
	if len(c.Constructors) == 0 {
		return nil, errors.New("metadata has no constructors")
	}
	for _, j := range m.Spec.Events {
		ev := Event{Label: j.Label, Docs: j.Docs}
		for _, a := range j.Args {
			if _, err := c.Registry.Resolve(a.Type.Type); err != nil {
				return nil, &UnresolvedError{ID: a.Type.Type, From: "event " + j.Label}
			}
			ev.Args = append(ev.Args, EventArg{
				Name:    a.Label,
				Type:    a.Type.Type,
				Indexed: a.Indexed,
				Docs:    a.Docs,
			})
		}
		c.Events = append(c.Events, ev)
	}
	if len(c.Events) > 256 {
		return nil, fmt.Errorf("%d events: at most 256 are supported", len(c.Events))
	}
	return c, nil
}

func newFields(jfs []jsonField) Fields {
	var f Fields
	for _, jf := range jfs {
		f.Names = append(f.Names, jf.Name)
		f.Types = append(f.Types, jf.Type)
		f.Docs = append(f.Docs, jf.Docs)
	}
	f.Named = len(jfs) > 0 && jfs[0].Name != ""
	return f
}

func newType(jt jsonType) (*Type, error) {
	t := &Type{
		ID:   jt.ID,
		Path: jt.Type.Path,
		Docs: jt.Type.Docs,
	}
	for _, p := range jt.Type.Params {
		if p.Type == nil {
			continue
		}
		t.Params = append(t.Params, Param{Name: p.Name, Type: *p.Type})
	}
	switch def := jt.Type.Def; {
	case def.Primitive != nil:
		t.Kind = PrimitiveKind
		t.Prim = Prim(*def.Primitive)
		if !t.Prim.valid() {
			return nil, &UnsupportedError{ID: t.ID, Reason: "unknown primitive " + *def.Primitive}
		}
	case def.Tuple != nil:
		t.Kind = TupleKind
		t.Elems = *def.Tuple
	case def.Array != nil:
		t.Kind = ArrayKind
		t.Len = def.Array.Len
		t.Elem = def.Array.Type
	case def.Sequence != nil:
		t.Kind = SequenceKind
		t.Elem = def.Sequence.Type
	case def.Compact != nil:
		t.Kind = CompactKind
		t.Elem = def.Compact.Type
	case def.Composite != nil:
		t.Kind = CompositeKind
		t.Fields = newFields(def.Composite.Fields)
	case def.Variant != nil:
		t.Kind = VariantKind
		for _, jv := range def.Variant.Variants {
			t.Variants = append(t.Variants, Variant{
				Name:   jv.Name,
				Index:  jv.Index,
				Fields: newFields(jv.Fields),
				Docs:   jv.Docs,
			})
		}
	case def.BitSequence != nil:
		t.Kind = BitSequenceKind
	default:
		return nil, fmt.Errorf("type %d: missing or unknown definition", t.ID)
	}
	return t, nil
}

func newEntryPoint(r *Registry, j jsonEntry, constructor bool) (EntryPoint, error) {
	e := EntryPoint{
		Label:       j.Label,
		Constructor: constructor,
		Mutates:     j.Mutates,
		Payable:     j.Payable,
		Default:     j.Default,
		Docs:        j.Docs,
	}
	sel, err := hexutil.Decode(j.Selector)
	if err != nil {
		return e, fmt.Errorf("%s selector: %w", j.Label, err)
	}
	if len(sel) != len(e.Selector) {
		return e, fmt.Errorf("%s selector has %d bytes, want 4", j.Label, len(sel))
	}
	copy(e.Selector[:], sel)
	for _, a := range j.Args {
		if _, err := r.Resolve(a.Type.Type); err != nil {
			return e, &UnresolvedError{ID: a.Type.Type, From: j.Label + " argument " + a.Label}
		}
		e.Args = append(e.Args, Arg{Name: a.Label, Type: a.Type.Type})
	}
	if j.ReturnType != nil {
		if _, err := r.Resolve(j.ReturnType.Type); err != nil {
			return e, &UnresolvedError{ID: j.ReturnType.Type, From: j.Label + " return"}
		}
		id := j.ReturnType.Type
		e.ReturnType = &id
	}
	return e, nil
}
