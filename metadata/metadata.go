// Data model for ink! contract metadata.
//
// [Parse] reads the JSON emitted by cargo-contract (ink! v4)
// and validates that every type reference resolves, so that
// code walking a [Contract] may use [Registry.MustResolve].
package metadata

import (
	"fmt"
	"strings"
)

type Kind int

const (
	PrimitiveKind Kind = iota
	TupleKind
	ArrayKind
	SequenceKind
	CompactKind
	CompositeKind
	VariantKind
	BitSequenceKind
)

func (k Kind) String() string {
	switch k {
	case PrimitiveKind:
		return "primitive"
	case TupleKind:
		return "tuple"
	case ArrayKind:
		return "array"
	case SequenceKind:
		return "sequence"
	case CompactKind:
		return "compact"
	case CompositeKind:
		return "composite"
	case VariantKind:
		return "variant"
	case BitSequenceKind:
		return "bitsequence"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Prim string

const (
	Bool Prim = "bool"
	Char Prim = "char"
	Str  Prim = "str"
	U8   Prim = "u8"
	U16  Prim = "u16"
	U32  Prim = "u32"
	U64  Prim = "u64"
	U128 Prim = "u128"
	U256 Prim = "u256"
	I8   Prim = "i8"
	I16  Prim = "i16"
	I32  Prim = "i32"
	I64  Prim = "i64"
	I128 Prim = "i128"
	I256 Prim = "i256"
)

func (p Prim) valid() bool {
	switch p {
	case Bool, Char, Str,
		U8, U16, U32, U64, U128, U256,
		I8, I16, I32, I64, I128, I256:
		return true
	default:
		return false
	}
}

// Class decides how a type is referenced
// from generated code.
type Class int

const (
	// Primitives, tuples, arrays, sequences and compacts.
	// Rendered structurally at every use.
	Anonymous Class = iota
	// Single segment paths such as Option and Result.
	Builtin
	// Types from ink_primitives. These map to
	// types defined by the runtime package.
	Reserved
	// Composites and variants declared by the contract
	// (or its dependencies). These get a declaration.
	Custom
)

func (c Class) String() string {
	switch c {
	case Anonymous:
		return "anonymous"
	case Builtin:
		return "builtin"
	case Reserved:
		return "reserved"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

type Param struct {
	Name string
	Type uint32
}

// Fields are either all named or all unnamed.
type Fields struct {
	Named bool
	Names []string
	Types []uint32
	Docs  [][]string
}

func (f Fields) Len() int { return len(f.Types) }

type Variant struct {
	Name   string
	Index  uint8
	Fields Fields
	Docs   []string
}

type Type struct {
	ID     uint32
	Path   []string
	Params []Param
	Docs   []string
	Kind   Kind

	Prim     Prim      // PrimitiveKind
	Elems    []uint32  // TupleKind
	Elem     uint32    // ArrayKind, SequenceKind, CompactKind
	Len      uint32    // ArrayKind
	Fields   Fields    // CompositeKind
	Variants []Variant // VariantKind
}

// Name is the last segment of the type's path
func (t *Type) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

func (t *Type) PathString() string {
	return strings.Join(t.Path, "::")
}

func (t *Type) Class() Class {
	switch {
	case len(t.Path) > 0 && t.Path[0] == "ink_primitives":
		return Reserved
	case len(t.Path) == 1:
		return Builtin
	case len(t.Path) > 1 && (t.Kind == CompositeKind || t.Kind == VariantKind):
		return Custom
	default:
		return Anonymous
	}
}

func (t *Type) IsLangError() bool {
	return t.Class() == Reserved && t.Name() == "LangError"
}

// refs returns the ids t's encoding depends on.
// Type parameters are not included.
func (t *Type) refs() []uint32 {
	var ids []uint32
	switch t.Kind {
	case TupleKind:
		ids = append(ids, t.Elems...)
	case ArrayKind, SequenceKind, CompactKind:
		ids = append(ids, t.Elem)
	case CompositeKind:
		ids = append(ids, t.Fields.Types...)
	case VariantKind:
		for _, v := range t.Variants {
			ids = append(ids, v.Fields.Types...)
		}
	}
	return ids
}

type Arg struct {
	Name string
	Type uint32
}

// EntryPoint is a constructor or a message.
type EntryPoint struct {
	Label       string
	Selector    [4]byte
	Args        []Arg
	ReturnType  *uint32
	Constructor bool
	Mutates     bool
	Payable     bool
	Default     bool
	Docs        []string
}

// Namespace is the part of the label before "::"
// (trait messages) or "" for inherent messages.
func (e EntryPoint) Namespace() string {
	ns, _, ok := strings.Cut(e.Label, "::")
	if !ok {
		return ""
	}
	return ns
}

// Method is the part of the label after "::"
func (e EntryPoint) Method() string {
	_, m, ok := strings.Cut(e.Label, "::")
	if !ok {
		return e.Label
	}
	return m
}

// Reader reports whether e is a message that
// can be dry-run instead of submitted.
func (e EntryPoint) Reader() bool {
	return !e.Constructor && !e.Mutates
}

type EventArg struct {
	Name    string
	Type    uint32
	Indexed bool
	Docs    []string
}

type Event struct {
	Label string
	Args  []EventArg
	Docs  []string
}

type Contract struct {
	Name     string
	Version  string
	Language string
	CodeHash [32]byte
	Registry *Registry

	Constructors []EntryPoint
	Messages     []EntryPoint
	Events       []Event
}
