package metadata

import "fmt"

// UnresolvedError is returned when a type id
// is referenced but missing from the registry.
type UnresolvedError struct {
	ID   uint32
	From string
}

func (e *UnresolvedError) Error() string {
	if e.From == "" {
		return fmt.Sprintf("type %d not found in registry", e.ID)
	}
	return fmt.Sprintf("type %d referenced by %s not found in registry", e.ID, e.From)
}

// MixedFieldsError is returned for a composite or variant
// alternative whose fields are partially named.
type MixedFieldsError struct {
	ID      uint32
	Path    string
	Variant string
}

func (e *MixedFieldsError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("type %d (%s) variant %s: mixed named and unnamed fields", e.ID, e.Path, e.Variant)
	}
	return fmt.Sprintf("type %d (%s): mixed named and unnamed fields", e.ID, e.Path)
}

// LabelError is returned for message labels with
// more than one "::" separator or an empty namespace
// or method.
type LabelError struct {
	Label  string
	Reason string
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("message label %q: %s", e.Label, e.Reason)
}

// UnsupportedError is returned for types that have
// no rendering in generated code.
type UnsupportedError struct {
	ID     uint32
	Path   string
	Reason string
}

func (e *UnsupportedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("type %d (%s): %s", e.ID, e.Path, e.Reason)
	}
	return fmt.Sprintf("type %d: %s", e.ID, e.Reason)
}
