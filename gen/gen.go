// Generates Go bindings for ink! contracts.
//
// The generated package has no dependencies other
// than the ink and scale packages. Its calls return
// request values that are executed with an
// [ink.Connection] or [ink.SignedConnection].
package gen

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/indexsupply/inkwrap/metadata"
	"github.com/indexsupply/inkwrap/wstrings"
)

//go:embed template.txt
var inktemp string

var tmpl = template.Must(template.New("ink").Parse(inktemp))

type Options struct {
	// Package name of the generated code.
	// Defaults to the contract's name, sanitized.
	Package string

	// Source names the metadata in the
	// generated header. Defaults to metadata.json.
	Source string

	// WasmPath is embedded with //go:embed and
	// used by the generated Upload function. It
	// must be relative to the generated file's
	// directory and cannot leave it.
	WasmPath string
}

func (o *Options) ValidateFix(c *metadata.Contract) error {
	if o.Package == "" {
		o.Package = wstrings.PackageName(c.Name)
	}
	if err := wstrings.Safe(o.Package); err != nil {
		return fmt.Errorf("package %q: %w", o.Package, err)
	}
	if token.IsKeyword(o.Package) {
		return fmt.Errorf("package %q is a Go keyword", o.Package)
	}
	if o.Source == "" {
		o.Source = "metadata.json"
	}
	if o.WasmPath != "" {
		if filepath.IsAbs(o.WasmPath) {
			return fmt.Errorf("wasm path %q must be relative", o.WasmPath)
		}
		p := path.Clean(filepath.ToSlash(o.WasmPath))
		if p == "." || p == ".." || strings.HasPrefix(p, "../") {
			return fmt.Errorf("wasm path %q must be inside the package directory", o.WasmPath)
		}
		o.WasmPath = p
	}
	return nil
}

// Reads the metadata file at path and calls [Gen]
func GenFile(path string, opts Options) ([]byte, error) {
	c, err := metadata.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if opts.Source == "" {
		opts.Source = filepath.Base(path)
	}
	return Gen(c, opts)
}

// Generates formatted source code with type declarations,
// constructors, message calls and event decoding for c.
//
// When formatting fails the unformatted source is
// returned along with the error to help debugging.
func Gen(c *metadata.Contract, opts Options) ([]byte, error) {
	if c == nil {
		return nil, errors.New("missing contract")
	}
	if err := opts.ValidateFix(c); err != nil {
		return nil, fmt.Errorf("validating options: %w", err)
	}
	p, err := newPlan(c, opts)
	if err != nil {
		return nil, fmt.Errorf("planning %s: %w", c.Name, err)
	}
	var b bytes.Buffer
	if err := tmpl.ExecuteTemplate(&b, "file", p); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	code, err := format.Source(b.Bytes())
	if err != nil {
		return b.Bytes(), fmt.Errorf("formatting source: %w", err)
	}
	return code, nil
}
