package gen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/indexsupply/inkwrap/metadata"
	"github.com/indexsupply/inkwrap/wstrings"
)

// Identifiers every generated file declares at the
// top level. Custom types, events and traits are
// named around them.
var topLevel = []string{
	"CodeHash",
	"Instance",
	"NewInstance",
	"Event",
	"UnmarshalEvent",
	"Upload",
	"wasm",
	"encodeEvent",
	"decodeEvent",
	"scale",
	"ink",
}

// Methods of Instance that messages must not shadow
var instanceMethods = []string{
	"AccountID",
	"DecodeEvent",
	"Events",
}

// Some types and functions will have the same name
// (eg generic types instantiated twice). In this case
// we append a sequential integer onto the name
// eg Foo, Foo2, Foo3, etc...
type namer struct {
	taken map[string]bool
}

func newNamer(reserved ...string) *namer {
	n := &namer{taken: map[string]bool{}}
	for _, r := range reserved {
		n.taken[r] = true
	}
	return n
}

func (n *namer) claim(s string) string {
	if !n.taken[s] {
		n.taken[s] = true
		return s
	}
	for i := 2; ; i++ {
		c := fmt.Sprintf("%s%d", s, i)
		if !n.taken[c] {
			n.taken[c] = true
			return c
		}
	}
}

// newName appends underscores to base until
// it differs from every name in taken.
func newName(base string, taken []string) string {
	for slices.Contains(taken, base) {
		base += "_"
	}
	return base
}

type field struct {
	Name string
	Type string
	Enc  string
	Dec  string
	Docs []string
}

type alt struct {
	Name   string
	Label  string
	Index  uint8
	Fields []field
	Docs   []string
}

type decl struct {
	Name      string
	Path      string
	Docs      []string
	Variant   bool
	Fields    []field
	Alts      []alt
	Unmarshal string
}

type arg struct {
	Name string
	Type string
	Enc  string
}

type call struct {
	Name     string
	Label    string
	Docs     []string
	Selector string
	Args     []arg
	Data     string
	Recv     string
	RecvType string
	Payable  bool
	Reader   bool
	Ret      string
	Dec      string
}

type trait struct {
	Name     string
	Impl     string
	Accessor string
	Calls    []call
}

type plan struct {
	Package      string
	Source       string
	Contract     string
	Version      string
	CodeHash     string
	Wasm         string
	Types        []decl
	Event        decl
	Constructors []call
	Messages     []call
	Traits       []trait
}

type planner struct {
	c      *metadata.Contract
	refs   *refs
	top    *namer
	hidden map[string]bool // unexported top level names
}

func byteLiteral(b []byte) string {
	var s strings.Builder
	for i := range b {
		if i > 0 {
			s.WriteString(", ")
		}
		fmt.Fprintf(&s, "0x%02x", b[i])
	}
	return s.String()
}

func embedPath(p string) string {
	if strings.ContainsAny(p, " \t\"`") {
		return strconv.Quote(p)
	}
	return p
}

func docs(lines []string) []string {
	res := make([]string, 0, len(lines))
	for _, l := range lines {
		res = append(res, strings.TrimRight(strings.TrimPrefix(l, " "), " \t"))
	}
	for len(res) > 0 && res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	return res
}

// roots are the type ids used directly by
// the contract's entry points and events
func roots(c *metadata.Contract) []uint32 {
	var ids []uint32
	for _, es := range [][]metadata.EntryPoint{c.Constructors, c.Messages} {
		for _, e := range es {
			for _, a := range e.Args {
				ids = append(ids, a.Type)
			}
			if e.ReturnType != nil && !e.Constructor {
				ids = append(ids, *e.ReturnType)
			}
		}
	}
	for _, ev := range c.Events {
		for _, a := range ev.Args {
			ids = append(ids, a.Type)
		}
	}
	return ids
}

func newPlan(c *metadata.Contract, opts Options) (*plan, error) {
	p := &planner{
		c:      c,
		refs:   &refs{reg: c.Registry, names: map[uint32]string{}},
		top:    newNamer(topLevel...),
		hidden: map[string]bool{},
	}
	for _, n := range topLevel {
		if !isExported(n) {
			p.hidden[n] = true
		}
	}
	res := &plan{
		Package:  opts.Package,
		Source:   opts.Source,
		Contract: c.Name,
		Version:  c.Version,
		CodeHash: "ink.Hash{" + byteLiteral(c.CodeHash[:]) + "}",
		Wasm:     embedPath(opts.WasmPath),
	}

	var (
		custom    []*metadata.Type
		reachable = c.Registry.Reachable(roots(c)...)
	)
	for _, id := range reachable {
		t := c.Registry.MustResolve(id)
		if t.Class() != metadata.Custom {
			continue
		}
		custom = append(custom, t)
		name := p.top.claim(wstrings.Camel(t.Name()))
		p.refs.names[id] = name
		p.hide("encode"+name, "decode"+name)
	}
	p.refs.breakCycles(reachable)
	for _, t := range custom {
		d, err := p.decl(t)
		if err != nil {
			return nil, err
		}
		res.Types = append(res.Types, d)
	}

	var err error
	res.Event, err = p.events()
	if err != nil {
		return nil, err
	}

	inherent, groups, err := metadata.Group(c.Messages)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		name := p.top.claim(wstrings.Camel(g.Namespace))
		res.Traits = append(res.Traits, trait{
			Name: name,
			Impl: p.top.claim("instance" + name),
		})
		p.hide(res.Traits[len(res.Traits)-1].Impl)
	}
	for _, e := range c.Constructors {
		cl, err := p.call(e, p.top.claim(wstrings.Camel(e.Label)), "")
		if err != nil {
			return nil, err
		}
		res.Constructors = append(res.Constructors, cl)
	}

	methods := newNamer(instanceMethods...)
	for _, e := range inherent {
		cl, err := p.call(e, methods.claim(wstrings.Camel(e.Label)), "Instance")
		if err != nil {
			return nil, err
		}
		res.Messages = append(res.Messages, cl)
	}
	for i, g := range groups {
		tr := &res.Traits[i]
		tr.Accessor = methods.claim(tr.Name)
		tm := newNamer()
		for _, e := range g.Messages {
			cl, err := p.call(e, tm.claim(wstrings.Camel(e.Method())), tr.Impl)
			if err != nil {
				return nil, err
			}
			tr.Calls = append(tr.Calls, cl)
		}
	}
	return res, nil
}

func isExported(s string) bool {
	return s != "" && strings.ToUpper(s[:1]) == s[:1] && s[:1] != "_"
}

func (p *planner) hide(names ...string) {
	for _, n := range names {
		p.hidden[n] = true
	}
}

func (p *planner) fields(r *refs, f metadata.Fields) ([]field, error) {
	var (
		res   []field
		names = newNamer("MarshalBinary", "UnmarshalBinary")
	)
	for i, id := range f.Types {
		var name string
		if i < len(f.Names) {
			name = wstrings.Camel(f.Names[i])
		}
		if !f.Named || name == "" {
			name = fmt.Sprintf("F%d", i)
		}
		fd := field{Name: names.claim(name)}
		if i < len(f.Docs) {
			fd.Docs = docs(f.Docs[i])
		}
		var err error
		if fd.Type, err = r.typeRef(id); err != nil {
			return nil, err
		}
		if fd.Enc, err = r.encoder(id); err != nil {
			return nil, err
		}
		if fd.Dec, err = r.decoder(id); err != nil {
			return nil, err
		}
		res = append(res, fd)
	}
	return res, nil
}

func (p *planner) decl(t *metadata.Type) (decl, error) {
	d := decl{
		Name: p.refs.names[t.ID],
		Path: t.PathString(),
		Docs: docs(t.Docs),
	}
	if len(t.Params) > 0 {
		var ps []string
		for _, prm := range t.Params {
			gt, err := p.refs.typeRef(prm.Type)
			if err != nil {
				ps = append(ps, fmt.Sprintf("%s=#%d", prm.Name, prm.Type))
				continue
			}
			ps = append(ps, fmt.Sprintf("%s=%s", prm.Name, gt))
		}
		if len(d.Docs) > 0 {
			d.Docs = append(d.Docs, "")
		}
		d.Docs = append(d.Docs, fmt.Sprintf("Instantiated with %s.", strings.Join(ps, ", ")))
	}
	if t.Kind == metadata.CompositeKind {
		var err error
		d.Fields, err = p.fields(p.refs.within(t.ID), t.Fields)
		return d, err
	}
	d.Variant = true
	d.Unmarshal = p.top.claim("Unmarshal" + d.Name)
	for _, v := range t.Variants {
		a := alt{
			Name:  p.top.claim(d.Name + wstrings.Camel(v.Name)),
			Label: v.Name,
			Index: v.Index,
			Docs:  docs(v.Docs),
		}
		if len(a.Docs) == 0 {
			a.Docs = []string{fmt.Sprintf("%s is the %s variant of %s.", a.Name, v.Name, d.Name)}
		}
		var err error
		a.Fields, err = p.fields(p.refs, v.Fields)
		if err != nil {
			return d, err
		}
		d.Alts = append(d.Alts, a)
	}
	return d, nil
}

// events are declared as a variant named Event
// whose index is the position of the event in
// the metadata.
func (p *planner) events() (decl, error) {
	d := decl{
		Name:      "Event",
		Docs:      []string{"Event is an event emitted by the contract."},
		Variant:   true,
		Unmarshal: "UnmarshalEvent",
	}
	for i, ev := range p.c.Events {
		f := metadata.Fields{Named: true}
		for _, a := range ev.Args {
			f.Names = append(f.Names, a.Name)
			f.Types = append(f.Types, a.Type)
			f.Docs = append(f.Docs, a.Docs)
		}
		fields, err := p.fields(p.refs, f)
		if err != nil {
			return d, fmt.Errorf("event %s: %w", ev.Label, err)
		}
		a := alt{
			Name:   p.top.claim(wstrings.Camel(ev.Label) + "Event"),
			Label:  ev.Label,
			Index:  uint8(i),
			Fields: fields,
			Docs:   docs(ev.Docs),
		}
		if len(a.Docs) == 0 {
			a.Docs = []string{fmt.Sprintf("%s is the %s event.", a.Name, ev.Label)}
		}
		d.Alts = append(d.Alts, a)
	}
	return d, nil
}

func (p *planner) argName(s string, i int, taken []string) string {
	n := wstrings.Lower(s)
	if n == "" {
		n = fmt.Sprintf("arg%d", i)
	}
	for wstrings.Reserved(n) || p.hidden[n] || slices.Contains(taken, n) {
		n += "_"
	}
	return n
}

func callDocs(e metadata.EntryPoint, name string) []string {
	res := docs(e.Docs)
	if len(res) == 0 {
		switch {
		case e.Constructor:
			res = append(res, fmt.Sprintf("%s instantiates the contract with the %s constructor.", name, e.Label))
		case e.Reader():
			res = append(res, fmt.Sprintf("%s returns a dry run of the %s message.", name, e.Label))
		default:
			res = append(res, fmt.Sprintf("%s returns a call to the %s message.", name, e.Label))
		}
	}
	if e.Payable {
		res = append(res, "", "The call is payable. Set the transferred value with WithValue.")
	}
	return res
}

// call plans a constructor (recvType == "") or a message
// with a receiver of type recvType.
func (p *planner) call(e metadata.EntryPoint, name, recvType string) (call, error) {
	cl := call{
		Name:     name,
		Label:    e.Label,
		Docs:     callDocs(e, name),
		Selector: "[]byte{" + byteLiteral(e.Selector[:]) + "}",
		RecvType: recvType,
		Payable:  e.Payable,
		Reader:   e.Reader(),
	}
	var names []string
	for i, a := range e.Args {
		n := p.argName(a.Name, i, names)
		names = append(names, n)
		gt, err := p.refs.typeRef(a.Type)
		if err != nil {
			return cl, fmt.Errorf("%s argument %s: %w", e.Label, a.Name, err)
		}
		enc, err := p.refs.encoder(a.Type)
		if err != nil {
			return cl, fmt.Errorf("%s argument %s: %w", e.Label, a.Name, err)
		}
		cl.Args = append(cl.Args, arg{Name: n, Type: gt, Enc: enc})
	}
	if !e.Constructor {
		cl.Recv = newName("x", names)
		names = append(names, cl.Recv)
	}
	cl.Data = newName("data", names)
	if !cl.Reader {
		return cl, nil
	}
	cl.Ret, cl.Dec = "scale.Unit", "scale.DecodeUnit"
	if e.ReturnType != nil {
		var err error
		if cl.Ret, err = p.refs.typeRef(*e.ReturnType); err != nil {
			return cl, fmt.Errorf("%s return: %w", e.Label, err)
		}
		if cl.Dec, err = p.refs.decoder(*e.ReturnType); err != nil {
			return cl, fmt.Errorf("%s return: %w", e.Label, err)
		}
	}
	return cl, nil
}
