package plist

import "fmt"

// Node is the capability shared by every element of a document tree.
//
// The variant set is closed: Entry, Array, Dict, and Objects are the only
// shapes the serializer knows how to emit, and domain record types build
// on Dict rather than implementing Node from scratch.
type Node interface {
	// Name returns the node's name. For identifier-addressed records the
	// name is the identifier itself.
	Name() string

	// Comment returns the inline annotation, or "" when absent.
	Comment() string

	// UUID returns the content-derived identifier, or "" for nodes that
	// are not addressable.
	UUID() string

	// Enabled reports whether the node contributes to output.
	Enabled() bool

	// SetEnabled toggles the node's contribution to output.
	SetEnabled(enabled bool)

	// ISA returns the record kind discriminator, or "" for plain nodes.
	ISA() string

	// Generate appends the node's rendering to ll.
	Generate(ll *LineList, ctx *Context, indent int)

	// attach records the owning container. Implemented by the shared
	// payload, which keeps the variant set closed to this package.
	attach(parent Node)
}

// Context carries render-wide state down the tree walk, so records that
// depend on the target format version never have to climb parent links.
type Context struct {
	// ObjectVersion is the pbxproj object format version being generated,
	// seeded by the project root.
	ObjectVersion int
}

// shared is the identity payload embedded in every node variant.
type shared struct {
	name    string
	comment string
	uuid    string
	enabled bool
	parent  Node
}

// Name returns the node's name.
func (s *shared) Name() string { return s.name }

// Comment returns the inline annotation, or "" when absent.
func (s *shared) Comment() string { return s.comment }

// SetComment sets the inline annotation.
func (s *shared) SetComment(comment string) { s.comment = comment }

// UUID returns the content-derived identifier, or "" when absent.
func (s *shared) UUID() string { return s.uuid }

// Enabled reports whether the node contributes to output.
func (s *shared) Enabled() bool { return s.enabled }

// SetEnabled toggles the node's contribution to output.
func (s *shared) SetEnabled(enabled bool) { s.enabled = enabled }

// ISA returns "" for plain nodes; Dict overrides it.
func (s *shared) ISA() string { return "" }

// Parent returns the owning container, or nil for a root. The link is
// non-owning and exists only to enforce single ownership; rendering never
// consults it.
func (s *shared) Parent() Node { return s.parent }

// attach records the owning container. A node may have at most one parent
// for its entire lifetime; attaching it a second time is a programming
// error.
func (s *shared) attach(parent Node) {
	if s.parent != nil {
		panic(fmt.Sprintf("plist: node %q is already attached to a container", s.name))
	}
	s.parent = parent
}

// config collects the construction settings a node can carry. Options
// that do not apply to a given variant are ignored by its constructor.
type config struct {
	comment         string
	uuid            string
	disabled        bool
	value           string
	hasValue        bool
	isa             string
	flatten         bool
	suppressIfEmpty bool
	foldSingle      bool
}

// Option configures node construction.
type Option func(*config)

// WithComment sets the inline annotation.
func WithComment(comment string) Option {
	return func(c *config) { c.comment = comment }
}

// WithUUID sets the content-derived identifier.
func WithUUID(uuid string) Option {
	return func(c *config) { c.uuid = uuid }
}

// WithValue sets a scalar value. An Entry without a value renders as a
// bare list member instead of an assignment.
func WithValue(value string) Option {
	return func(c *config) { c.value = value; c.hasValue = true }
}

// Disabled constructs the node with output suppressed.
func Disabled() Option {
	return func(c *config) { c.disabled = true }
}

// WithISA sets the record kind discriminator on a Dict and prepends the
// matching "isa" entry.
func WithISA(isa string) Option {
	return func(c *config) { c.isa = isa }
}

// Flattened renders a Dict's entire structure as a single line.
func Flattened() Option {
	return func(c *config) { c.flatten = true }
}

// SuppressIfEmpty omits a container entirely when it has no enabled
// children.
func SuppressIfEmpty() Option {
	return func(c *config) { c.suppressIfEmpty = true }
}

// FoldSingle renders a one-element Array as a direct assignment rather
// than a parenthesized list.
func FoldSingle() Option {
	return func(c *config) { c.foldSingle = true }
}

func newShared(name string, c *config) shared {
	return shared{
		name:    name,
		comment: c.comment,
		uuid:    c.uuid,
		enabled: !c.disabled,
	}
}

func applyOptions(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Entry is the scalar node variant.
type Entry struct {
	shared
	value    string
	hasValue bool
}

// NewEntry creates a scalar node. Without WithValue it renders as a bare
// name, the form used for members of identifier lists.
func NewEntry(name string, opts ...Option) *Entry {
	c := applyOptions(opts)
	return &Entry{
		shared:   newShared(name, c),
		value:    c.value,
		hasValue: c.hasValue,
	}
}

// Value returns the scalar value.
func (e *Entry) Value() string { return e.value }

// SetValue replaces the scalar value. Only valid before generation begins.
func (e *Entry) SetValue(value string) {
	e.value = value
	e.hasValue = true
}

// Array is the ordered list node variant.
type Array struct {
	shared
	children        []Node
	suppressIfEmpty bool
	foldSingle      bool
}

// NewArray creates an ordered list node.
func NewArray(name string, opts ...Option) *Array {
	c := applyOptions(opts)
	return &Array{
		shared:          newShared(name, c),
		suppressIfEmpty: c.suppressIfEmpty,
		foldSingle:      c.foldSingle,
	}
}

// Add appends a child node, taking ownership of it.
func (a *Array) Add(n Node) {
	n.attach(a)
	a.children = append(a.children, n)
}

// AddString appends a bare scalar member and returns it so the caller can
// annotate it.
func (a *Array) AddString(value string, opts ...Option) *Entry {
	e := NewEntry(value, opts...)
	a.Add(e)
	return e
}

// Reset discards all children. Used by records that re-derive their member
// list at render time.
func (a *Array) Reset() { a.children = nil }

// Children returns the child nodes in insertion order.
func (a *Array) Children() []Node { return a.children }

// Dict is the ordered keyed dictionary node variant.
type Dict struct {
	shared
	children        []Node
	isa             string
	suppressIfEmpty bool
	flatten         bool
}

// NewDict creates a dictionary node. When WithISA is given, the matching
// "isa" discriminator entry is created as the first child.
func NewDict(name string, opts ...Option) *Dict {
	c := applyOptions(opts)
	d := &Dict{
		shared:          newShared(name, c),
		isa:             c.isa,
		suppressIfEmpty: c.suppressIfEmpty,
		flatten:         c.flatten,
	}
	if c.isa != "" {
		d.AddEntry("isa", c.isa)
	}
	return d
}

// ISA returns the record kind discriminator, or "" for plain dictionaries.
func (d *Dict) ISA() string { return d.isa }

// Add appends a child node, taking ownership of it.
func (d *Dict) Add(n Node) {
	n.attach(d)
	d.children = append(d.children, n)
}

// AddEntry creates a scalar assignment child and returns it so the caller
// can toggle or annotate it.
func (d *Dict) AddEntry(name, value string, opts ...Option) *Entry {
	e := NewEntry(name, append([]Option{WithValue(value)}, opts...)...)
	d.Add(e)
	return e
}

// Find returns the named child, or nil when absent.
func (d *Dict) Find(name string) Node {
	for _, n := range d.children {
		if n.Name() == name {
			return n
		}
	}
	return nil
}

// Children returns the child nodes in insertion order.
func (d *Dict) Children() []Node { return d.children }

// Objects is the master object table: a Dict specialization whose members
// are emitted grouped by record kind in canonical order.
type Objects struct {
	shared
	children []Node
}

// NewObjects creates the master object table.
func NewObjects(name string, opts ...Option) *Objects {
	c := applyOptions(opts)
	return &Objects{shared: newShared(name, c)}
}

// Add appends a record, taking ownership of it.
func (o *Objects) Add(n Node) {
	n.attach(o)
	o.children = append(o.children, n)
}

// Children returns the records in insertion order.
func (o *Objects) Children() []Node { return o.children }
