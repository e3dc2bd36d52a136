package plist

import (
	"sort"
	"strings"

	"github.com/syssam/pbxgen/strutil"
)

// SectionOrder is the canonical order of master table sections. Xcode
// writes sections sorted by record kind, and its tooling relies on the
// ordering, so it is reproduced verbatim regardless of insertion order.
var SectionOrder = []string{
	"PBXBuildFile",
	"PBXBuildRule",
	"PBXContainerItemProxy",
	"PBXCopyFilesBuildPhase",
	"PBXFileReference",
	"PBXFrameworksBuildPhase",
	"PBXGroup",
	"PBXNativeTarget",
	"PBXProject",
	"PBXReferenceProxy",
	"PBXResourcesBuildPhase",
	"PBXShellScriptBuildPhase",
	"PBXSourcesBuildPhase",
	"PBXTargetDependency",
	"XCBuildConfiguration",
	"XCConfigurationList",
}

// LineList accumulates the text lines of a document being generated.
type LineList struct {
	lines []string
}

// NewLineList returns an empty line accumulator.
func NewLineList() *LineList {
	return &LineList{}
}

// Add appends one line.
func (ll *LineList) Add(line string) {
	ll.lines = append(ll.lines, line)
}

// Len returns the number of accumulated lines.
func (ll *LineList) Len() int { return len(ll.lines) }

// Lines returns the accumulated lines.
func (ll *LineList) Lines() []string { return ll.lines }

// String joins the lines into a complete document with a trailing newline.
func (ll *LineList) String() string {
	if len(ll.lines) == 0 {
		return ""
	}
	return strings.Join(ll.lines, "\n") + "\n"
}

// tabs returns the indentation prefix for the given depth.
func tabs(indent int) string {
	return strings.Repeat("\t", indent)
}

// commentSuffix renders the inline annotation, or "" when absent.
func commentSuffix(comment string) string {
	if comment == "" {
		return ""
	}
	return " /* " + comment + " */"
}

// enabledNodes filters a child list down to the nodes contributing output.
func enabledNodes(children []Node) []Node {
	out := make([]Node, 0, len(children))
	for _, n := range children {
		if n.Enabled() {
			out = append(out, n)
		}
	}
	return out
}

// Generate renders the scalar. Without a value it is a bare list member;
// with one it is an assignment.
func (e *Entry) Generate(ll *LineList, _ *Context, indent int) {
	if !e.enabled {
		return
	}
	if !e.hasValue {
		ll.Add(tabs(indent) + strutil.QuoteIfNeeded(e.name) + commentSuffix(e.comment) + ",")
		return
	}
	ll.Add(tabs(indent) + strutil.QuoteIfNeeded(e.name) + " = " +
		strutil.QuoteIfNeeded(e.value) + commentSuffix(e.comment) + ";")
}

// Generate renders the list. A FoldSingle list with exactly one enabled
// member collapses to a direct assignment.
func (a *Array) Generate(ll *LineList, ctx *Context, indent int) {
	if !a.enabled {
		return
	}
	kids := enabledNodes(a.children)
	if a.suppressIfEmpty && len(kids) == 0 {
		return
	}
	if a.foldSingle && len(kids) == 1 {
		ll.Add(tabs(indent) + strutil.QuoteIfNeeded(a.name) + commentSuffix(a.comment) +
			" = " + strutil.QuoteIfNeeded(kids[0].Name()) + ";")
		return
	}
	ll.Add(tabs(indent) + strutil.QuoteIfNeeded(a.name) + commentSuffix(a.comment) + " = (")
	for _, n := range kids {
		n.Generate(ll, ctx, indent+1)
	}
	ll.Add(tabs(indent) + ");")
}

// Generate renders the dictionary, collapsing it to one line when the
// record kind is emitted flattened.
func (d *Dict) Generate(ll *LineList, ctx *Context, indent int) {
	if !d.enabled {
		return
	}
	kids := enabledNodes(d.children)
	if d.suppressIfEmpty && len(kids) == 0 {
		return
	}
	if d.flatten {
		// The flattened form is a textual post-process over the normal
		// rendering: join, strip indentation, compress the brace before
		// the isa discriminator. Xcode writes these records exactly so.
		scratch := NewLineList()
		d.generateOpen(scratch, ctx, indent, kids)
		line := strings.Join(scratch.Lines(), " ")
		line = strings.ReplaceAll(line, "\t", "")
		line = strings.ReplaceAll(line, "{ isa", "{isa")
		ll.Add(tabs(indent) + line)
		return
	}
	d.generateOpen(ll, ctx, indent, kids)
}

// generateOpen renders the multi-line dictionary form.
func (d *Dict) generateOpen(ll *LineList, ctx *Context, indent int, kids []Node) {
	ll.Add(tabs(indent) + strutil.QuoteIfNeeded(d.name) + commentSuffix(d.comment) + " = {")
	for _, n := range kids {
		n.Generate(ll, ctx, indent+1)
	}
	ll.Add(tabs(indent) + "};")
}

// Generate renders the master table: sections in canonical kind order,
// members sorted by identifier, section markers unindented, and no markers
// at all for kinds with no enabled members.
func (o *Objects) Generate(ll *LineList, ctx *Context, indent int) {
	if !o.enabled {
		return
	}
	ll.Add(tabs(indent) + strutil.QuoteIfNeeded(o.name) + " = {")
	for _, isa := range SectionOrder {
		var members []Node
		for _, n := range o.children {
			if n.Enabled() && n.ISA() == isa {
				members = append(members, n)
			}
		}
		if len(members) == 0 {
			continue
		}
		// Stable keeps insertion order for identifier ties.
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].UUID() < members[j].UUID()
		})
		ll.Add("")
		ll.Add("/* Begin " + isa + " section */")
		for _, n := range members {
			n.Generate(ll, ctx, indent+1)
		}
		ll.Add("/* End " + isa + " section */")
	}
	ll.Add(tabs(indent) + "};")
}
