package xcode

import (
	"sort"

	"github.com/syssam/pbxgen"
	"github.com/syssam/pbxgen/hash"
	"github.com/syssam/pbxgen/plist"
)

// childRef is one member of a group: an identifier plus the display name
// the member is sorted and annotated by.
type childRef struct {
	uuid string
	name string
}

// Group organizes file references into the folder hierarchy shown in
// Xcode's navigator. Members are re-derived at render time, sorted by
// display name with child groups listed before files.
type Group struct {
	*plist.Dict

	displayName string
	groupList   []childRef
	fileList    []childRef

	children   *plist.Array
	nameEntry  *plist.Entry
	pathEntry  *plist.Entry
	sourceTree *plist.Entry
}

// NewGroup creates a group named name representing path. An empty path
// makes a project-relative display group: the path field is omitted and
// the source tree becomes the generic group marker. The name field is
// omitted when it would just repeat the path.
func NewGroup(name, path string, opts ...Option) *Group {
	c := applyOptions(opts)
	uuid := c.uuid
	if uuid == "" {
		uuidPath := path
		if uuidPath == "" {
			uuidPath = "<group>"
		}
		uuid = hash.CalcUUID("PBXGroup" + name + uuidPath)
	}

	g := &Group{
		Dict: plist.NewDict(uuid,
			plist.WithUUID(uuid),
			plist.WithComment(name),
			plist.WithISA("PBXGroup")),
		displayName: name,
	}

	g.children = plist.NewArray("children")
	g.Add(g.children)
	g.nameEntry = g.AddEntry("name", name)
	g.pathEntry = g.AddEntry("path", path)

	sourceTree := "SOURCE_ROOT"
	if path == "" {
		sourceTree = "<group>"
	}
	g.sourceTree = g.AddEntry("sourceTree", sourceTree)

	g.nameEntry.SetEnabled(path == "" || name != path)
	g.pathEntry.SetEnabled(path != "")
	return g
}

// DisplayName returns the name the group is shown and sorted by.
func (g *Group) DisplayName() string { return g.displayName }

// IsEmpty returns true if the group has no members.
func (g *Group) IsEmpty() bool {
	return len(g.groupList) == 0 && len(g.fileList) == 0
}

// AddFile appends a file reference to the group's members.
func (g *Group) AddFile(ref *FileReference) error {
	if ref == nil {
		return pbxgen.NewTypeMismatchError("file_reference", "FileReference")
	}
	g.fileList = append(g.fileList, childRef{uuid: ref.UUID(), name: ref.Basename()})
	return nil
}

// AddGroup appends a child group to the group's members.
func (g *Group) AddGroup(child *Group) error {
	if child == nil {
		return pbxgen.NewTypeMismatchError("group", "Group")
	}
	g.groupList = append(g.groupList, childRef{uuid: child.UUID(), name: child.DisplayName()})
	return nil
}

// Generate rebuilds the children array from the current member lists and
// renders the record. Groups come first sorted by name, then files sorted
// by basename; each member is a bare identifier annotated with its
// display name.
func (g *Group) Generate(ll *plist.LineList, ctx *plist.Context, indent int) {
	g.children.Reset()

	for _, list := range [][]childRef{g.groupList, g.fileList} {
		sorted := make([]childRef, len(list))
		copy(sorted, list)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].name < sorted[j].name
		})
		for _, c := range sorted {
			g.children.AddString(c.uuid, plist.WithComment(c.name))
		}
	}

	g.Dict.Generate(ll, ctx, indent)
}
