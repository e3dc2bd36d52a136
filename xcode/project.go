// Package xcode builds the record kinds that make up an Xcode project
// document and renders them through the plist document model.
//
// A Project is the root: it owns the master object table and the format
// version metadata. Callers construct records (FileReference, BuildFile,
// Group, BuildRule, FrameworksBuildPhase), attach them with AddObject, and
// render once with Generate or Document. Record identifiers are derived
// from a kind tag plus the record's defining fields, so the same logical
// project always regenerates byte identical output.
package xcode

import (
	"strconv"

	"github.com/syssam/pbxgen"
	"github.com/syssam/pbxgen/hash"
	"github.com/syssam/pbxgen/plist"
)

// Project is the root record of a generated project document. Exactly one
// exists per document; its identifier doubles as the rootObject pointer.
type Project struct {
	*plist.Dict

	fileVersion int
	objects     *plist.Objects
}

// NewProject creates the root record for a project named name, targeting
// the given pbxproj object format version. The version must be positive.
func NewProject(name string, fileVersion int, opts ...Option) (*Project, error) {
	if fileVersion < 1 {
		return nil, pbxgen.NewInvalidArgumentError("file_version", fileVersion, "must be a positive integer")
	}
	c := applyOptions(opts)
	uuid := c.uuid
	if uuid == "" {
		uuid = hash.CalcUUID("PBXProjectRoot" + name + strconv.Itoa(fileVersion))
	}

	p := &Project{
		Dict:        plist.NewDict(name, plist.WithUUID(uuid)),
		fileVersion: fileVersion,
		objects:     plist.NewObjects("objects"),
	}

	// Children in emission order. The archive version is always 1 and the
	// classes dict is always present, even though it is always empty.
	p.AddEntry("archiveVersion", "1")
	p.Add(plist.NewDict("classes"))
	p.AddEntry("objectVersion", strconv.Itoa(fileVersion))
	p.Add(p.objects)
	p.AddEntry("rootObject", uuid, plist.WithComment("Project object"))
	return p, nil
}

// FileVersion returns the target pbxproj object format version.
func (p *Project) FileVersion() int { return p.fileVersion }

// Objects returns the master object table.
func (p *Project) Objects() *plist.Objects { return p.objects }

// AddObject attaches a record to the master object table.
func (p *Project) AddObject(n plist.Node) {
	p.objects.Add(n)
}

// Generate renders the complete project document into ll: the charset
// header, the opening brace, every child at one indent level, and the
// closing brace. The format version is threaded down the walk so version
// gated records can consult it.
func (p *Project) Generate(ll *plist.LineList) {
	ll.Add("// !$*UTF8*$!")
	ll.Add("{")
	ctx := &plist.Context{ObjectVersion: p.fileVersion}
	for _, n := range p.Children() {
		n.Generate(ll, ctx, 1)
	}
	ll.Add("}")
}

// Document renders the complete project document as a single string,
// ready to be written to a project.pbxproj file.
func (p *Project) Document() string {
	ll := plist.NewLineList()
	p.Generate(ll)
	return ll.String()
}
