package xcode

import (
	"github.com/syssam/pbxgen"
	"github.com/syssam/pbxgen/filetype"
	"github.com/syssam/pbxgen/hash"
	"github.com/syssam/pbxgen/plist"
)

// BuildFile associates one source file reference with the output file
// reference it is built into. These are effectively makefile entries that
// tell Xcode to run the input through a compilation recipe.
//
// The output reference takes part in the identifier so that a source file
// feeding several build targets still gets a unique record per target.
type BuildFile struct {
	*plist.Dict

	fileReference *FileReference
	settings      *plist.Dict
}

// NewBuildFile creates the association between a source file and the
// output it is compiled into. Both references are required.
func NewBuildFile(input, output *FileReference, opts ...Option) (*BuildFile, error) {
	if input == nil {
		return nil, pbxgen.NewTypeMismatchError("input_reference", "FileReference")
	}
	if output == nil {
		return nil, pbxgen.NewTypeMismatchError("output_reference", "FileReference")
	}

	c := applyOptions(opts)
	uuid := c.uuid
	if uuid == "" {
		uuid = hash.CalcUUID("PBXBuildFile" + input.FileName() + output.FileName())
	}

	base := input.Basename()
	phase := "Sources"
	if filetype.IsFramework(input.FileType()) {
		phase = "Frameworks"
	}

	b := &BuildFile{
		Dict: plist.NewDict(uuid,
			plist.WithUUID(uuid),
			plist.WithComment(base+" in "+phase),
			plist.WithISA("PBXBuildFile"),
			plist.Flattened()),
		fileReference: input,
	}
	b.AddEntry("fileRef", input.UUID(), plist.WithComment(base))

	// Per-file compiler settings, omitted from output while empty.
	b.settings = plist.NewDict("settings", plist.SuppressIfEmpty())
	b.Add(b.settings)
	return b, nil
}

// FileReference returns the source file reference being compiled.
func (b *BuildFile) FileReference() *FileReference { return b.fileReference }

// AddSetting attaches a compiler setting applied only to this file.
func (b *BuildFile) AddSetting(name, value string) {
	b.settings.AddEntry(name, value)
}
