package xcode

import (
	"github.com/syssam/pbxgen"
	"github.com/syssam/pbxgen/hash"
	"github.com/syssam/pbxgen/plist"
)

// FrameworksBuildPhase is the link-frameworks phase of a target: an
// ordered list of the build file associations for every linked framework.
type FrameworksBuildPhase struct {
	*plist.Dict

	buildActionMask      *plist.Entry
	files                *plist.Array
	runOnlyForDeployment *plist.Entry
}

// NewFrameworksBuildPhase creates the phase for the target whose output is
// the given file reference.
func NewFrameworksBuildPhase(ref *FileReference) (*FrameworksBuildPhase, error) {
	if ref == nil {
		return nil, pbxgen.NewTypeMismatchError("file_reference", "FileReference")
	}

	uuid := hash.CalcUUID("PBXFrameworksBuildPhase" + ref.FileName())
	p := &FrameworksBuildPhase{
		Dict: plist.NewDict(uuid,
			plist.WithUUID(uuid),
			plist.WithComment("Frameworks"),
			plist.WithISA("PBXFrameworksBuildPhase")),
	}

	// All operations enabled.
	p.buildActionMask = p.AddEntry("buildActionMask", "2147483647")

	p.files = plist.NewArray("files")
	p.Add(p.files)

	p.runOnlyForDeployment = p.AddEntry("runOnlyForDeploymentPostprocessing", "0")
	return p, nil
}

// AddBuildFile appends a framework's build file association to the phase.
func (p *FrameworksBuildPhase) AddBuildFile(bf *BuildFile) error {
	if bf == nil {
		return pbxgen.NewTypeMismatchError("build_file", "BuildFile")
	}
	p.files.AddString(bf.UUID(),
		plist.WithComment(bf.FileReference().Basename()+" in Frameworks"))
	return nil
}
