package xcode

import (
	"path"

	"github.com/syssam/pbxgen/filetype"
	"github.com/syssam/pbxgen/hash"
	"github.com/syssam/pbxgen/plist"
	"github.com/syssam/pbxgen/strutil"
)

// FileReference is the record that tracks one file. Every other record
// that acts on a file does so through this record's identifier: groups for
// hierarchical display, build files for compilation.
type FileReference struct {
	*plist.Dict

	fileName string
	fileType string

	encoding       *plist.Entry
	explicitType   *plist.Entry
	lastKnownType  *plist.Entry
	includeInIndex *plist.Entry
	nameEntry      *plist.Entry
	pathEntry      *plist.Entry
	sourceTree     *plist.Entry
}

// NewFileReference creates a file reference for fileName. The path is
// normalized to forward slashes and, unless WithFileType overrides it,
// classified by extension.
//
// Which fields render depends on the file type. Frameworks resolve to the
// system frameworks folder under the SDK root and carry no encoding.
// Source and text files carry a UTF-8 encoding with an explicit path.
// Archives, compiled output, and other wrappers switch to explicit file
// types; non-wrapper binaries additionally collapse to a basename rooted
// in the built products directory.
func NewFileReference(fileName string, opts ...Option) *FileReference {
	// Xcode is hosted on macOS, so paths use forward slashes.
	fileName = strutil.UnixSlashes(fileName)

	c := applyOptions(opts)
	uuid := c.uuid
	if uuid == "" {
		uuid = hash.CalcUUID("PBXFileReference" + fileName)
	}
	fileType := c.fileType
	if fileType == "" {
		fileType = filetype.SourceType(fileName)
	}
	base := path.Base(fileName)

	r := &FileReference{
		Dict: plist.NewDict(uuid,
			plist.WithUUID(uuid),
			plist.WithComment(base),
			plist.WithISA("PBXFileReference"),
			plist.Flattened()),
		fileName: fileName,
		fileType: fileType,
	}

	// Entries in emission order. lastKnownFileType is the default, so the
	// explicit type and index flag start out disabled.
	r.encoding = r.AddEntry("fileEncoding", "4")
	r.explicitType = r.AddEntry("explicitFileType", fileType, plist.Disabled())
	r.lastKnownType = r.AddEntry("lastKnownFileType", fileType)
	r.includeInIndex = r.AddEntry("includeInIndex", "0", plist.Disabled())
	r.nameEntry = r.AddEntry("name", base)
	r.pathEntry = r.AddEntry("path", fileName)
	r.sourceTree = r.AddEntry("sourceTree", "SOURCE_ROOT")

	// Frameworks live in the system frameworks folder and have no
	// encoding.
	if filetype.IsFramework(fileType) {
		r.encoding.SetEnabled(false)
		r.pathEntry.SetValue("System/Library/Frameworks/" + base)
		r.sourceTree.SetValue("SDKROOT")
		return r
	}

	if !filetype.IsEncodable(fileType) {
		r.encoding.SetEnabled(false)
	}

	// Binaries use explicit file types and are indexed.
	if filetype.IsBinary(fileType) {
		r.lastKnownType.SetEnabled(false)
		r.explicitType.SetEnabled(true)
		r.includeInIndex.SetEnabled(true)

		// Output binaries are addressed by basename in the built
		// products directory.
		if !filetype.IsWrapper(fileType) {
			r.nameEntry.SetEnabled(false)
			r.pathEntry.SetValue(base)
			r.sourceTree.SetValue("BUILT_PRODUCTS_DIR")
		}
	}
	return r
}

// FileName returns the normalized full path of the tracked file.
func (r *FileReference) FileName() string { return r.fileName }

// FileType returns the Xcode type tag of the tracked file.
func (r *FileReference) FileType() string { return r.fileType }

// Basename returns the file name without its leading path.
func (r *FileReference) Basename() string { return path.Base(r.fileName) }
