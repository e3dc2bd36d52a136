// Package filetype maps file names to the canonical Xcode type tags used in
// file reference records.
package filetype

import (
	"path"
	"strings"

	"github.com/syssam/pbxgen/strutil"
)

// DefaultType is the tag assigned when the extension is missing or not
// recognized. C/C++ headers share it, and treating unknown files as plain
// text source is what Xcode itself falls back to.
const DefaultType = "sourcecode.c.h"

// entry maps one canonical type tag to the file extensions it covers.
// Entries with no extensions exist for tags that are only ever assigned
// explicitly, such as linked output binaries.
type entry struct {
	tag  string
	exts []string
}

// Fixed classification table, first match wins. Order matters for
// extensions that could plausibly belong to more than one tag.
var table = []entry{
	{"sourcecode.c.h", []string{"h", "hpp", "hxx", "hh", "inl", "ipp"}},
	{"sourcecode.c.c", []string{"c"}},
	{"sourcecode.cpp.cpp", []string{"cpp", "cc", "cxx", "c++"}},
	{"sourcecode.c.objc", []string{"m"}},
	{"sourcecode.cpp.objcpp", []string{"mm"}},
	{"sourcecode.asm", []string{"asm", "s"}},
	{"sourcecode.swift", []string{"swift"}},
	{"sourcecode.java", []string{"java"}},
	{"sourcecode.glsl", []string{"glsl"}},
	{"sourcecode.metal", []string{"metal"}},
	{"text.plist.xml", []string{"plist"}},
	{"text.plist.strings", []string{"strings"}},
	{"text.xml", []string{"xml"}},
	{"text.html", []string{"html", "htm"}},
	{"text.rtf", []string{"rtf"}},
	{"text.json", []string{"json"}},
	{"text.script.sh", []string{"sh"}},
	{"text.script.python", []string{"py"}},
	{"text.script.perl", []string{"pl"}},
	{"net.daringfireball.markdown", []string{"md", "markdown"}},
	{"text", []string{"txt"}},
	{"file.storyboard", []string{"storyboard"}},
	{"file.xib", []string{"xib"}},
	{"image.png", []string{"png"}},
	{"image.jpeg", []string{"jpg", "jpeg"}},
	{"image.gif", []string{"gif"}},
	{"image.bmp", []string{"bmp"}},
	{"image.tiff", []string{"tif", "tiff"}},
	{"image.icns", []string{"icns"}},
	{"image.ico", []string{"ico"}},
	{"audio.wav", []string{"wav"}},
	{"audio.mp3", []string{"mp3"}},
	{"audio.aiff", []string{"aif", "aiff"}},
	{"archive.ar", []string{"a", "lib"}},
	{"archive.zip", []string{"zip"}},
	{"archive.jar", []string{"jar"}},
	{"compiled.mach-o.dylib", []string{"dylib"}},
	{"compiled.mach-o.objfile", []string{"o"}},
	{"compiled.mach-o.executable", nil},
	{"wrapper.framework", []string{"framework"}},
	{"wrapper.application", []string{"app"}},
	{"wrapper.cfbundle", []string{"bundle"}},
	{"wrapper.pb-project", []string{"xcodeproj"}},
}

// SourceType classifies a file name by its extension.
//
// Lookup is case insensitive and only the final extension is consulted.
// A name with no extension, or an extension not in the table, resolves to
// DefaultType.
func SourceType(name string) string {
	base := path.Base(strutil.UnixSlashes(name))
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 {
		return DefaultType
	}
	ext := strings.ToLower(base[dot+1:])
	for _, e := range table {
		for _, x := range e.exts {
			if x == ext {
				return e.tag
			}
		}
	}
	return DefaultType
}

// IsFramework returns true for macOS framework bundle tags.
func IsFramework(tag string) bool {
	return strings.HasPrefix(tag, "wrapper.framework")
}

// IsEncodable returns true for tags whose files carry a text encoding,
// meaning source code and text types.
func IsEncodable(tag string) bool {
	return strings.HasPrefix(tag, "sourcecode") || strings.HasPrefix(tag, "text")
}

// IsWrapper returns true for bundle style directory wrappers.
func IsWrapper(tag string) bool {
	return strings.HasPrefix(tag, "wrapper")
}

// IsBinary returns true for archives, compiled output, and wrapper bundles,
// the tags that use explicit file types in file reference records.
func IsBinary(tag string) bool {
	return strings.HasPrefix(tag, "archive") ||
		strings.HasPrefix(tag, "compiled") ||
		strings.HasPrefix(tag, "wrapper")
}
