package filetype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/pbxgen/filetype"
)

func TestSourceType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"foo.cpp", "sourcecode.cpp.cpp"},
		{"foo.unknownext", "sourcecode.c.h"},
		{"noext", "sourcecode.c.h"},
		{"foo.h", "sourcecode.c.h"},
		{"foo.c", "sourcecode.c.c"},
		{"foo.CC", "sourcecode.cpp.cpp"},
		{"foo.m", "sourcecode.c.objc"},
		{"foo.mm", "sourcecode.cpp.objcpp"},
		{"build.py", "text.script.python"},
		{"notes.txt", "text"},
		{"Info.plist", "text.plist.xml"},
		{"icon.png", "image.png"},
		{"libburger.a", "archive.ar"},
		{"libc.dylib", "compiled.mach-o.dylib"},
		{"Cocoa.framework", "wrapper.framework"},
		{"Hello.app", "wrapper.application"},
		// Only the final extension counts.
		{"archive.tar.zip", "archive.zip"},
		// Paths are reduced to their basename first, either separator.
		{"source/generated/foo.swift", "sourcecode.swift"},
		{`source\win\foo.cpp`, "sourcecode.cpp.cpp"},
		// A leading dot is a hidden file, not an extension.
		{".gitignore", "sourcecode.c.h"},
		{"", "sourcecode.c.h"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, filetype.SourceType(tt.name), "input %q", tt.name)
	}
}

func TestPrefixHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, filetype.IsFramework("wrapper.framework"))
	assert.False(t, filetype.IsFramework("wrapper.application"))

	assert.True(t, filetype.IsEncodable("sourcecode.cpp.cpp"))
	assert.True(t, filetype.IsEncodable("text.plist.xml"))
	assert.False(t, filetype.IsEncodable("image.png"))

	assert.True(t, filetype.IsWrapper("wrapper.cfbundle"))
	assert.False(t, filetype.IsWrapper("archive.ar"))

	assert.True(t, filetype.IsBinary("archive.ar"))
	assert.True(t, filetype.IsBinary("compiled.mach-o.executable"))
	assert.True(t, filetype.IsBinary("wrapper.framework"))
	assert.False(t, filetype.IsBinary("sourcecode.c.c"))
}
