package xcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/pbxgen/plist"
	"github.com/syssam/pbxgen/xcode"
)

func render(n plist.Node, version, indent int) []string {
	ll := plist.NewLineList()
	n.Generate(ll, &plist.Context{ObjectVersion: version}, indent)
	return ll.Lines()
}

func TestFileReferenceSource(t *testing.T) {
	t.Parallel()

	ref := xcode.NewFileReference("main.cpp")
	assert.Equal(t, "850AB0B97BD60C8A1461C69E", ref.UUID())
	assert.Equal(t, "main.cpp", ref.FileName())
	assert.Equal(t, "sourcecode.cpp.cpp", ref.FileType())
	assert.Equal(t, "main.cpp", ref.Basename())

	assert.Equal(t, []string{
		"\t\t850AB0B97BD60C8A1461C69E /* main.cpp */ = {isa = PBXFileReference; fileEncoding = 4; lastKnownFileType = sourcecode.cpp.cpp; name = main.cpp; path = main.cpp; sourceTree = SOURCE_ROOT; };",
	}, render(ref, 54, 2))
}

func TestFileReferenceNestedPath(t *testing.T) {
	t.Parallel()

	ref := xcode.NewFileReference("source/main.cpp")
	assert.Equal(t, "D11245BF50D02A55349DA104", ref.UUID())
	assert.Equal(t, "main.cpp", ref.Basename())
	assert.Equal(t, []string{
		"\t\tD11245BF50D02A55349DA104 /* main.cpp */ = {isa = PBXFileReference; fileEncoding = 4; lastKnownFileType = sourcecode.cpp.cpp; name = main.cpp; path = source/main.cpp; sourceTree = SOURCE_ROOT; };",
	}, render(ref, 54, 2))
}

// A path in Windows convention normalizes before hashing, so both
// spellings produce the identical record.
func TestFileReferenceSlashInvariance(t *testing.T) {
	t.Parallel()

	a := xcode.NewFileReference("source/main.cpp")
	b := xcode.NewFileReference(`source\main.cpp`)
	assert.Equal(t, a.UUID(), b.UUID())
	assert.Equal(t, render(a, 54, 2), render(b, 54, 2))
}

func TestFileReferenceFramework(t *testing.T) {
	t.Parallel()

	ref := xcode.NewFileReference("Cocoa.framework")
	assert.Equal(t, "wrapper.framework", ref.FileType())

	// Frameworks resolve into the SDK's system frameworks folder, carry
	// no encoding, and keep the default last-known type.
	assert.Equal(t, []string{
		"\t\t04BBF96056AA4E7B57C08772 /* Cocoa.framework */ = {isa = PBXFileReference; lastKnownFileType = wrapper.framework; name = Cocoa.framework; path = System/Library/Frameworks/Cocoa.framework; sourceTree = SDKROOT; };",
	}, render(ref, 54, 2))
}

func TestFileReferenceArchive(t *testing.T) {
	t.Parallel()

	ref := xcode.NewFileReference("output/libburger.a")

	// Built output collapses to its basename in the products directory
	// with an explicit type and no name field.
	assert.Equal(t, []string{
		"\t\t" + ref.UUID() + " /* libburger.a */ = {isa = PBXFileReference; explicitFileType = archive.ar; includeInIndex = 0; path = libburger.a; sourceTree = BUILT_PRODUCTS_DIR; };",
	}, render(ref, 54, 2))
}

func TestFileReferenceExecutableOverride(t *testing.T) {
	t.Parallel()

	ref := xcode.NewFileReference("hello", xcode.WithFileType("compiled.mach-o.executable"))
	assert.Equal(t, "21A8ECF2B01079EEEA5EF294", ref.UUID())
	assert.Equal(t, "compiled.mach-o.executable", ref.FileType())

	assert.Equal(t, []string{
		"\t\t21A8ECF2B01079EEEA5EF294 /* hello */ = {isa = PBXFileReference; explicitFileType = \"compiled.mach-o.executable\"; includeInIndex = 0; path = hello; sourceTree = BUILT_PRODUCTS_DIR; };",
	}, render(ref, 54, 2))
}

func TestFileReferenceWrapper(t *testing.T) {
	t.Parallel()

	ref := xcode.NewFileReference("Hello.app")

	// Wrappers switch to explicit types but keep their name and path.
	assert.Equal(t, []string{
		"\t\t" + ref.UUID() + " /* Hello.app */ = {isa = PBXFileReference; explicitFileType = wrapper.application; includeInIndex = 0; name = Hello.app; path = Hello.app; sourceTree = SOURCE_ROOT; };",
	}, render(ref, 54, 2))
}

func TestFileReferenceBinaryNonText(t *testing.T) {
	t.Parallel()

	ref := xcode.NewFileReference("art/icon.png")

	// Media files keep the last-known type but drop the text encoding.
	assert.Equal(t, []string{
		"\t\t" + ref.UUID() + " /* icon.png */ = {isa = PBXFileReference; lastKnownFileType = image.png; name = icon.png; path = art/icon.png; sourceTree = SOURCE_ROOT; };",
	}, render(ref, 54, 2))
}

func TestFileReferenceUUIDOverride(t *testing.T) {
	t.Parallel()

	ref := xcode.NewFileReference("main.cpp", xcode.WithUUID("AAAA0000BBBB1111CCCC2222"))
	assert.Equal(t, "AAAA0000BBBB1111CCCC2222", ref.UUID())
}
