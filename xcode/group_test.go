package xcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pbxgen"
	"github.com/syssam/pbxgen/xcode"
)

func TestGroupProjectRelative(t *testing.T) {
	t.Parallel()

	g := xcode.NewGroup("Source", "")
	assert.Equal(t, "E2A0F37B10F11E24BC53468D", g.UUID())
	assert.Equal(t, "Source", g.DisplayName())
	assert.True(t, g.IsEmpty())

	// No path: the name renders, the path does not, and the source tree
	// is the generic group marker.
	assert.Equal(t, []string{
		"\t\tE2A0F37B10F11E24BC53468D /* Source */ = {",
		"\t\t\tisa = PBXGroup;",
		"\t\t\tchildren = (",
		"\t\t\t);",
		"\t\t\tname = Source;",
		"\t\t\tsourceTree = \"<group>\";",
		"\t\t};",
	}, render(g, 54, 2))
}

func TestGroupNameMatchesPath(t *testing.T) {
	t.Parallel()

	g := xcode.NewGroup("source", "source")
	assert.Equal(t, "4BB9B12709A42806A9A0FE1B", g.UUID())

	// Name equals path, so the redundant name field is dropped.
	assert.Equal(t, []string{
		"\t\t4BB9B12709A42806A9A0FE1B /* source */ = {",
		"\t\t\tisa = PBXGroup;",
		"\t\t\tchildren = (",
		"\t\t\t);",
		"\t\t\tpath = source;",
		"\t\t\tsourceTree = SOURCE_ROOT;",
		"\t\t};",
	}, render(g, 54, 2))
}

func TestGroupNameDiffersFromPath(t *testing.T) {
	t.Parallel()

	g := xcode.NewGroup("Generated", "build/generated")
	lines := render(g, 54, 2)
	assert.Contains(t, lines, "\t\t\tname = Generated;")
	assert.Contains(t, lines, "\t\t\tpath = build/generated;")
	assert.Contains(t, lines, "\t\t\tsourceTree = SOURCE_ROOT;")
}

func TestGroupChildrenSorted(t *testing.T) {
	t.Parallel()

	g := xcode.NewGroup("Source", "", xcode.WithUUID("GRP000000000000000000000"))

	// Insert unsorted, files before groups.
	require.NoError(t, g.AddFile(xcode.NewFileReference("b.cpp", xcode.WithUUID("FILEB0000000000000000000"))))
	require.NoError(t, g.AddFile(xcode.NewFileReference("a.cpp", xcode.WithUUID("FILEA0000000000000000000"))))
	require.NoError(t, g.AddGroup(xcode.NewGroup("zgen", "", xcode.WithUUID("GRPZ00000000000000000000"))))
	require.NoError(t, g.AddGroup(xcode.NewGroup("gen", "", xcode.WithUUID("GRPG00000000000000000000"))))
	assert.False(t, g.IsEmpty())

	// Groups render first sorted by name, then files sorted by basename.
	assert.Equal(t, []string{
		"\t\tGRP000000000000000000000 /* Source */ = {",
		"\t\t\tisa = PBXGroup;",
		"\t\t\tchildren = (",
		"\t\t\t\tGRPG00000000000000000000 /* gen */,",
		"\t\t\t\tGRPZ00000000000000000000 /* zgen */,",
		"\t\t\t\tFILEA0000000000000000000 /* a.cpp */,",
		"\t\t\t\tFILEB0000000000000000000 /* b.cpp */,",
		"\t\t\t);",
		"\t\t\tname = Source;",
		"\t\t\tsourceTree = \"<group>\";",
		"\t\t};",
	}, render(g, 54, 2))

	// Rendering re-derives the children, so a second pass is identical.
	assert.Equal(t, render(g, 54, 2), render(g, 54, 2))
}

func TestGroupNilMembers(t *testing.T) {
	t.Parallel()

	g := xcode.NewGroup("Source", "")
	assert.True(t, pbxgen.IsTypeMismatch(g.AddFile(nil)))
	assert.True(t, pbxgen.IsTypeMismatch(g.AddGroup(nil)))
	assert.True(t, g.IsEmpty())
}
