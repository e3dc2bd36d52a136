// Package hash generates the deterministic identifiers that address records
// inside generated project files.
//
// Two incompatible formats exist because the two IDE families never agreed
// on one: Xcode addresses objects with 96-bit uppercase hex tokens, while
// Visual Studio uses 128-bit hyphenated GUIDs. Both are content derived, so
// regenerating a project from the same description yields the same
// identifiers and version-control diffs stay minimal.
package hash

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"

	"github.com/syssam/pbxgen/strutil"
)

// CalcUUID creates a 96-bit unique hash for an Xcode object.
//
// Path separators are normalized to forward slashes before hashing, so the
// same path expressed in either convention hashes identically. The result
// is the first 24 hex digits of the MD5 of the input, upper cased.
//
// Callers build the input from a record kind tag plus the distinguishing
// fields of the record, e.g. "PBXFileReference" + path.
func CalcUUID(in string) string {
	sum := md5.Sum([]byte(strutil.UnixSlashes(in)))
	return strings.ToUpper(hex.EncodeToString(sum[:12]))
}

// CalcGUID creates a version-3 GUID for a Visual Studio object.
//
// Path separators are normalized to backslashes, then the name is hashed
// into the DNS namespace per RFC 4122, producing the familiar
// 8-4-4-4-12 uppercase form, e.g. CF994A05-58B3-3EF5-8539-E7753D89E84F.
func CalcGUID(in string) string {
	u := uuid.NewMD5(uuid.NameSpaceDNS, []byte(strutil.WindowsSlashes(in)))
	return strings.ToUpper(u.String())
}
