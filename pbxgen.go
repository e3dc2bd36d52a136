// Package pbxgen generates Xcode project.pbxproj documents.
//
// The library is write-only: a caller assembles an in-memory project
// description and pbxgen renders it to byte-stable text that Xcode parses
// identically to project files it wrote itself. It does not discover files,
// parse build configuration, or read project files back in.
//
// # Packages
//
// The document model and its serializer live in package plist. The record
// kinds Xcode understands (file references, build files, groups, build
// rules, build phases) live in package xcode and are built on the plist
// model. Supporting packages:
//
//   - hash: deterministic identifier generation (96-bit hex and
//     namespaced version-3 GUIDs)
//   - filetype: file name to Xcode type-tag classification
//   - strutil: path separator normalization and string quoting
//   - gen: concurrent rendering of many projects to disk
//
// # Usage
//
//	p, err := xcode.NewProject("hello", 54)
//	if err != nil {
//	    return err
//	}
//	ref := xcode.NewFileReference("source/main.cpp")
//	out := xcode.NewFileReference("hello", xcode.WithFileType("compiled.mach-o.executable"))
//	bf, err := xcode.NewBuildFile(ref, out)
//	if err != nil {
//	    return err
//	}
//	p.AddObject(ref)
//	p.AddObject(out)
//	p.AddObject(bf)
//	doc := p.Document()
//
// Generated identifiers are content derived, so regenerating the same
// logical project always produces the same bytes and diffs stay minimal.
//
// # Errors
//
// All failures are reported at construction time. Rendering a validly
// constructed tree never fails. The two error kinds, TypeMismatchError and
// InvalidArgumentError, both match their sentinel (ErrTypeMismatch,
// ErrInvalidArgument) through errors.Is.
package pbxgen
