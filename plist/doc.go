// Package plist implements the document model and serializer for the
// old-style property list format used by Xcode project files.
//
// A project.pbxproj document is a tree of four node kinds:
//
//   - Entry: a scalar, rendered either as a bare list member ("name,") or
//     as an assignment ("name = value;")
//   - Array: an ordered list, rendered in parentheses
//   - Dict: an ordered keyed dictionary, rendered in braces
//   - Objects: the master object table, a Dict specialization that groups
//     its members into /* Begin ... section */ blocks
//
// Every node carries a name, an optional inline comment, an optional
// content-derived identifier, and an enabled flag. Disabled nodes
// contribute nothing to output, which is how record kinds suppress fields
// that do not apply to a particular file type or format version.
//
// # Determinism
//
// Serialization is deterministic by construction. The master table emits
// sections in a fixed canonical kind order (SectionOrder) regardless of
// insertion order, and sorts members within a section by identifier. Two
// renders of the same logical tree are byte identical.
//
// # Quirks
//
// The format has several non-obvious emission rules that Xcode's own
// writer follows and its parser expects:
//
//   - strings made only of letters, digits, and "_$./" are written bare;
//     everything else is quoted with embedded quotes escaped
//   - a Dict marked Flattened collapses its whole rendering into a single
//     line, with "{ isa" compressed to "{isa"
//   - an Array marked FoldSingle renders a one-element list as a direct
//     assignment with no parentheses
//   - containers marked SuppressIfEmpty vanish when they have no enabled
//     children
//
// Trees are single-owner: attaching a node that already has a parent is a
// programming error and panics. All mutation must finish before Generate
// runs; rendering a validly constructed tree never fails.
package plist
