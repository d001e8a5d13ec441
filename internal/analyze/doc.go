// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of the described package and of the
// protobuf packages its directives point at.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/interface/...)
//   - FieldInfo: describes field name, type and embedding
//   - Variant: a type implementing an interface, in declaration order
package analyze
