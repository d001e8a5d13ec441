// Package plan builds the descriptors consumed by code generation.
//
// Resolution pipeline:
//  1. Analyze packages → type graph
//  2. Load directive file → validate
//  3. For each described type, in file order:
//     - Struct → StructDescriptor with one Conversion per field
//     - Sealed interface → EnumDescriptor with one VariantDescriptor per variant
//     - Check the protoc-gen-go contract of the external message when loaded
//  4. Emit diagnostics (unknown types, shape violations, contract mismatches)
package plan
