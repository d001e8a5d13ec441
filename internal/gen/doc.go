// Package gen provides deterministic Go code generation for protobuf conversions.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code. Every described type gets one file in its own
// package holding ToProto, FromProto and a pbconv.Converter value.
//
// Codegen patterns:
//   - Direct assignment and explicit type conversion of scalars
//   - Slice cloning for repeated scalars
//   - Nested calls for described types, with nil checks behind pointers
//   - Element-wise mapping of repeated described types
//   - Type switches between sealed interfaces and oneof wrappers
//   - Calls into with converters and the well-known type converters
//   - Optional JSON and binary shims encoding through the message
package gen
