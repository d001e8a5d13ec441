// Package pbconv is the runtime support imported by code that
// pbconvert-generator emits.
//
// Every described type gets a pair of generated functions,
// <T>ToProto and <T>FromProto, plus a <T>Converter value that satisfies
// Converter. This package holds the pieces those functions share:
//
//   - Converter and Funcs: the conversion capability as an interface value
//   - Timestamp and Duration: base cases for time.Time and time.Duration
//   - MapSlice and MapSliceErr: element-wise conversion of repeated fields
//   - ConversionError and its constructors: failures raised while
//     reconstructing a native value from a protobuf message
package pbconv
