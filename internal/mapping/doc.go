// Package mapping provides the directive file schema, parsing and validation.
//
// A directive file sits next to the Go package it describes and tells the
// generator which native types map to which protobuf messages and how.
//
// # Schema Overview
//
//	version: "1"
//	types:
//	  - type: Span                 # native struct
//	    source: google.golang.org/protobuf/types/known/durationpb.Duration
//	    serde_pb_convert: true     # MarshalJSON/UnmarshalJSON through protojson
//	    fields:
//	      Note: skip               # never sent, zero value on the way back
//	  - type: API
//	    source: google.golang.org/protobuf/types/known/apipb.Api
//	    fields:
//	      Syntax:
//	        with: syntaxConv       # value or package with ToProto/FromProto
//	  - type: Value                # native sealed interface (enum)
//	    source: google.golang.org/protobuf/types/known/structpb.Value
//	    impl_from_trait: true      # ValueFromString, StringFromValue, ...
//	    rename:
//	      case: snake_case         # variant NumberValue -> slot number_value
//	    oneof_field: kind          # default
//
// # Field directives
//
//   - default (no entry): the field is converted according to its type
//   - skip: omitted when converting to protobuf, zero value when converting back
//   - with: delegated to <path>.ToProto / <path>.FromProto
//
// skip takes precedence over with.
//
// # With paths
//
//   - "syntaxConv": identifier in the described package
//   - "example.com/ids": package exposing ToProto and FromProto functions
//   - "example.com/ids.Syntax": exported value of another package
//
// Unknown options are not parse errors. They are collected with their line
// numbers and reported by Validate together with a suggestion.
package mapping
