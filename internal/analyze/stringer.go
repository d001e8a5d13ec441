package analyze

import (
	"unicode"
	"unicode/utf8"
)

// TypeString returns a fully qualified representation of a type, used to
// compare types that did not come from the same go/types universe.
func TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	if t.GoType != nil {
		return t.GoType.String()
	}

	switch t.Kind {
	case TypeKindPointer:
		return "*" + TypeString(t.ElemType)
	case TypeKindSlice:
		return "[]" + TypeString(t.ElemType)
	case TypeKindMap:
		return "map[" + TypeString(t.KeyType) + "]" + TypeString(t.ElemType)
	default:
		if t.IsNamed() {
			return t.ID.String()
		}

		return "<" + t.Kind.String() + ">"
	}
}

// Ident returns an exported identifier fragment naming a type, used to build
// function names such as ValueFromFloat64 or ListFromValue.
// Examples:
//   - float64 -> "Float64"
//   - List -> "List"
//   - *List -> "ListPtr"
//   - []byte -> "ByteSlice"
func Ident(t *TypeInfo) string {
	if t == nil {
		return ""
	}

	switch t.Kind {
	case TypeKindPointer:
		return Ident(t.ElemType) + "Ptr"
	case TypeKindSlice:
		return Ident(t.ElemType) + "Slice"
	case TypeKindArray:
		return Ident(t.ElemType) + "Array"
	case TypeKindMap:
		return Ident(t.KeyType) + Ident(t.ElemType) + "Map"
	default:
		return upperFirst(t.ID.Name)
	}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
