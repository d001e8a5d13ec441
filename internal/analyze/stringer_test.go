package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	float64Type = &TypeInfo{ID: TypeID{Name: "float64"}, Kind: TypeKindBasic}
	byteType    = &TypeInfo{ID: TypeID{Name: "byte"}, Kind: TypeKindBasic}
	listType    = &TypeInfo{ID: TypeID{PkgPath: "example.com/x", Name: "List"}, Kind: TypeKindStruct}
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		name     string
		typ      *TypeInfo
		expected string
	}{
		{"nil", nil, "<nil>"},
		{"basic", float64Type, "float64"},
		{"named", listType, "example.com/x.List"},
		{"pointer", &TypeInfo{Kind: TypeKindPointer, ElemType: listType}, "*example.com/x.List"},
		{"slice", &TypeInfo{Kind: TypeKindSlice, ElemType: byteType}, "[]byte"},
		{"map", &TypeInfo{Kind: TypeKindMap, KeyType: byteType, ElemType: listType}, "map[byte]example.com/x.List"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeString(tt.typ))
		})
	}
}

func TestIdent(t *testing.T) {
	assert.Equal(t, "Float64", Ident(float64Type))
	assert.Equal(t, "List", Ident(listType))
	assert.Equal(t, "ListPtr", Ident(&TypeInfo{Kind: TypeKindPointer, ElemType: listType}))
	assert.Equal(t, "ByteSlice", Ident(&TypeInfo{Kind: TypeKindSlice, ElemType: byteType}))
	assert.Empty(t, Ident(nil))
}

func TestTypeInfo_Helpers(t *testing.T) {
	st := &TypeInfo{
		Kind: TypeKindStruct,
		Fields: []FieldInfo{
			{Name: "Kind", Exported: true, Type: float64Type},
			{Name: "state", Exported: false, Type: float64Type},
		},
	}

	assert.NotNil(t, st.Field("Kind"))
	assert.Nil(t, st.Field("Missing"))
	assert.Len(t, st.ExportedFields(), 1)
	assert.False(t, st.IsSealed())

	sealed := &TypeInfo{Kind: TypeKindInterface, Methods: []string{"isValue"}}
	open := &TypeInfo{Kind: TypeKindInterface, Methods: []string{"String"}}

	assert.True(t, sealed.IsSealed())
	assert.False(t, open.IsSealed())
}

func TestTypeGraph_AddType(t *testing.T) {
	g := NewTypeGraph()
	g.AddType(listType)

	assert.Same(t, listType, g.GetType(listType.ID))
	assert.Equal(t, "x", g.Packages["example.com/x"].Name)
	assert.Equal(t, []TypeID{listType.ID}, g.Packages["example.com/x"].Types)
}
