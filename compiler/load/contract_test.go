package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeInfoString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info *TypeInfo
		want string
	}{
		{&TypeInfo{Ident: "string"}, "string"},
		{&TypeInfo{Ident: "User", PkgPath: "example.com/app/user"}, "user.User"},
		{&TypeInfo{Ident: "User", PkgPath: "example.com/app/user", Slice: true}, "[]user.User"},
		{&TypeInfo{Ident: "DB", PkgPath: "database/sql", Pointer: true}, "*sql.DB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.info.String())
	}
}

func TestTypeInfoEqualBase(t *testing.T) {
	t.Parallel()

	db := &TypeInfo{Ident: "DB", PkgPath: "database/sql"}
	ptr := &TypeInfo{Ident: "DB", PkgPath: "database/sql", Pointer: true}
	assert.True(t, db.EqualBase(ptr), "pointer indirection is ignored")
	assert.False(t, db.Equal(ptr))

	other := &TypeInfo{Ident: "Tx", PkgPath: "database/sql"}
	assert.False(t, db.EqualBase(other))

	slice := &TypeInfo{Ident: "DB", PkgPath: "database/sql", Slice: true}
	assert.False(t, db.EqualBase(slice), "slices are distinct base types")
}

func TestMethodSignature(t *testing.T) {
	t.Parallel()

	m := &Method{
		Name: "FindByName",
		Params: []*Param{
			{Name: "ctx", Type: &TypeInfo{Ident: "Context", PkgPath: "context"}},
			{Name: "name", Type: &TypeInfo{Ident: "string"}},
		},
		Results: []*TypeInfo{
			{Ident: "User", PkgPath: "example.com/app/user", Slice: true},
			{Ident: "error"},
		},
	}
	assert.Equal(t, "FindByName(ctx context.Context, name string) ([]user.User, error)", m.Signature())

	void := &Method{Name: "Reindex", Params: []*Param{{Name: "ctx", Type: &TypeInfo{Ident: "Context", PkgPath: "context"}}}}
	assert.Equal(t, "Reindex(ctx context.Context)", void.Signature())
}

func TestContractMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	c := &Contract{
		Name:    "UserRepository",
		PkgPath: "example.com/app/user",
		PkgName: "user",
		Methods: []*Method{
			{Name: "Find", Embedded: true},
			{Name: "FindByName"},
		},
	}
	buf, err := MarshalContract(c)
	require.NoError(t, err)
	got, err := UnmarshalContract(buf)
	require.NoError(t, err)
	assert.Equal(t, c.FQN(), got.FQN())
	require.Len(t, got.Methods, 2)
	assert.True(t, got.Methods[0].Embedded)
}
