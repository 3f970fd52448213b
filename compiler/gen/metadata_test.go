package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/repogen/compiler/load"
)

func newTestMetadata() *Metadata {
	return NewMetadata(TargetIdentity{
		PkgPath: "github.com/acme/app/store",
		PkgName: "store",
		Name:    "UserRepositoryImpl",
	})
}

func TestMetadataAddField(t *testing.T) {
	t.Run("fields keep insertion order", func(t *testing.T) {
		m := newTestMetadata()
		m.AddField("db", &load.TypeInfo{Ident: "DB", PkgPath: "database/sql", Pointer: true})
		m.AddField("logger", &load.TypeInfo{Ident: "Logger", PkgPath: "log/slog", Pointer: true})
		m.AddField("timeout", &load.TypeInfo{Ident: "Duration", PkgPath: "time"})

		fields := m.Fields()
		require.Len(t, fields, 3)
		assert.Equal(t, "db", fields[0].Name)
		assert.Equal(t, "logger", fields[1].Name)
		assert.Equal(t, "timeout", fields[2].Name)
	})

	t.Run("re-adding a name overwrites without double counting", func(t *testing.T) {
		m := newTestMetadata()
		m.AddField("db", &load.TypeInfo{Ident: "DB", PkgPath: "database/sql", Pointer: true})
		m.AddField("logger", &load.TypeInfo{Ident: "Logger", PkgPath: "log/slog", Pointer: true})
		m.AddField("db", &load.TypeInfo{Ident: "Conn", PkgPath: "database/sql", Pointer: true})

		assert.Equal(t, 2, m.Len())
		fields := m.Fields()
		require.Len(t, fields, 2)
		// The last write wins but the field keeps its original slot.
		assert.Equal(t, "db", fields[0].Name)
		assert.Equal(t, "Conn", fields[0].Type.Ident)
	})
}

func TestMetadataFieldNameOf(t *testing.T) {
	m := newTestMetadata()
	m.AddField("db", &load.TypeInfo{Ident: "DB", PkgPath: "database/sql", Pointer: true})
	m.AddField("names", &load.TypeInfo{Ident: "string", Slice: true})

	t.Run("exact type matches", func(t *testing.T) {
		name, ok := m.FieldNameOf(&load.TypeInfo{Ident: "DB", PkgPath: "database/sql", Pointer: true})
		require.True(t, ok)
		assert.Equal(t, "db", name)
	})

	t.Run("pointer indirection is ignored", func(t *testing.T) {
		name, ok := m.FieldNameOf(&load.TypeInfo{Ident: "DB", PkgPath: "database/sql"})
		require.True(t, ok)
		assert.Equal(t, "db", name)
	})

	t.Run("slice shape is significant", func(t *testing.T) {
		_, ok := m.FieldNameOf(&load.TypeInfo{Ident: "string"})
		assert.False(t, ok)
	})

	t.Run("unknown type misses", func(t *testing.T) {
		_, ok := m.FieldNameOf(&load.TypeInfo{Ident: "Tx", PkgPath: "database/sql", Pointer: true})
		assert.False(t, ok)
	})

	t.Run("lookup then add is idempotent", func(t *testing.T) {
		typ := &load.TypeInfo{Ident: "DB", PkgPath: "database/sql", Pointer: true}
		if _, ok := m.FieldNameOf(typ); !ok {
			m.AddField("db2", typ)
		}
		assert.Equal(t, 2, m.Len())
	})
}

func TestMetadataHasField(t *testing.T) {
	m := newTestMetadata()
	assert.False(t, m.HasField("db"))
	m.AddField("db", &load.TypeInfo{Ident: "DB", PkgPath: "database/sql", Pointer: true})
	assert.True(t, m.HasField("db"))
}
