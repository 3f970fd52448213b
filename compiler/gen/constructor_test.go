package gen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/repogen/compiler/load"
)

func newTestConstructor() *ConstructorBuilder {
	contract := &load.Contract{
		Name:    "UserRepository",
		PkgPath: "github.com/acme/app/store",
		PkgName: "store",
	}
	return NewConstructorBuilder(&Contract{Contract: contract}, newTestMetadata())
}

func TestConstructorBuilder(t *testing.T) {
	t.Run("no parameters", func(t *testing.T) {
		b := newTestConstructor()
		code := fmt.Sprintf("%#v", b.Build())
		assert.Contains(t, code, "func NewUserRepositoryImpl() *UserRepositoryImpl")
		assert.Contains(t, code, "return &UserRepositoryImpl{}")
	})

	t.Run("parameters are assigned to same-named fields", func(t *testing.T) {
		b := newTestConstructor()
		b.AddParameter("db", &load.TypeInfo{Ident: "DB", PkgPath: "database/sql", Pointer: true}).
			AddParameter("timeout", &load.TypeInfo{Ident: "Duration", PkgPath: "time"})

		assert.Len(t, b.Params(), 2)
		code := fmt.Sprintf("%#v", b.Build())
		assert.Contains(t, code, "db *sql.DB")
		assert.Contains(t, code, "timeout time.Duration")
		assert.Contains(t, code, "db: db")
		assert.Contains(t, code, "timeout: timeout")
	})

	t.Run("metadata store is reachable for customizers", func(t *testing.T) {
		b := newTestConstructor()
		typ := &load.TypeInfo{Ident: "DB", PkgPath: "database/sql", Pointer: true}
		b.Metadata().AddField("db", typ)
		b.AddParameter("db", typ)
		assert.True(t, b.Metadata().HasField("db"))
	})
}
