package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContracts(t *testing.T) {
	contracts, err := (&Config{Patterns: []string{"./testdata/valid"}}).Load()
	require.NoError(t, err)
	require.Len(t, contracts, 1, "unexported interfaces and plain structs are skipped")

	c := contracts[0]
	assert.Equal(t, "UserRepository", c.Name)
	assert.Equal(t, "valid", c.PkgName)
	assert.NotEmpty(t, c.Dir)

	t.Run("embedded methods come first in name order", func(t *testing.T) {
		var embedded []string
		for _, m := range c.Methods {
			if !m.Embedded {
				break
			}
			embedded = append(embedded, m.Name)
		}
		assert.Equal(t, []string{"Count", "Delete", "Exists", "Find", "FindAll", "Save"}, embedded)
	})

	t.Run("explicit methods keep source order", func(t *testing.T) {
		var explicit []string
		for _, m := range c.Methods {
			if !m.Embedded {
				explicit = append(explicit, m.Name)
			}
		}
		assert.Equal(t, []string{"FindByName", "CustomLookup", "Helper", "Reindex"}, explicit)
	})

	t.Run("markers classify methods", func(t *testing.T) {
		assert.True(t, c.MethodByName("CustomLookup").Custom)
		assert.True(t, c.MethodByName("Helper").Provided)
		m := c.MethodByName("FindByName")
		require.NotNil(t, m)
		assert.False(t, m.Custom)
		assert.False(t, m.Provided)
		assert.Contains(t, m.Doc, "returns the users with the given name")
	})

	t.Run("signatures are instantiated", func(t *testing.T) {
		find := c.MethodByName("Find")
		require.NotNil(t, find)
		require.Len(t, find.Params, 2)
		assert.Equal(t, "context", find.Params[0].Type.PkgPath)
		assert.Equal(t, "Context", find.Params[0].Type.Ident)
		assert.Equal(t, "UUID", find.Params[1].Type.Ident)
		assert.Equal(t, "github.com/google/uuid", find.Params[1].Type.PkgPath)
		require.Len(t, find.Results, 2)
		assert.Equal(t, "User", find.Results[0].Ident)
		assert.Equal(t, "error", find.Results[1].Ident)
	})

	t.Run("slice results carry the slice flag", func(t *testing.T) {
		m := c.MethodByName("FindByName")
		require.Len(t, m.Results, 2)
		assert.True(t, m.Results[0].Slice)
		assert.Equal(t, "User", m.Results[0].Ident)
	})
}

func TestLoadByName(t *testing.T) {
	contracts, err := (&Config{
		Patterns: []string{"./testdata/valid"},
		Names:    []string{"UserRepository"},
	}).Load()
	require.NoError(t, err)
	require.Len(t, contracts, 1)

	_, err = (&Config{
		Patterns: []string{"./testdata/valid"},
		Names:    []string{"MissingRepository"},
	}).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadMissingPatterns(t *testing.T) {
	_, err := (&Config{}).Load()
	require.Error(t, err)
}
