package repogen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/repogen"
)

func TestParseRegistry(t *testing.T) {
	t.Parallel()

	t.Run("parses entries and skips comments", func(t *testing.T) {
		in := strings.Join([]string{
			"# generated by repogen",
			"",
			"example.com/app/user.UserRepository=example.com/app/user.UserRepositoryImpl",
			"example.com/app/order.OrderRepository=example.com/app/order.OrderRepositoryImpl",
		}, "\n")
		regs, err := repogen.ParseRegistry(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, regs, 2)
		assert.Equal(t, "example.com/app/user.UserRepository", regs[0].Contract)
		assert.Equal(t, "example.com/app/user.UserRepositoryImpl", regs[0].Implementation)
	})

	t.Run("rejects malformed lines", func(t *testing.T) {
		_, err := repogen.ParseRegistry(strings.NewReader("no-separator-here\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, repogen.ErrMalformedRegistry)
	})

	t.Run("rejects empty sides", func(t *testing.T) {
		_, err := repogen.ParseRegistry(strings.NewReader("=impl\n"))
		require.Error(t, err)
	})
}

func TestFormatRegistry(t *testing.T) {
	t.Parallel()

	regs := []repogen.Registration{
		{Contract: "b.B", Implementation: "b.BImpl"},
		{Contract: "a.A", Implementation: "a.AImpl"},
	}
	out := string(repogen.FormatRegistry(regs))
	assert.Equal(t, "a.A=a.AImpl\nb.B=b.BImpl\n", out)

	// Formatting does not mutate the input order.
	assert.Equal(t, "b.B", regs[0].Contract)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	regs := []repogen.Registration{
		{Contract: "a.A", Implementation: "a.AImpl"},
	}
	merged := repogen.Merge(regs,
		repogen.Registration{Contract: "a.A", Implementation: "a.AImpl2"},
		repogen.Registration{Contract: "b.B", Implementation: "b.BImpl"},
	)
	require.Len(t, merged, 2)
	assert.Equal(t, "a.AImpl2", merged[0].Implementation)
	assert.Equal(t, "b.B", merged[1].Contract)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	regs := []repogen.Registration{
		{Contract: "a.A", Implementation: "a.AImpl"},
	}
	impl, err := repogen.Lookup(regs, "a.A")
	require.NoError(t, err)
	assert.Equal(t, "a.AImpl", impl)

	_, err = repogen.Lookup(regs, "missing.M")
	assert.ErrorIs(t, err, repogen.ErrNotRegistered)
}
