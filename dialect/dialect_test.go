package dialect

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDriver struct {
	execs   []string
	queries []string
}

func (f *fakeDriver) Exec(_ context.Context, query string, _, _ any) error {
	f.execs = append(f.execs, query)
	return nil
}

func (f *fakeDriver) Query(_ context.Context, query string, _, _ any) error {
	f.queries = append(f.queries, query)
	return nil
}

func (f *fakeDriver) Tx(context.Context) (Tx, error) { return NopTx(f), nil }
func (f *fakeDriver) Close() error                   { return nil }
func (f *fakeDriver) Dialect() string                { return SQLite }

func TestDebugDriver(t *testing.T) {
	var logs []string
	logf := func(v ...any) {
		var b strings.Builder
		for _, e := range v {
			b.WriteString(e.(string))
		}
		logs = append(logs, b.String())
	}

	fake := &fakeDriver{}
	drv := Debug(fake, logf)

	require.NoError(t, drv.Exec(context.Background(), "DELETE FROM users", []any{}, nil))
	require.NoError(t, drv.Query(context.Background(), "SELECT 1", []any{}, nil))
	assert.Equal(t, []string{"DELETE FROM users"}, fake.execs)
	assert.Equal(t, []string{"SELECT 1"}, fake.queries)

	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), "UPDATE users SET name = NULL", []any{}, nil))
	require.NoError(t, tx.Commit())

	require.Len(t, logs, 5)
	assert.Contains(t, logs[0], "driver.Exec")
	assert.Contains(t, logs[1], "driver.Query")
	assert.Contains(t, logs[2], "driver.Tx")
	assert.Contains(t, logs[3], "tx.Exec")
	assert.Contains(t, logs[4], "tx.Commit")
}

func TestNopTx(t *testing.T) {
	tx := NopTx(&fakeDriver{})
	assert.NoError(t, tx.Commit())
	assert.NoError(t, tx.Rollback())
}
