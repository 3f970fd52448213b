// Package dialect provides the database abstraction used by generated
// repositories.
//
// Generated implementation types hold a dialect.Driver instead of a raw
// *sql.DB so the same generated code runs against PostgreSQL, MySQL and
// SQLite.
//
// # Dialect Constants
//
// Each dialect is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Driver Interface
//
// The Driver interface wraps all database operations:
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Query(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// The Tx interface extends ExecQuerier with Commit and Rollback, and the
// ExecQuerier interface is the subset implemented by both.
//
// # Usage
//
// Opening a database connection:
//
//	import (
//	    "github.com/syssam/repogen/dialect"
//	    "github.com/syssam/repogen/dialect/sql"
//	)
//
//	drv, err := sql.Open(dialect.Postgres, "postgres://...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//
// The driver is then passed to a generated repository constructor.
//
// # Sub-packages
//
//   - dialect/sql: database/sql backed driver implementation
package dialect
