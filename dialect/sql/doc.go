// Package sql provides the database/sql backed implementation of the
// dialect.Driver interface consumed by generated repositories.
package sql
