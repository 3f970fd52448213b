// Package repogen declares the base data-access contract and the runtime
// registry that maps contracts to their generated implementations.
//
// A contract is an interface that embeds Repository and optionally adds
// derived query methods. The compiler packages (compiler/load, compiler/gen)
// turn a contract into a concrete implementation type and record the mapping
// in a registry file that this package can read back at runtime.
package repogen

import "context"

// Repository is the base CRUD contract. Every generated repository
// implements a contract that embeds this interface. The method set below is
// considered "base": the generator never synthesizes bodies for it.
type Repository[T any, ID comparable] interface {
	// Find returns the entity with the given id.
	Find(ctx context.Context, id ID) (T, error)

	// FindAll returns all entities.
	FindAll(ctx context.Context) ([]T, error)

	// Save persists the given entity and returns the stored value.
	Save(ctx context.Context, entity T) (T, error)

	// Delete removes the entity with the given id.
	Delete(ctx context.Context, id ID) error

	// Count returns the number of stored entities.
	Count(ctx context.Context) (int64, error)

	// Exists reports whether an entity with the given id exists.
	Exists(ctx context.Context, id ID) (bool, error)
}
