package valid

import (
	"context"

	"github.com/google/uuid"

	"github.com/syssam/repogen"
)

// User is the entity managed by UserRepository.
type User struct {
	ID   uuid.UUID
	Name string
}

// UserRepository is the data-access contract for User entities.
type UserRepository interface {
	repogen.Repository[User, uuid.UUID]

	// FindByName returns the users with the given name.
	FindByName(ctx context.Context, name string) ([]User, error)

	//repogen:custom
	CustomLookup(ctx context.Context) ([]User, error)

	//repogen:provided
	Helper()

	// Reindex rebuilds the repository's secondary indexes.
	Reindex(ctx context.Context)
}

// auditLog is unexported and must not be picked up as a contract.
type auditLog interface {
	Record(ctx context.Context, message string) error
}
