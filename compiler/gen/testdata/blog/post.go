// Package blog declares a contract used to type-check generated output.
package blog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/syssam/repogen"
)

// Post is the persisted entity of the fixture.
type Post struct {
	ID        uuid.UUID
	Title     string
	Published bool
	CreatedAt time.Time
}

// PostRepository is the data-access contract for posts.
type PostRepository interface {
	repogen.Repository[Post, uuid.UUID]

	// FindPublished returns all published posts.
	FindPublished(ctx context.Context) ([]Post, error)

	// FindByTitle returns the post with the given title.
	FindByTitle(ctx context.Context, title string) (Post, error)

	// CountPublishedSince reports how many posts were published after t.
	CountPublishedSince(ctx context.Context, t time.Time) (int64, error)

	// Prune deletes posts older than t.
	Prune(ctx context.Context, t time.Time) error
}
