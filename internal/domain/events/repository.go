package events

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("event not found")

// ErrNoFields is returned when an update request carries none of the mutable
// columns. It is reported before any store access.
var ErrNoFields = errors.New("no updatable fields provided")

// Event is a single quiz event row. Only HobbitName and EventType are mutable
// through this API; everything else is assigned by the ingestion path.
type Event struct {
	ID             int64
	PlayerID       string
	HobbitName     string
	EventType      string
	EventTimestamp time.Time
	CreatedAt      time.Time
}

// UpdateParams carries the optional mutable columns of a partial update. A nil
// slot leaves the column untouched.
type UpdateParams struct {
	HobbitName *string
	EventType  *string
}

// IsEmpty reports whether no column was supplied at all.
func (p UpdateParams) IsEmpty() bool {
	return p.HobbitName == nil && p.EventType == nil
}

type Filters struct {
	PlayerID string
}

type Repository interface {
	List(ctx context.Context, filters Filters) ([]Event, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*Event, error)
	Delete(ctx context.Context, id int64) error
}
