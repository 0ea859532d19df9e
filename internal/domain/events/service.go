package events

import (
	"context"
	"net/url"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters Filters) ([]Event, error) {
	return s.repo.List(ctx, filters)
}

// Update applies a partial update to the event with the given id. The params
// are validated before the store is touched: an update with no fields fails
// with ErrNoFields even when the id does not exist.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Event, error) {
	if params.IsEmpty() {
		return nil, ErrNoFields
	}
	return s.repo.Update(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func ParseFilters(values url.Values) Filters {
	return Filters{
		PlayerID: strings.TrimSpace(values.Get("playerId")),
	}
}
