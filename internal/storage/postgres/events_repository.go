package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hobbiton-games/quiz-admin/internal/domain/events"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ events.Repository = (*EventRepository)(nil)

const eventColumns = "id, player_id, hobbit_name, event_type, event_timestamp, created_at"

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) (*EventRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres event repository: pool is nil")
	}
	return &EventRepository{pool: pool}, nil
}

type eventRow struct {
	ID             int64
	PlayerID       string
	HobbitName     string
	EventType      string
	EventTimestamp pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
}

func (r *EventRepository) List(ctx context.Context, filters events.Filters) ([]events.Event, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+eventColumns+`
  FROM quiz_events
 WHERE ($1 = '' OR player_id = $1)
 ORDER BY id DESC
`, filters.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	items := make([]events.Event, 0)
	for rows.Next() {
		var row eventRow
		if err := rows.Scan(&row.ID, &row.PlayerID, &row.HobbitName, &row.EventType, &row.EventTimestamp, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		items = append(items, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return items, nil
}

func (r *EventRepository) Update(ctx context.Context, id int64, params events.UpdateParams) (*events.Event, error) {
	setClause, args := buildUpdateSet(params)
	if setClause == "" {
		return nil, events.ErrNoFields
	}

	query := fmt.Sprintf(`UPDATE quiz_events SET %s WHERE id = $%d RETURNING %s`,
		setClause, len(args)+1, eventColumns)
	args = append(args, id)

	var row eventRow
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&row.ID, &row.PlayerID, &row.HobbitName, &row.EventType, &row.EventTimestamp, &row.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, events.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update event %d: %w", id, err)
	}

	event := row.toDomain()
	return &event, nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	var deletedID int64
	err := r.pool.QueryRow(ctx, `DELETE FROM quiz_events WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return events.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	return nil
}

// buildUpdateSet translates the optional update slots into a SET clause with
// positional placeholders, in fixed column order. Values are always bound,
// never interpolated.
func buildUpdateSet(params events.UpdateParams) (string, []any) {
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if params.HobbitName != nil {
		args = append(args, *params.HobbitName)
		clauses = append(clauses, fmt.Sprintf("hobbit_name = $%d", len(args)))
	}
	if params.EventType != nil {
		args = append(args, *params.EventType)
		clauses = append(clauses, fmt.Sprintf("event_type = $%d", len(args)))
	}
	return strings.Join(clauses, ", "), args
}

func (row eventRow) toDomain() events.Event {
	event := events.Event{
		ID:         row.ID,
		PlayerID:   row.PlayerID,
		HobbitName: row.HobbitName,
		EventType:  row.EventType,
	}
	if row.EventTimestamp.Valid {
		event.EventTimestamp = row.EventTimestamp.Time
	} else {
		event.EventTimestamp = time.Time{}
	}
	if row.CreatedAt.Valid {
		event.CreatedAt = row.CreatedAt.Time
	}
	return event
}
