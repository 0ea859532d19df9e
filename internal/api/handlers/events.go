package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hobbiton-games/quiz-admin/internal/api/respond"
	"github.com/hobbiton-games/quiz-admin/internal/domain/events"
)

// EventService defines the store operations the handler depends on
type EventService interface {
	List(ctx context.Context, filters events.Filters) ([]events.Event, error)
	Update(ctx context.Context, id int64, params events.UpdateParams) (*events.Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventNotifier fires best-effort webhook notifications after mutations.
// Implementations must return without waiting on delivery.
type EventNotifier interface {
	EventUpdated(event events.Event)
	EventDeleted(id int64)
}

// EventsHandler handles the admin event CRUD routes
type EventsHandler struct {
	service  EventService
	notifier EventNotifier
}

func NewEventsHandler(service EventService, notifier EventNotifier) *EventsHandler {
	return &EventsHandler{service: service, notifier: notifier}
}

// EventResponse represents an event record in API responses
type EventResponse struct {
	ID             int64     `json:"id"`
	PlayerID       string    `json:"playerId"`
	HobbitName     string    `json:"hobbitName"`
	EventType      string    `json:"eventType"`
	EventTimestamp time.Time `json:"eventTimestamp"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UpdateEventRequest represents the PATCH body. Absent fields stay untouched.
type UpdateEventRequest struct {
	HobbitName *string `json:"hobbitName,omitempty"`
	EventType  *string `json:"eventType,omitempty"`
}

func toEventResponse(event events.Event) EventResponse {
	return EventResponse{
		ID:             event.ID,
		PlayerID:       event.PlayerID,
		HobbitName:     event.HobbitName,
		EventType:      event.EventType,
		EventTimestamp: event.EventTimestamp,
		CreatedAt:      event.CreatedAt,
	}
}

// List handles GET /api/admin/events
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := events.ParseFilters(r.URL.Query())

	items, err := h.service.List(r.Context(), filters)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "internal server error", err)
		return
	}

	responses := make([]EventResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toEventResponse(item))
	}
	respond.JSON(w, http.StatusOK, responses)
}

// Update handles PATCH /api/admin/events/{id}
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		respond.Error(w, r, http.StatusNotFound, "event not found", nil)
		return
	}

	var req UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	params := events.UpdateParams{
		HobbitName: req.HobbitName,
		EventType:  req.EventType,
	}

	updated, err := h.service.Update(r.Context(), id, params)
	switch {
	case errors.Is(err, events.ErrNoFields):
		respond.Error(w, r, http.StatusBadRequest, "no updatable fields provided", err)
		return
	case errors.Is(err, events.ErrNotFound):
		respond.Error(w, r, http.StatusNotFound, "event not found", err)
		return
	case err != nil:
		respond.Error(w, r, http.StatusInternalServerError, "internal server error", err)
		return
	}

	respond.JSON(w, http.StatusOK, toEventResponse(*updated))

	// Notify only after the response is written; delivery is never awaited.
	h.notifier.EventUpdated(*updated)
}

// Delete handles DELETE /api/admin/events/{id}
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		respond.Error(w, r, http.StatusNotFound, "event not found", nil)
		return
	}

	err := h.service.Delete(r.Context(), id)
	switch {
	case errors.Is(err, events.ErrNotFound):
		respond.Error(w, r, http.StatusNotFound, "event not found", err)
		return
	case err != nil:
		respond.Error(w, r, http.StatusInternalServerError, "internal server error", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)

	h.notifier.EventDeleted(id)
}

func eventID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
