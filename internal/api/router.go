package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/hobbiton-games/quiz-admin/internal/api/handlers"
	"github.com/hobbiton-games/quiz-admin/internal/api/middleware"
	"github.com/hobbiton-games/quiz-admin/internal/config"
	"github.com/hobbiton-games/quiz-admin/internal/domain/events"
	"github.com/hobbiton-games/quiz-admin/internal/metrics"
	"github.com/hobbiton-games/quiz-admin/internal/notify"
	"github.com/hobbiton-games/quiz-admin/internal/storage/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewRouter wires the admin API: CORS and request plumbing on the outside,
// credential checking on the admin routes only.
func NewRouter(cfg config.Config, logger zerolog.Logger, pool *pgxpool.Pool) (http.Handler, error) {
	repo, err := postgres.NewEventRepository(pool)
	if err != nil {
		return nil, err
	}

	service := events.NewService(repo)
	notifier := notify.NewNotifier(cfg.Webhooks, logger)
	eventsHandler := handlers.NewEventsHandler(service, notifier)

	adminAuth := middleware.AdminAuth(cfg.Admin)

	mux := http.NewServeMux()
	mux.Handle("/api/health", handlers.Health())
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/api/admin/events", methodMux(map[string]http.Handler{
		http.MethodGet: adminAuth(http.HandlerFunc(eventsHandler.List)),
	}))
	mux.Handle("/api/admin/events/{id}", methodMux(map[string]http.Handler{
		http.MethodPatch:  adminAuth(http.HandlerFunc(eventsHandler.Update)),
		http.MethodDelete: adminAuth(http.HandlerFunc(eventsHandler.Delete)),
	}))

	var handler http.Handler = mux
	handler = middleware.Recovery(logger)(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	return handler, nil
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
