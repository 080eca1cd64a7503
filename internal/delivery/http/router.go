package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventregistration/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth guards every admin route; metrics serves the Prometheus scrape endpoint.
func NewRouter(
	eventTypes *controllers.EventTypeConfigController,
	actions *controllers.ActionController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
	metrics http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Event type configurations
	mux.HandleFunc("GET /event-types", requireAuth(eventTypes.ListEventTypes))
	mux.HandleFunc("GET /event-types/{configID}/delete", requireAuth(eventTypes.GetDeletionPrompt))
	mux.HandleFunc("POST /event-types/{configID}/delete", requireAuth(eventTypes.SubmitDeletion))

	// Message actions
	mux.HandleFunc("POST /actions", requireAuth(actions.CreateAction))
	mux.HandleFunc("GET /actions/{actionID}/form", requireAuth(actions.GetConfigurationForm))
	mux.HandleFunc("POST /actions/{actionID}/form", requireAuth(actions.SubmitConfigurationForm))
	mux.HandleFunc("PUT /actions/{actionID}/templates/{channel}", requireAuth(actions.UpdateTemplate))
	mux.HandleFunc("POST /actions/{actionID}/execute", requireAuth(actions.ExecuteAction))

	mux.Handle("GET /metrics", metrics)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
