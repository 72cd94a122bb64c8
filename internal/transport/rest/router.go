package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/yuchingtw/trip-companion/internal/itinerary"
	"github.com/yuchingtw/trip-companion/internal/ledger"
	"github.com/yuchingtw/trip-companion/internal/location"
	"github.com/yuchingtw/trip-companion/internal/transport/middleware"
	"github.com/yuchingtw/trip-companion/internal/transport/swagger"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, allowedOrigins string, ledgerHandler *ledger.Handler, itineraryHandler *itinerary.Handler, locationHandler *location.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if ledgerHandler != nil {
			r.Route("/ledger", func(lr chi.Router) {
				lr.Get("/", ledgerHandler.GetLedger)
				lr.Post("/records", ledgerHandler.CreateRecord)
				lr.Put("/records/{rowIndex}", ledgerHandler.UpdateRecord)
				lr.Delete("/records/{rowIndex}", ledgerHandler.DeleteRecord)
			})
		}

		if itineraryHandler != nil {
			r.Route("/itinerary", func(ir chi.Router) {
				ir.Get("/", itineraryHandler.GetItinerary)
				ir.Get("/{day}", itineraryHandler.GetDay)
				ir.Post("/{day}/events", itineraryHandler.CreateEvent)
				ir.Put("/{day}/events/{id}", itineraryHandler.UpdateEvent)
				ir.Delete("/{day}/events/{id}", itineraryHandler.DeleteEvent)
			})
		}

		if locationHandler != nil {
			r.Get("/locations", locationHandler.GetLocations)
			r.Get("/locations/{id}", locationHandler.GetLocation)
		}
	})
}
