package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/step-tracker/docs"
	"github.com/blaisecz/step-tracker/internal/api/handler"
	"github.com/blaisecz/step-tracker/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler   *handler.UserHandler
	stepHandler   *handler.StepHandler
	adviceHandler *handler.AdviceHandler
	rateLimit     func(http.Handler) http.Handler
}

func NewRouter(userHandler *handler.UserHandler, stepHandler *handler.StepHandler, adviceHandler *handler.AdviceHandler) *Router {
	return &Router{
		userHandler:   userHandler,
		stepHandler:   stepHandler,
		adviceHandler: adviceHandler,
	}
}

// WithRateLimit applies mw to every /v1 route.
func (rt *Router) WithRateLimit(mw func(http.Handler) http.Handler) *Router {
	rt.rateLimit = mw
	return rt
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		if rt.rateLimit != nil {
			r.Use(rt.rateLimit)
		}

		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Put("/{userId}/goal", rt.userHandler.UpdateGoal)

			// Daily step records (nested under users)
			r.Route("/{userId}/steps", func(r chi.Router) {
				r.Put("/", rt.stepHandler.Upsert)
				r.Get("/", rt.stepHandler.List)
				r.Get("/summary", rt.stepHandler.Summary)
				r.Get("/streak", rt.stepHandler.Streak)
				r.Get("/advice", rt.adviceHandler.GetAdvice)
				r.Post("/advice/feedback", rt.adviceHandler.PostFeedback)
			})
		})
	})

	return r
}
