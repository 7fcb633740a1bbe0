package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"qr-dine/internal/config"
	"qr-dine/internal/handlers"
	"qr-dine/internal/middleware"
	"qr-dine/internal/service"
)

func NewRouter(svc *service.Service, logger *zap.Logger, cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))

	if cfg.Env == "development" || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}
		if cfg.Env == "development" {
			options.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}
		r.Use(cors.Handler(options))
	}

	h := handlers.New(svc, logger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/orders", h.PlaceOrder)
		r.Get("/items/{id}", h.GetItem)
		r.Get("/restaurants/{restaurantId}", h.GetRestaurant)
		r.Get("/restaurants/{restaurantId}/items", h.ListItems)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWTSecret))

			r.Post("/items", h.AddItem)
			r.Patch("/items/{id}", h.UpdateItem)
			r.Delete("/items/{id}", h.DeleteItem)

			r.Post("/restaurants", h.CreateRestaurant)
			r.Patch("/restaurants/{restaurantId}", h.UpdateRestaurant)

			r.Get("/orders/all", h.ListOrders)
			r.Patch("/orders/{orderId}", h.CompleteOrder)

			// Registered with and without the id so a missing id reaches
			// the handler and answers 400 instead of 404.
			r.Get("/dashboard/earnings", h.EarningDetails)
			r.Get("/dashboard/earnings/{restaurantId}", h.EarningDetails)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
