// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// maxRequestBodySize bounds every request body, restaurant images included.
const maxRequestBodySize = 10 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecoverer)
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(withGZip, middleware.RequestSize(maxRequestBodySize))
	if h.cfg.RequestTimeout > 0 {
		router.Use(withTimeout(h.cfg.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/admin/login", h.adminLogin)
		r.With(h.auth, h.userOnly).Get("/me", h.currentUser)
	})

	router.Route("/restaurants", func(r chi.Router) {
		r.Get("/", h.listRestaurants)
		r.Get("/{id}", h.getRestaurant)
		r.Get("/{id}/comments", h.listRestaurantComments)

		r.Group(func(r chi.Router) {
			r.Use(h.auth, h.userOnly)
			r.Post("/", h.createRestaurant)
			r.Put("/{id}", h.updateRestaurant)
			r.Delete("/{id}", h.deleteRestaurant)
			r.Post("/{id}/comments", h.createComment)
		})
	})

	router.Route("/comments", func(r chi.Router) {
		r.Use(h.auth, h.userOnly)
		r.Put("/{id}", h.updateComment)
		r.Delete("/{id}", h.deleteComment)
	})

	router.Route("/users/{id}", func(r chi.Router) {
		r.Use(h.auth, h.userOnly)
		r.Get("/comments", h.listUserComments)
		r.Get("/restaurants", h.listUserRestaurants)
	})

	router.Route("/fanfan/leads", func(r chi.Router) {
		r.Post("/", h.createLead)
		r.With(h.auth, h.adminOnly).Get("/", h.listLeads)
	})

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}
