// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Init builds the router with every route of the REST API.
//
// /auth/* and /version are public. /users and /bookmarks require a valid
// bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.cors().Handler)
	router.Use(h.withTraceID, withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// routes without authorization
	router.Get("/version", h.getServerVersion)
	router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/signin", h.signin)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.getMe)
		r.Patch("/users", h.editUser)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", h.getBookmarks)
			r.Post("/", h.createBookmark)
			r.Get("/{id}", h.getBookmarkByID)
			r.Patch("/{id}", h.editBookmarkByID)
			r.Delete("/{id}", h.deleteBookmarkByID)
		})
	})

	return router
}

func (h *Handler) cors() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: h.corsAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
	})
}
