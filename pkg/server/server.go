/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package server implements a local stand-in for the GoRest users API.  It
// follows the remote contract closely enough for the scenario catalog to run
// without network access: 200 on every successful operation, a message
// envelope for 401 and 404, and a field error list for 422.
package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/gorest-automation/users/pkg/openapi"
)

// DefaultFirstID keeps generated IDs in the same range as the public service.
const DefaultFirstID = 7000001

type Server struct {
	// store holds all users.
	store *Store

	// tokens are the accepted bearer tokens.
	tokens map[string]struct{}

	// logger records one line per request.
	logger logr.Logger
}

type Option func(*Server)

// WithTokens sets the bearer tokens the server accepts.
func WithTokens(tokens ...string) Option {
	return func(s *Server) {
		for _, token := range tokens {
			s.tokens[token] = struct{}{}
		}
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithStore replaces the default store, mostly useful for seeding.
func WithStore(store *Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

func New(options ...Option) *Server {
	s := &Server{
		store:  NewStore(DefaultFirstID),
		tokens: map[string]struct{}{},
		logger: logr.Discard(),
	}

	for _, o := range options {
		o(s)
	}

	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.logRequests)
	router.Use(s.authenticate)

	router.Post("/users", s.createUser)
	router.Get("/users/{id}", s.getUser)
	router.Put("/users/{id}", s.updateUser)
	router.Delete("/users/{id}", s.deleteUser)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, openapi.MessageNotFound)
	})

	return router
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.V(1).Info("request served", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start), "traceparent", r.Header.Get("Traceparent"))
	})
}

// authenticate rejects unknown bearer tokens.  Reads may be anonymous, any
// other method requires a token.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		if header == "" {
			if r.Method == http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			writeMessage(w, http.StatusUnauthorized, openapi.MessageAuthenticationFailed)

			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeMessage(w, http.StatusUnauthorized, openapi.MessageAuthenticationFailed)
			return
		}

		if _, ok := s.tokens[token]; !ok {
			writeMessage(w, http.StatusUnauthorized, openapi.MessageAuthenticationFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
