/*
Copyright 2026 the PetFriends QA Authors.

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

// Package server provides an in memory stand in for the PetFriends service
// so the API suites can run without network access.
package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-logr/logr"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/spf13/pflag"

	"github.com/petfriends-qa/api-tests/pkg/openapi"
	"github.com/petfriends-qa/api-tests/pkg/server/handler"
	"github.com/petfriends-qa/api-tests/pkg/server/store"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	// SeedEmail owns the pets created at start up.
	SeedEmail = "seed@petfriends.local"

	seedPassword = "seed"
)

// Options allows the service to be configured.
type Options struct {
	// Email and Password are the credentials of the test account.
	Email    string
	Password string

	// SeedPets is the number of pets owned by another account at start up,
	// so listing all pets never comes back empty.
	SeedPets int
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.Email, "email", "tester@petfriends.local", "Email of the test account.")
	f.StringVar(&o.Password, "password", "secret", "Password of the test account.")
	f.IntVar(&o.SeedPets, "seed-pets", 3, "Number of pets owned by another account at start up.")
}

// Server is a configured service instance.
type Server struct {
	// Store is exposed so tests can inspect and prepare state.
	Store *store.Memory

	handler *handler.Handler
	logger  logr.Logger
}

// New creates the accounts and seed data described by the options.
func New(options *Options) (*Server, error) {
	s := store.NewMemory()

	if _, err := s.AddUser(options.Email, options.Password); err != nil {
		return nil, fmt.Errorf("creating test account: %w", err)
	}

	seed, err := s.AddUser(SeedEmail, seedPassword)
	if err != nil {
		return nil, fmt.Errorf("creating seed account: %w", err)
	}

	for i := range options.SeedPets {
		s.CreatePet(seed.ID, fmt.Sprintf("seed-%d", i+1), "cat", "2", "")
	}

	return &Server{
		Store:   s,
		handler: handler.New(s),
		logger:  log.Log.WithName("petfriends"),
	}, nil
}

// logging attaches a request scoped logger to the context.
func logging(base logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := base.WithValues("method", r.Method, "path", r.URL.Path, "requestID", middleware.GetReqID(r.Context()))

			logger.V(1).Info("request received")

			next.ServeHTTP(w, r.WithContext(log.IntoContext(r.Context(), logger)))
		})
	}
}

// badParameter reports parameter binding failures.
func badParameter(w http.ResponseWriter, name string, err error) {
	http.Error(w, fmt.Sprintf("invalid parameter %s: %v", name, err), http.StatusBadRequest)
}

// petID binds the pet_id path parameter.
func petID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string

	if err := runtime.BindStyledParameterWithOptions("simple", "pet_id", chi.URLParam(r, "pet_id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true}); err != nil {
		badParameter(w, "pet_id", err)
		return "", false
	}

	return id, true
}

// Handler returns the HTTP routes of the service.
func (s *Server) Handler() http.Handler {
	h := s.handler

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(logging(s.logger))
	router.Use(middleware.Recoverer)

	router.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")

		if _, err := w.Write(openapi.Spec()); err != nil {
			log.FromContext(r.Context()).Error(err, "failed to write schema")
		}
	})

	router.Get("/api/key", h.GetApiKey)

	router.Group(func(r chi.Router) {
		r.Use(h.RequireKey)

		r.Get("/api/pets", func(w http.ResponseWriter, r *http.Request) {
			var filter *openapi.Filter

			if err := runtime.BindQueryParameter("form", true, false, "filter", r.URL.Query(), &filter); err != nil {
				badParameter(w, "filter", err)
				return
			}

			h.GetApiPets(w, r, filter)
		})

		r.Post("/api/pets", h.PostApiPets)
		r.Post("/api/create_pet_simple", h.PostApiCreatePetSimple)

		r.Post("/api/pets/set_photo/{pet_id}", func(w http.ResponseWriter, r *http.Request) {
			if id, ok := petID(w, r); ok {
				h.PostApiPetsSetPhotoPetID(w, r, id)
			}
		})

		r.Put("/api/pets/{pet_id}", func(w http.ResponseWriter, r *http.Request) {
			if id, ok := petID(w, r); ok {
				h.PutApiPetsPetID(w, r, id)
			}
		})

		r.Delete("/api/pets/{pet_id}", func(w http.ResponseWriter, r *http.Request) {
			if id, ok := petID(w, r); ok {
				h.DeleteApiPetsPetID(w, r, id)
			}
		})
	})

	return router
}
