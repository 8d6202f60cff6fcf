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

//nolint:revive
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/petfriends-qa/api-tests/pkg/openapi"
	"github.com/petfriends-qa/api-tests/pkg/server/store"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	// maxFormMemory bounds the multipart data held in memory per request.
	maxFormMemory = 32 << 20
)

type userKey struct{}

// Handler implements the PetFriends REST API on top of a store.
type Handler struct {
	// store holds users and pets.
	store *store.Memory
}

func New(store *store.Memory) *Handler {
	return &Handler{
		store: store,
	}
}

type apiKeyResponse struct {
	Key string `json:"key"`
}

type petResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animal_type"`
	Age        string `json:"age"`
	PetPhoto   string `json:"pet_photo"`
	UserID     string `json:"user_id"`
	CreatedAt  string `json:"created_at"`
}

type petListResponse struct {
	Pets []petResponse `json:"pets"`
}

func convertPet(in store.Pet) petResponse {
	return petResponse{
		ID:         in.ID,
		Name:       in.Name,
		AnimalType: in.AnimalType,
		Age:        in.Age,
		PetPhoto:   in.Photo,
		UserID:     in.UserID,
		CreatedAt:  strconv.FormatFloat(float64(in.CreatedAt.UnixMilli())/1000, 'f', 3, 64),
	}
}

func writeJSONResponse(w http.ResponseWriter, r *http.Request, code int, response any) {
	body, err := json.Marshal(response)
	if err != nil {
		log.FromContext(r.Context()).Error(err, "failed to marshal response")
		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Add("Cache-Control", "no-cache")
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		log.FromContext(r.Context()).Error(err, "failed to write response")
	}
}

// handleError maps store errors to the statuses the service uses.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrUnauthorized):
		http.Error(w, "Please provide a valid 'auth_key' header", http.StatusForbidden)
	case errors.Is(err, store.ErrForbidden):
		http.Error(w, "This pet belongs to another user", http.StatusForbidden)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "Pet with this id wasn't found", http.StatusBadRequest)
	default:
		log.FromContext(r.Context()).Error(err, "unhandled error")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// RequireKey resolves the auth_key header to a user, rejecting the request
// with 403 when it is missing or unknown.
func (h *Handler) RequireKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.store.UserByKey(r.Header.Get("auth_key"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userKey{}, user)
		ctx = log.IntoContext(ctx, log.FromContext(ctx).WithValues("user", user.Email))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromContext(ctx context.Context) *store.User {
	//nolint:forcetypeassert // only reachable behind RequireKey
	return ctx.Value(userKey{}).(*store.User)
}

// parseForm accepts both multipart and url encoded bodies.
func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		return r.ParseMultipartForm(maxFormMemory)
	}

	return r.ParseForm()
}

// formValue returns a posted field, or nil when absent or blank.
func formValue(r *http.Request, name string) *string {
	values, ok := r.PostForm[name]
	if !ok || len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return nil
	}

	return &values[0]
}

// readPhoto encodes the uploaded photo as a data URI.  Only JPEG and PNG are
// rendered, anything else is accepted and silently dropped which is what the
// live service does with GIFs.
func readPhoto(r *http.Request) (string, error) {
	file, _, err := r.FormFile("pet_photo")
	if err != nil {
		return "", err
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	contentType := http.DetectContentType(data)

	switch contentType {
	case "image/jpeg", "image/png":
		return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
	}

	log.FromContext(r.Context()).Info("photo format not rendered", "contentType", contentType)

	return "", nil
}

type petAttributes struct {
	name       string
	animalType string
	age        string
}

// requiredAttributes reads the mandatory creation fields, writing a 400 and
// returning false when any is missing.
func requiredAttributes(w http.ResponseWriter, r *http.Request) (*petAttributes, bool) {
	if err := parseForm(r); err != nil {
		http.Error(w, "Unable to parse form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	name := formValue(r, "name")
	animalType := formValue(r, "animal_type")
	age := formValue(r, "age")

	if name == nil || animalType == nil || age == nil {
		http.Error(w, "Fields 'name', 'animal_type' and 'age' are required", http.StatusBadRequest)
		return nil, false
	}

	return &petAttributes{
		name:       *name,
		animalType: *animalType,
		age:        *age,
	}, true
}

func (h *Handler) GetApiKey(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.Authenticate(r.Header.Get("email"), r.Header.Get("password"))
	if err != nil {
		http.Error(w, "This user wasn't found in database", http.StatusForbidden)
		return
	}

	writeJSONResponse(w, r, http.StatusOK, &apiKeyResponse{Key: user.Key})
}

func (h *Handler) GetApiPets(w http.ResponseWriter, r *http.Request, filter *openapi.Filter) {
	var ownerID string

	if filter != nil {
		if err := filter.Validate(); err != nil {
			http.Error(w, "Filter value is incorrect", http.StatusBadRequest)
			return
		}

		if *filter == openapi.FilterMyPets {
			ownerID = userFromContext(r.Context()).ID
		}
	}

	pets := h.store.ListPets(ownerID)

	result := &petListResponse{
		Pets: make([]petResponse, len(pets)),
	}

	for i := range pets {
		result.Pets[i] = convertPet(pets[i])
	}

	writeJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostApiPets(w http.ResponseWriter, r *http.Request) {
	attributes, ok := requiredAttributes(w, r)
	if !ok {
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		http.Error(w, "Field 'pet_photo' is required", http.StatusBadRequest)
		return
	}

	user := userFromContext(r.Context())

	pet := h.store.CreatePet(user.ID, attributes.name, attributes.animalType, attributes.age, photo)

	log.FromContext(r.Context()).Info("pet created", "id", pet.ID)

	writeJSONResponse(w, r, http.StatusOK, convertPet(pet))
}

func (h *Handler) PostApiCreatePetSimple(w http.ResponseWriter, r *http.Request) {
	attributes, ok := requiredAttributes(w, r)
	if !ok {
		return
	}

	user := userFromContext(r.Context())

	pet := h.store.CreatePet(user.ID, attributes.name, attributes.animalType, attributes.age, "")

	log.FromContext(r.Context()).Info("pet created", "id", pet.ID)

	writeJSONResponse(w, r, http.StatusOK, convertPet(pet))
}

func (h *Handler) PostApiPetsSetPhotoPetID(w http.ResponseWriter, r *http.Request, petID string) {
	photo, err := readPhoto(r)
	if err != nil {
		http.Error(w, "Field 'pet_photo' is required", http.StatusBadRequest)
		return
	}

	pet, err := h.store.SetPhoto(userFromContext(r.Context()).ID, petID, photo)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSONResponse(w, r, http.StatusOK, convertPet(pet))
}

// PutApiPetsPetID updates a pet.  Ages are not validated, negative values
// are stored as given.
func (h *Handler) PutApiPetsPetID(w http.ResponseWriter, r *http.Request, petID string) {
	if err := parseForm(r); err != nil {
		http.Error(w, "Unable to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	update := store.PetUpdate{
		Name:       formValue(r, "name"),
		AnimalType: formValue(r, "animal_type"),
		Age:        formValue(r, "age"),
	}

	pet, err := h.store.UpdatePet(userFromContext(r.Context()).ID, petID, update)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSONResponse(w, r, http.StatusOK, convertPet(pet))
}

func (h *Handler) DeleteApiPetsPetID(w http.ResponseWriter, r *http.Request, petID string) {
	if err := h.store.DeletePet(userFromContext(r.Context()).ID, petID); err != nil {
		handleError(w, r, err)
		return
	}

	log.FromContext(r.Context()).Info("pet deleted", "id", petID)

	w.WriteHeader(http.StatusOK)
}
