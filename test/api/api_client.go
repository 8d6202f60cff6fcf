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

//nolint:err113,revive // dynamic errors and naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"

	"github.com/petfriends-qa/api-tests/pkg/openapi"
)

const (
	// FilterAll lists every pet.
	FilterAll = string(openapi.FilterAll)

	// FilterMyPets lists the caller's pets only.
	FilterMyPets = string(openapi.FilterMyPets)

	// InvalidAuthKey is a key the service never issues.
	InvalidAuthKey = "123"

	authKeyHeader = "auth_key"
)

// Response is the status code and decoded body of every call.  Body is
// empty when the payload is not a JSON object, Text always has the raw
// payload.
type Response struct {
	StatusCode int
	Body       map[string]interface{}
	Text       string

	// ContractError is set when contract validation is enabled and the
	// response does not conform to it.
	ContractError error
}

// String returns a string field of the body, or the empty string.
func (r *Response) String(key string) string {
	if value, ok := r.Body[key].(string); ok {
		return value
	}

	return ""
}

// Pets returns the pet records of a listing.
func (r *Response) Pets() []map[string]interface{} {
	items, ok := r.Body["pets"].([]interface{})
	if !ok {
		return nil
	}

	pets := make([]map[string]interface{}, 0, len(items))

	for _, item := range items {
		if pet, ok := item.(map[string]interface{}); ok {
			pets = append(pets, pet)
		}
	}

	return pets
}

// PetForm holds the pet attributes sent on create and update.  A nil field
// is left out of the request entirely.
type PetForm struct {
	Name       *string
	AnimalType *string
	Age        *string
}

// fields returns the populated attributes in wire form.
func (f PetForm) fields() map[string]string {
	fields := map[string]string{}

	if f.Name != nil {
		fields["name"] = *f.Name
	}

	if f.AnimalType != nil {
		fields["animal_type"] = *f.AnimalType
	}

	if f.Age != nil {
		fields["age"] = *f.Age
	}

	return fields
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
	validator *openapi.Validator
}

var _ PetsInterface = &APIClient{}

func NewAPIClientWithConfig(config *TestConfig) (*APIClient, error) {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// NewAPIClient creates a client for the given URL, other settings come from config.
func NewAPIClient(config *TestConfig, baseURL string) (*APIClient, error) {
	return newAPIClientWithConfig(config, baseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) (*APIClient, error) {
	c := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}

	if config.ValidateContract {
		validator, err := openapi.NewValidator()
		if err != nil {
			return nil, err
		}

		c.validator = validator
	}

	return c, nil
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// requestBody is an encoded payload and its content type.
type requestBody struct {
	contentType string
	data        []byte
}

// doRequest performs a single attempt and returns whatever the service said.
// Only transport and request construction failures are errors, the status
// code is left for the caller to judge; expectedStatus only drives logging.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, header http.Header, body *requestBody, expectedStatus int) (*Response, error) {
	fullURL := c.baseURL + path

	var reader io.Reader

	if body != nil {
		reader = bytes.NewReader(body.data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for name, values := range header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", body.contentType)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Body:       map[string]interface{}{},
		Text:       string(respBody),
	}

	// Non JSON payloads, HTML error pages for example, stay in Text.
	var decoded map[string]interface{}
	if err := json.Unmarshal(respBody, &decoded); err == nil && decoded != nil {
		response.Body = decoded
	}

	if c.validator != nil {
		if err := c.validator.ValidateResponse(ctx, req, resp.StatusCode, resp.Header, respBody); err != nil {
			ginkgo.GinkgoWriter.Printf("[%s %s] CONTRACT VIOLATION %v traceparent=%s\n", method, path, err, traceParent)

			response.ContractError = err
		}
	}

	return response, nil
}

func authHeader(authKey string) http.Header {
	header := http.Header{}
	header.Set(authKeyHeader, authKey)

	return header
}

// errMissingPhoto marks a photo path that does not exist.
type errMissingPhoto struct {
	path string
	err  error
}

func (e *errMissingPhoto) Error() string {
	return fmt.Sprintf("pet photo %s: %v", e.path, e.err)
}

func (e *errMissingPhoto) Unwrap() error {
	return e.err
}

// encodeForm builds a multipart body from the fields and, if set, the photo.
func encodeForm(fields map[string]string, photoPath string) (*requestBody, error) {
	var buffer bytes.Buffer

	writer := multipart.NewWriter(&buffer)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("writing form field %s: %w", name, err)
		}
	}

	if photoPath != "" {
		photo, err := os.ReadFile(photoPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &errMissingPhoto{path: photoPath, err: err}
			}

			return nil, fmt.Errorf("reading pet photo: %w", err)
		}

		contentType := mime.TypeByExtension(filepath.Ext(photoPath))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		partHeader := textproto.MIMEHeader{}
		partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pet_photo"; filename=%q`, filepath.Base(photoPath)))
		partHeader.Set("Content-Type", contentType)

		part, err := writer.CreatePart(partHeader)
		if err != nil {
			return nil, fmt.Errorf("creating photo part: %w", err)
		}

		if _, err := part.Write(photo); err != nil {
			return nil, fmt.Errorf("writing photo part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing form: %w", err)
	}

	return &requestBody{
		contentType: writer.FormDataContentType(),
		data:        buffer.Bytes(),
	}, nil
}

// missingPhotoResponse is returned in place of a request that could not be
// sent because the photo does not exist.  It mirrors a service side
// validation failure and echoes the submitted attributes.
func missingPhotoResponse(method, path string, fields map[string]string, err error) *Response {
	ginkgo.GinkgoWriter.Printf("[%s %s] NOT SENT %v\n", method, path, err)

	body := map[string]interface{}{
		"error": err.Error(),
	}

	for name, value := range fields {
		body[name] = value
	}

	text, _ := json.Marshal(body)

	return &Response{
		StatusCode: http.StatusBadRequest,
		Body:       body,
		Text:       string(text),
	}
}

// postForm sends a multipart form, answering missing photos locally.
func (c *APIClient) postForm(ctx context.Context, method, path, authKey string, fields map[string]string, photoPath string) (*Response, error) {
	body, err := encodeForm(fields, photoPath)
	if err != nil {
		var missing *errMissingPhoto
		if errors.As(err, &missing) {
			return missingPhotoResponse(method, path, fields, err), nil
		}

		return nil, err
	}

	return c.doRequest(ctx, method, path, authHeader(authKey), body, http.StatusOK)
}

// GetAPIKey requests the key of a user, the key is in the "key" field.
func (c *APIClient) GetAPIKey(ctx context.Context, email, password string) (*Response, error) {
	header := http.Header{}
	header.Set("email", email)
	header.Set("password", password)

	return c.doRequest(ctx, http.MethodGet, c.endpoints.GetAPIKey(), header, nil, http.StatusOK)
}

// GetListOfPets lists pets, filter is FilterAll or FilterMyPets.
func (c *APIClient) GetListOfPets(ctx context.Context, authKey, filter string) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, c.endpoints.ListPets(filter), authHeader(authKey), nil, http.StatusOK)
}

// AddNewPet creates a pet with a photo.
func (c *APIClient) AddNewPet(ctx context.Context, authKey string, pet PetForm, photoPath string) (*Response, error) {
	if photoPath == "" {
		return missingPhotoResponse(http.MethodPost, c.endpoints.CreatePet(), pet.fields(), errors.New("pet photo path is empty")), nil
	}

	return c.postForm(ctx, http.MethodPost, c.endpoints.CreatePet(), authKey, pet.fields(), photoPath)
}

// AddNewPetNoPhoto creates a pet without a photo.
func (c *APIClient) AddNewPetNoPhoto(ctx context.Context, authKey string, pet PetForm) (*Response, error) {
	return c.postForm(ctx, http.MethodPost, c.endpoints.CreatePetSimple(), authKey, pet.fields(), "")
}

// AddPhotoToPet attaches a photo to an existing pet.
func (c *APIClient) AddPhotoToPet(ctx context.Context, authKey, petID, photoPath string) (*Response, error) {
	if photoPath == "" {
		return missingPhotoResponse(http.MethodPost, c.endpoints.SetPetPhoto(petID), nil, errors.New("pet photo path is empty")), nil
	}

	return c.postForm(ctx, http.MethodPost, c.endpoints.SetPetPhoto(petID), authKey, nil, photoPath)
}

// UpdatePetInfo changes the attributes of an existing pet.
func (c *APIClient) UpdatePetInfo(ctx context.Context, authKey, petID string, pet PetForm) (*Response, error) {
	return c.postForm(ctx, http.MethodPut, c.endpoints.UpdatePet(petID), authKey, pet.fields(), "")
}

// DeletePet removes a pet.
func (c *APIClient) DeletePet(ctx context.Context, authKey, petID string) (*Response, error) {
	return c.doRequest(ctx, http.MethodDelete, c.endpoints.DeletePet(petID), authHeader(authKey), nil, http.StatusOK)
}

// AddNewPetWithInvalidAuthKey sends a creation request with a key that must
// be rejected, InvalidAuthKey when none is given.  It exists solely to drive
// the 403 path and logs no unexpected status for it.
func (c *APIClient) AddNewPetWithInvalidAuthKey(ctx context.Context, authKey string, pet PetForm, photoPath string) (*Response, error) {
	if authKey == "" {
		authKey = InvalidAuthKey
	}

	body, err := encodeForm(pet.fields(), photoPath)
	if err != nil {
		var missing *errMissingPhoto
		if errors.As(err, &missing) {
			return missingPhotoResponse(http.MethodPost, c.endpoints.CreatePet(), pet.fields(), err), nil
		}

		return nil, err
	}

	return c.doRequest(ctx, http.MethodPost, c.endpoints.CreatePet(), authHeader(authKey), body, http.StatusForbidden)
}
