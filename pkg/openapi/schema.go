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

// Package openapi holds the contract of the PetFriends REST API.
package openapi

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
)

//go:embed petfriends.yaml
var document []byte

// Spec returns the raw OpenAPI document.
func Spec() []byte {
	return document
}

// Schema loads and validates the OpenAPI document.
func Schema() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("loading openapi schema: %w", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validating openapi schema: %w", err)
	}

	return doc, nil
}

// Validator checks responses against the documented contract.
type Validator struct {
	router routers.Router
}

// NewValidator builds a validator over the embedded document.
func NewValidator() (*Validator, error) {
	doc, err := Schema()
	if err != nil {
		return nil, err
	}

	// The document carries no servers so routes match on path alone,
	// whatever host the service is deployed on.
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("creating openapi router: %w", err)
	}

	return &Validator{
		router: router,
	}, nil
}

// ValidateResponse checks a response to the given request.  Statuses that
// are not documented, or documented without content, are accepted.
func (v *Validator) ValidateResponse(ctx context.Context, req *http.Request, status int, header http.Header, body []byte) error {
	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("finding route for %s %s: %w", req.Method, req.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: status,
		Header: header,
		Body:   http.NoBody,
	}

	if len(body) > 0 {
		input.SetBodyBytes(bytes.Clone(body))
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("response to %s %s violates contract: %w", req.Method, req.URL.Path, err)
	}

	return nil
}
