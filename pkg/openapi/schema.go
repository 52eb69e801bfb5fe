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

package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

//go:embed users.spec.yaml
var spec []byte

var (
	ErrUnknownRoute     = errors.New("route is not described by the schema")
	ErrUnknownOperation = errors.New("operation is not described by the schema")
	ErrMissingRequest   = errors.New("response has no originating request")
)

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating schema: %w", err)
	}

	return doc, nil
}

// Validator checks responses against the OpenAPI document.  Routes are
// resolved by path template rather than by URL so the same document can be
// applied to any base URL, including ones with a path prefix.
type Validator struct {
	doc *openapi3.T
}

// NewValidator returns a validator for the embedded document.
func NewValidator() (*Validator, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	return &Validator{
		doc: doc,
	}, nil
}

func (v *Validator) route(method, path string) (*routers.Route, error) {
	pathItem := v.doc.Paths.Value(path)
	if pathItem == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}

	operation := pathItem.GetOperation(method)
	if operation == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrUnknownOperation, method, path)
	}

	route := &routers.Route{
		Spec:      v.doc,
		Path:      path,
		PathItem:  pathItem,
		Method:    method,
		Operation: operation,
	}

	return route, nil
}

// ValidateResponse checks the status code, content type and body of a
// response to the request against the operation at the path template.
// Undocumented status codes are rejected.
func (v *Validator) ValidateResponse(ctx context.Context, req *http.Request, path string, status int, header http.Header, body []byte) error {
	if req == nil {
		return ErrMissingRequest
	}

	route, err := v.route(req.Method, path)
	if err != nil {
		return err
	}

	options := &openapi3filter.Options{
		IncludeResponseStatus: true,
		AuthenticationFunc:    openapi3filter.NoopAuthenticationFunc,
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request: req,
			Route:   route,
			Options: options,
		},
		Status:  status,
		Header:  header,
		Options: options,
	}

	input.SetBodyBytes(body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, path, err)
	}

	return nil
}
