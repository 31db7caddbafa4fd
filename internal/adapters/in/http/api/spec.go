// Package api holds the HTTP contract: the embedded OpenAPI document, the wire models
// and the echo server interface with its parameter-binding wrapper. It follows the
// layout oapi-codegen produces for echo servers.
package api

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var rawSpec []byte

// GetSwagger parses and validates the embedded OpenAPI document. Every call returns a
// fresh copy that the caller may modify.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}
	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}
	return swagger, nil
}
