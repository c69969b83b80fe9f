// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
	"github.com/lamnguyen/shopora/internal/platform/ctxutil"
	"github.com/lamnguyen/shopora/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
SessionID extracts the client session ID from the request context.

Returns an empty string for anonymous requests.
*/
func SessionID(request *http.Request) string {
	return ctxutil.GetSessionID(request.Context())
}

/*
RequiredSessionID ensures the request carries a session ID and returns it.

Returns:
  - string: The opaque client session ID
  - error: apperr.Unauthorized if no session ID was presented
*/
func RequiredSessionID(request *http.Request) (string, error) {

	// Get the session ID injected by the ClientIdentity middleware
	sessionID := ctxutil.GetSessionID(request.Context())

	// If the client did not present one, return an error
	if sessionID == "" {
		return "", apperr.Unauthorized("A session ID is required")
	}

	return sessionID, nil
}

/*
RequiredCartID ensures the request carries a cart ID and returns it.

Returns:
  - string: The opaque client cart ID
  - error: apperr.Unauthorized if no cart ID was presented
*/
func RequiredCartID(request *http.Request) (string, error) {

	// Get the cart ID injected by the ClientIdentity middleware
	cartID := ctxutil.GetCartID(request.Context())

	// If the client did not present one, return an error
	if cartID == "" {
		return "", apperr.Unauthorized("A cart ID is required")
	}

	return cartID, nil
}
