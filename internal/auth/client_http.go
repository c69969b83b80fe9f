// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/lamnguyen/shopora/internal/platform/apperr"
)

// httpClientTimeout bounds every collaborator round trip.
const httpClientTimeout = 10 * time.Second

// HTTPClient implements [Client] against a remote auth API
// (AUTH_BACKEND=http).
//
// # Wire Contract
//
// The remote API speaks the same JSON envelopes this service emits:
// successes arrive as {"data": ...} and failures as {"error": ..., "code": ...}.
// Session tokens travel as bearer tokens.
//
// # Failure Mapping
//
//   - 4xx responses become [apperr.AppError] values carrying the remote
//     message and status, so credential rejections surface verbatim.
//   - 5xx responses and transport failures become [apperr.Upstream].
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates an HTTPClient targeting the given base URL,
// e.g. "https://auth.internal.shopora.app".
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: httpClientTimeout},
	}
}

// sessionPayload is the data block returned by login and register.
type sessionPayload struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Login validates credentials against the remote API.
func (remote *HTTPClient) Login(ctx context.Context, email, password string) (*User, string, error) {
	body := map[string]string{"email": email, "password": password}

	var payload sessionPayload
	if err := remote.do(ctx, http.MethodPost, "/auth/login", "", body, &payload); err != nil {
		return nil, "", err
	}

	return payload.User, payload.Token, nil
}

// Register enrolls a new member through the remote API.
func (remote *HTTPClient) Register(ctx context.Context, input RegisterInput) (*User, string, error) {
	var payload sessionPayload
	if err := remote.do(ctx, http.MethodPost, "/auth/register", "", input, &payload); err != nil {
		return nil, "", err
	}

	return payload.User, payload.Token, nil
}

// FetchCurrentUser resolves the user behind a session token.
func (remote *HTTPClient) FetchCurrentUser(ctx context.Context, token string) (*User, error) {
	var user User
	if err := remote.do(ctx, http.MethodGet, "/auth/me", token, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateProfile applies a partial profile change through the remote API.
func (remote *HTTPClient) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*User, error) {
	var user User
	if err := remote.do(ctx, http.MethodPut, "/auth/profile", token, update, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout notifies the remote API that the session ended.
func (remote *HTTPClient) Logout(ctx context.Context, token string) error {
	return remote.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}

// do executes one round trip: encode body, send, map the status, and decode
// the success envelope into target (when target is non-nil).
func (remote *HTTPClient) do(ctx context.Context, method, path, token string, body, target interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("auth_request_encode_failed: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, remote.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("auth_request_build_failed: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := remote.client.Do(request)
	if err != nil {
		return apperr.Upstream("Auth service unreachable", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 500 {
		return apperr.Upstream("Auth service failed",
			fmt.Errorf("auth_upstream_status: %d", response.StatusCode))
	}

	if response.StatusCode >= 400 {
		// Surface the remote error message and status verbatim.
		var envelope struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil || envelope.Error == "" {
			envelope.Error = http.StatusText(response.StatusCode)
			envelope.Code = "AUTH_UPSTREAM_ERROR"
		}
		return &apperr.AppError{
			Code:       envelope.Code,
			Message:    envelope.Error,
			HTTPStatus: response.StatusCode,
		}
	}

	if target == nil {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("auth_response_decode_failed: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, target); err != nil {
		return fmt.Errorf("auth_response_decode_failed: %w", err)
	}

	return nil
}
