// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lamnguyen/shopora/internal/platform/middleware"
	requestutil "github.com/lamnguyen/shopora/internal/platform/request"
	"github.com/lamnguyen/shopora/internal/platform/respond"
	"github.com/lamnguyen/shopora/internal/platform/validate"
)

// Handler implements the auth session HTTP endpoints.
//
// The handler is a thin gatekeeper over [Service]: it validates payload
// shape and maps requests to store operations. State transitions live in
// the reducer; credential decisions live behind [Client].
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with auth-specific routes.
//
// # Endpoints
//   - POST /login    : Authenticate the session.
//   - POST /register : Enroll a new member and authenticate.
//   - POST /logout   : End the session (always succeeds).
//   - GET  /me       : Current session state.
//   - PUT  /profile  : Partial profile update.
//
// All endpoints require the X-Session-ID header ([middleware.RequireSession]).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireSession)

	router.Post("/login", handler.login)
	router.Post("/register", handler.register)
	router.Post("/logout", handler.logout)
	router.Get("/me", handler.me)
	router.Put("/profile", handler.updateProfile)

	return router
}

// loginRequest represents the JSON payload for a login attempt.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /api/v1/auth/login requests.
//
// # Returns
//   - Writes HTTP 200 OK with the authenticated session state on success.
//   - Writes HTTP 400 Bad Request if the payload shape is invalid.
//   - Writes HTTP 401 Unauthorized for rejected credentials. The same
//     rejection is also visible in the state's last_error field.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	sessionID, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.
		Required("email", input.Email).
		Required("password", input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Store Dispatch ─────────────────────────────────────────────────

	store := handler.authService.Store(request.Context(), sessionID)
	if _, err := store.Login(request.Context(), input.Email, input.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, store.State())
}

// registerRequest represents the JSON payload for member enrollment.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// register handles POST /api/v1/auth/register requests.
//
// # Returns
//   - Writes HTTP 201 Created with the authenticated session state on success.
//   - Writes HTTP 400 Bad Request if the payload shape is invalid.
//   - Writes HTTP 409 Conflict if the email is already registered.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	sessionID, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.
		Required("name", input.Name).
		MaxLen("name", input.Name, 100).
		Required("email", input.Email).
		Email("email", input.Email).
		Required("password", input.Password).
		MinLen("password", input.Password, 8).
		MaxLen("password", input.Password, 72)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Store Dispatch ─────────────────────────────────────────────────

	store := handler.authService.Store(request.Context(), sessionID)
	if _, err := store.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
	}); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, store.State())
}

// logout handles POST /api/v1/auth/logout requests.
//
// Logout has no failure path: the response is always the anonymous state.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	sessionID, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	store := handler.authService.Store(request.Context(), sessionID)
	state := store.Logout(request.Context())

	respond.OK(writer, state)
}

// me handles GET /api/v1/auth/me requests.
//
// Returns the current session state, anonymous or authenticated. The first
// access for a session runs the one-time restore.
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	sessionID, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	store := handler.authService.Store(request.Context(), sessionID)
	respond.OK(writer, store.State())
}

// updateProfileRequest represents the JSON payload for a profile update.
// All fields are optional; absent fields are left untouched.
type updateProfileRequest struct {
	Name      *string    `json:"name"`
	Phone     *string    `json:"phone"`
	AvatarURL *string    `json:"avatar_url"`
	Addresses *[]Address `json:"addresses"`
}

// updateProfile handles PUT /api/v1/auth/profile requests.
//
// # Returns
//   - Writes HTTP 200 OK with the updated session state on success.
//   - Writes HTTP 401 Unauthorized if the session holds no valid token.
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	sessionID, err := requestutil.RequiredSessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	if input.Name != nil {
		validator.Required("name", *input.Name).MaxLen("name", *input.Name, 100)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Store Dispatch ─────────────────────────────────────────────────

	store := handler.authService.Store(request.Context(), sessionID)
	state, err := store.UpdateUser(request.Context(), ProfileUpdate{
		Name:      input.Name,
		Phone:     input.Phone,
		AvatarURL: input.AvatarURL,
		Addresses: input.Addresses,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, state)
}
