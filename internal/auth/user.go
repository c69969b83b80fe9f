// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

// Package auth implements the authentication session state core.
//
// # Architecture
//
// Like the cart, the auth session is a pure reducer over an immutable
// [State] value wrapped by a [Store]. Credential checks are delegated to an
// external collaborator behind the [Client] interface; the store itself only
// persists the opaque session token.
package auth

import "time"

// Address is a shipping/billing address attached to a user profile.
type Address struct {
	ID         string `json:"id"`
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	Province   string `json:"province"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code,omitempty"`
	IsDefault  bool   `json:"is_default"`
}

// User represents the profile of the currently signed-in member.
//
// # Ownership
//
// While a session is active, the auth [State] owns the User value
// exclusively; the rest of the application reads it through state snapshots.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Addresses []Address `json:"addresses"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// State is an immutable snapshot of one browser session's auth status.
//
// # Invariant
//
// IsAuthenticated is true if and only if User is present. IsLoading is true
// only while a login, registration, or session restore is in flight.
type State struct {
	User            *User  `json:"user,omitempty"`
	IsAuthenticated bool   `json:"is_authenticated"`
	IsLoading       bool   `json:"is_loading"`
	LastError       string `json:"last_error,omitempty"`
}

// InitialState returns the state a session starts in: loading, pending the
// one-time session restore.
func InitialState() State {
	return State{IsLoading: true}
}

// RegisterInput holds the data required to enroll a new member.
//
// Absent fields are a caller contract violation; the store performs no
// presence validation beyond what the HTTP boundary already enforced.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// ProfileUpdate carries a partial profile change. Nil fields are left
// untouched by the collaborator.
type ProfileUpdate struct {
	Name      *string    `json:"name,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	Addresses *[]Address `json:"addresses,omitempty"`
}
