// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamnguyen/shopora/internal/auth"
	"github.com/lamnguyen/shopora/internal/platform/constants"
	"github.com/lamnguyen/shopora/internal/platform/sec"
	"github.com/lamnguyen/shopora/pkg/pointer"
)

func newMockClient(t *testing.T) *auth.MockClient {
	t.Helper()

	tokenService, err := sec.NewTokenService("test-secret-at-least-32-characters!!", constants.AuthIssuer)
	require.NoError(t, err)

	client, err := auth.NewMockClient(tokenService)
	require.NoError(t, err)
	return client
}

/*
TestMockClient_SeededLogin verifies the built-in demo account and that the
issued token resolves back to the same user.
*/
func TestMockClient_SeededLogin(t *testing.T) {
	ctx := context.Background()
	client := newMockClient(t)

	user, token, err := client.Login(ctx, "admin@example.com", "password")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.NotEmpty(t, token)

	fetched, err := client.FetchCurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
}

/*
TestMockClient_LoginRejections verifies that unknown emails and wrong
passwords fail with the same generic message.
*/
func TestMockClient_LoginRejections(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong_password", "admin@example.com", "not-the-password"},
		{"unknown_email", "nobody@example.com", "password"},
	}

	ctx := context.Background()
	client := newMockClient(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := client.Login(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, "Invalid email or password", err.Error())
		})
	}
}

/*
TestMockClient_RegisterAndUpdate covers enrollment, duplicate email
rejection, and the partial profile update.
*/
func TestMockClient_RegisterAndUpdate(t *testing.T) {
	ctx := context.Background()
	client := newMockClient(t)

	input := auth.RegisterInput{
		Name:     "Lam Nguyen",
		Email:    "lam@example.com",
		Password: "super-secret-1",
	}

	user, token, err := client.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Lam Nguyen", user.Name)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)

	// Same email again is a conflict.
	_, _, err = client.Register(ctx, input)
	require.Error(t, err)

	// Partial update: only the named field changes.
	updated, err := client.UpdateProfile(ctx, token, auth.ProfileUpdate{
		Phone: pointer.To("5551234"),
	})
	require.NoError(t, err)
	assert.Equal(t, "5551234", updated.Phone)
	assert.Equal(t, "Lam Nguyen", updated.Name)
}

/*
TestMockClient_FetchRejectsGarbageToken verifies token verification on the
fetch path.
*/
func TestMockClient_FetchRejectsGarbageToken(t *testing.T) {
	client := newMockClient(t)

	_, err := client.FetchCurrentUser(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}
