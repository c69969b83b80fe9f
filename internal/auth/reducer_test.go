// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamnguyen/shopora/internal/auth"
)

func member() *auth.User {
	return &auth.User{
		ID:    "user-1",
		Name:  "Administrator",
		Email: "admin@example.com",
	}
}

/*
TestReduce_LoginFlow walks the full happy path: initial loading state,
attempt start, and success.
*/
func TestReduce_LoginFlow(t *testing.T) {
	state := auth.InitialState()
	assert.True(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)

	state = auth.Reduce(state, auth.LoginStarted{})
	assert.True(t, state.IsLoading)
	assert.Empty(t, state.LastError)

	state = auth.Reduce(state, auth.LoginSucceeded{User: member()})
	require.NotNil(t, state.User)
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.LastError)
}

/*
TestReduce_LoginFailed verifies that a failed attempt resets to anonymous
and records the failure message.
*/
func TestReduce_LoginFailed(t *testing.T) {
	state := auth.Reduce(auth.InitialState(), auth.LoginStarted{})
	state = auth.Reduce(state, auth.LoginFailed{Message: "Invalid email or password"})

	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "Invalid email or password", state.LastError)
}

/*
TestReduce_LoginStarted_ClearsPreviousError verifies that starting a new
attempt wipes the error from the previous one.
*/
func TestReduce_LoginStarted_ClearsPreviousError(t *testing.T) {
	state := auth.Reduce(auth.State{}, auth.LoginFailed{Message: "nope"})
	state = auth.Reduce(state, auth.LoginStarted{})

	assert.Empty(t, state.LastError)
	assert.True(t, state.IsLoading)
}

/*
TestReduce_LoggedOut verifies the wholesale reset to the anonymous state.
*/
func TestReduce_LoggedOut(t *testing.T) {
	state := auth.Reduce(auth.State{}, auth.LoginSucceeded{User: member()})
	state = auth.Reduce(state, auth.LoggedOut{})

	assert.Equal(t, auth.State{}, state)
}

/*
TestReduce_UserUpdated verifies profile replacement and the derived
authentication flag.
*/
func TestReduce_UserUpdated(t *testing.T) {
	state := auth.Reduce(auth.State{}, auth.LoginSucceeded{User: member()})

	updated := member()
	updated.Name = "New Name"
	state = auth.Reduce(state, auth.UserUpdated{User: updated})

	require.NotNil(t, state.User)
	assert.Equal(t, "New Name", state.User.Name)
	assert.True(t, state.IsAuthenticated)

	// A nil user demotes the session to anonymous.
	state = auth.Reduce(state, auth.UserUpdated{User: nil})
	assert.False(t, state.IsAuthenticated)
}

/*
TestReduce_RestoreFinished verifies that a restore with no valid token
settles as anonymous without an error.
*/
func TestReduce_RestoreFinished(t *testing.T) {
	state := auth.Reduce(auth.InitialState(), auth.RestoreFinished{})

	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.LastError)
}
