// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package auth

// Action is the closed set of auth state transitions.
//
// The unexported marker method seals the set, mirroring the cart reducer:
// all session state changes flow through [Reduce] as tagged variants.
type Action interface {
	isAction()
}

// LoginStarted marks the beginning of a login/register attempt: the session
// enters its pending sub-state and any previous error is cleared.
type LoginStarted struct{}

// LoginSucceeded installs the authenticated user. Dispatched on successful
// login, registration, and token-based session restore.
type LoginSucceeded struct {
	User *User
}

// LoginFailed records a failed login/register attempt. The session falls
// back to anonymous with a human-readable error message.
type LoginFailed struct {
	Message string
}

// LoggedOut resets the session to anonymous with no error.
type LoggedOut struct{}

// UserUpdated replaces the profile of the signed-in user after a successful
// profile update.
type UserUpdated struct {
	User *User
}

// RestoreFinished completes a session restore that found no valid token:
// the session settles as anonymous without an error.
type RestoreFinished struct{}

func (LoginStarted) isAction()    {}
func (LoginSucceeded) isAction()  {}
func (LoginFailed) isAction()     {}
func (LoggedOut) isAction()       {}
func (UserUpdated) isAction()     {}
func (RestoreFinished) isAction() {}

// Reduce computes the next auth state from the previous state and an action.
//
// # Purity
//
// Reduce never mutates its inputs. Every branch re-derives IsAuthenticated
// from the presence of User, so "authenticated iff user present" cannot
// drift.
func Reduce(state State, action Action) State {
	switch act := action.(type) {

	case LoginStarted:
		next := state
		next.IsLoading = true
		next.LastError = ""
		return next

	case LoginSucceeded:
		return State{
			User:            act.User,
			IsAuthenticated: act.User != nil,
			IsLoading:       false,
		}

	case LoginFailed:
		return State{
			LastError: act.Message,
		}

	case LoggedOut:
		return State{}

	case UserUpdated:
		next := state
		next.User = act.User
		next.IsAuthenticated = act.User != nil
		return next

	case RestoreFinished:
		return State{}

	default:
		return state
	}
}
