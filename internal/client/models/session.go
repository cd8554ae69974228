package models

// SessionState is the view of the session that dependents render.
//
// Loading is true only until the controller has hydrated from local storage.
// User is nil whenever nobody is signed in.
type SessionState struct {
	User    *User
	Loading bool
}

// Authenticated reports whether a user is signed in.
func (s SessionState) Authenticated() bool {
	return s.User != nil
}

// Phase names the controller state for logs and prompts.
func (s SessionState) Phase() string {
	switch {
	case s.Loading:
		return "hydrating"
	case s.User != nil:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}
