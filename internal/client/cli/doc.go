// Package cli provides the interactive jobtracker command-line client.
//
// It wires configuration, the local session database, the mock auth API and
// the session controller, then serves a small REPL:
//
//   - register / login / logout
//   - whoami: show the signed-in user
//   - token: print the opaque auth token
//
// The saved session is restored on start, so a user stays signed in across
// runs until they log out. Commands reach the controller through the
// context (services.FromContext) rather than through package state.
package cli
