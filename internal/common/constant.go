// Package common contains shared constants and sentinel errors used across
// jobtracker client components.
package common

// Metadata keys holding the persisted session. Both are present while a
// user is signed in and both are absent otherwise.
const (
	AuthTokenKey = "auth_token"
	UserDataKey  = "user_data"
)

// EnvPrefix prefixes every environment variable read by the client.
const EnvPrefix = "JOBTRACKER_"
