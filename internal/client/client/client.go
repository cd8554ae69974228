package client

import (
	"context"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// AuthResult is what a successful login or registration hands back: the
// signed-in user and the opaque token to keep for later requests.
type AuthResult struct {
	User  *models.User
	Token string
}

// Client is the auth API the session controller talks to.
type Client interface {
	Login(ctx context.Context, email string, password []byte) (*AuthResult, error)
	Register(ctx context.Context, username, email string, password []byte) (*AuthResult, error)
	Close() error
}
