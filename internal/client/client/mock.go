package client

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
)

const (
	mockIssuer   = "jobtracker-mock"
	mockUserID   = "1"
	mockUsername = "johndoe"
)

// tokenClaims is the payload of tokens minted by MockClient.
type tokenClaims struct {
	Email string        `json:"email"`
	Roles []models.Role `json:"roles"`
	jwt.RegisteredClaims
}

// MockClient stands in for the auth backend. It accepts any password,
// fabricates the user, and signs a token with a key that only lives for
// the process. Nothing on the client verifies those tokens.
type MockClient struct {
	latency    time.Duration
	signingKey []byte
	now        func() time.Time
	closed     atomic.Bool
}

var _ Client = (*MockClient)(nil)

// NewMockClient returns a MockClient that waits latency before answering.
func NewMockClient(latency time.Duration) (*MockClient, error) {
	key, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return &MockClient{latency: latency, signingKey: []byte(key), now: time.Now}, nil
}

// Login always succeeds. The user is the fixed demo account with the given
// email.
func (c *MockClient) Login(ctx context.Context, email string, _ []byte) (*AuthResult, error) {
	if err := c.roundTrip(ctx); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        mockUserID,
		Username:  mockUsername,
		Email:     email,
		Roles:     models.DefaultRoles(),
		CreatedAt: c.now().UTC(),
	}
	return c.issue(user)
}

// Register always succeeds. The new user's ID is the call time in Unix
// milliseconds.
func (c *MockClient) Register(ctx context.Context, username, email string, _ []byte) (*AuthResult, error) {
	if err := c.roundTrip(ctx); err != nil {
		return nil, err
	}

	now := c.now().UTC()
	user := &models.User{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Username:  username,
		Email:     email,
		Roles:     models.DefaultRoles(),
		CreatedAt: now,
	}
	return c.issue(user)
}

func (c *MockClient) Close() error {
	c.closed.Store(true)
	return nil
}

// roundTrip simulates the network delay of a real call.
func (c *MockClient) roundTrip(ctx context.Context) error {
	if c.closed.Load() {
		return ErrUnavailable
	}
	if c.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *MockClient) issue(user *models.User) (*AuthResult, error) {
	claims := tokenClaims{
		Email: user.Email,
		Roles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   mockIssuer,
			Subject:  user.ID,
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(c.now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signingKey)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}
