// Package services contains application services for the jobtracker client.
// This file defines the session controller: hydration from local storage,
// login, register, logout, and change notification for dependent views.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/session"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

// SessionStore is the persistence the controller needs. *session.Store
// implements it.
type SessionStore interface {
	Write(ctx context.Context, token string, user *models.User) error
	Read(ctx context.Context) (*session.Record, error)
	Clear(ctx context.Context) error
}

// SessionController owns the client's session.
//
// Contract:
//   - Initialize: restore the session from local storage; runs once.
//   - Login / Register: call the auth API, persist the result, sign in.
//   - Logout: clear local storage and sign out.
//   - State / Token: read the current view.
//   - Subscribe: be told about every state change.
//   - Close: release the auth API client.
//
// Operations are not serialized against each other; callers should not
// start one while another is in flight. The last one to finish wins.
type SessionController interface {
	Initialize(ctx context.Context) error
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Register(ctx context.Context, username, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	State() models.SessionState
	Token() string
	Subscribe(fn func(models.SessionState)) (unsubscribe func())
	Close(ctx context.Context) error
}

type sessionController struct {
	client client.Client
	store  SessionStore
	log    logging.Logger

	mu          sync.RWMutex
	user        *models.User
	token       string
	hydrating   bool
	initialized bool

	subMu  sync.Mutex
	subs   map[int]func(models.SessionState)
	nextID int
}

// NewSessionController returns a controller in the hydrating state.
// Call Initialize before rendering anything that depends on State.
func NewSessionController(c client.Client, store SessionStore, log logging.Logger) SessionController {
	return &sessionController{
		client: c,
		store:  store,
		log:    log.With("component", "session_controller"),
		subs:   make(map[int]func(models.SessionState)),
	}
}

// Initialize hydrates the controller from the store. A missing or corrupt
// record leaves the user signed out without an error; a storage failure is
// returned, also leaving the user signed out. Either way loading ends.
// Calls after the first, or after any other operation, do nothing.
func (c *sessionController) Initialize(ctx context.Context) error {
	c.mu.Lock()
	if c.hydrating || c.initialized {
		c.mu.Unlock()
		return nil
	}
	c.hydrating = true
	c.mu.Unlock()

	rec, err := c.store.Read(ctx)
	switch {
	case err == nil:
		if c.hydrate(rec.User, rec.Token) {
			c.log.Info(ctx, "session restored", "user_id", rec.User.ID, "email", rec.User.Email)
		}
		return nil
	case errors.Is(err, session.ErrNoSession):
		c.hydrate(nil, "")
		c.log.Debug(ctx, "no stored session")
		return nil
	default:
		c.hydrate(nil, "")
		c.log.Error(ctx, "session restore failed", "error", err)
		return fmt.Errorf("restore session: %w", err)
	}
}

// hydrate applies the restored session unless another operation settled
// the state while the store was being read.
func (c *sessionController) hydrate(user *models.User, token string) bool {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return false
	}
	state := c.apply(user, token)
	c.mu.Unlock()

	c.notify(state)
	return true
}

// Login signs in with email. The mock API accepts any password, so the only
// failures are cancellation and storage errors.
func (c *sessionController) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	res, err := c.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return c.signIn(ctx, res)
}

// Register creates an account and signs it in.
func (c *sessionController) Register(ctx context.Context, username, email string, password []byte) (*models.User, error) {
	res, err := c.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return c.signIn(ctx, res)
}

func (c *sessionController) signIn(ctx context.Context, res *client.AuthResult) (*models.User, error) {
	if err := c.store.Write(ctx, res.Token, res.User); err != nil {
		c.log.Error(ctx, "persist session failed", "error", err)
		return nil, fmt.Errorf("persist session: %w", err)
	}

	c.set(res.User, res.Token)
	c.log.Info(ctx, "signed in", "user_id", res.User.ID, "email", res.User.Email)
	return res.User.Clone(), nil
}

// Logout clears the stored session and signs out. The in-memory state is
// reset even if clearing storage fails; that error is still returned.
func (c *sessionController) Logout(ctx context.Context) error {
	err := c.store.Clear(ctx)
	c.set(nil, "")

	if err != nil {
		c.log.Error(ctx, "clear session failed", "error", err)
		return fmt.Errorf("logout: %w", err)
	}
	c.log.Info(ctx, "signed out")
	return nil
}

func (c *sessionController) State() models.SessionState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot()
}

func (c *sessionController) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Subscribe registers fn to receive the new state after every change.
// fn runs synchronously on the goroutine that made the change. A nil fn is
// ignored.
func (c *sessionController) Subscribe(fn func(models.SessionState)) func() {
	if fn == nil {
		return func() {}
	}

	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextID
	c.nextID++
	c.subs[id] = fn

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subs, id)
	}
}

func (c *sessionController) Close(ctx context.Context) error {
	return c.client.Close()
}

// set swaps in the new session, ends loading, and notifies subscribers once.
func (c *sessionController) set(user *models.User, token string) {
	c.mu.Lock()
	state := c.apply(user, token)
	c.mu.Unlock()

	c.notify(state)
}

// apply must be called with mu held.
func (c *sessionController) apply(user *models.User, token string) models.SessionState {
	c.user = user.Clone()
	c.token = token
	c.initialized = true
	return c.snapshot()
}

// snapshot must be called with mu held.
func (c *sessionController) snapshot() models.SessionState {
	return models.SessionState{
		User:    c.user.Clone(),
		Loading: !c.initialized,
	}
}

func (c *sessionController) notify(state models.SessionState) {
	c.subMu.Lock()
	fns := make([]func(models.SessionState), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		s := state
		s.User = state.User.Clone()
		fn(s)
	}
}
