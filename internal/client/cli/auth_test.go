package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/services"
)

func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origRT, origST, origGP := getRequiredText, getSimpleText, getPassword
	t.Cleanup(func() {
		getRequiredText = origRT
		getSimpleText = origST
		getPassword = origGP
	})

	i := 0
	next := func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		i++
		return answers[i-1], nil
	}
	getRequiredText = next
	getSimpleText = next
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
}

// fakeSession is a SessionController driven by the tests.
type fakeSession struct {
	state models.SessionState
	token string

	loginEmail  string
	loginPass   []byte
	regUser     string
	regEmail    string
	logoutCalls int

	err error
}

func (f *fakeSession) Initialize(context.Context) error { return f.err }

func (f *fakeSession) Login(_ context.Context, email string, password []byte) (*models.User, error) {
	f.loginEmail, f.loginPass = email, password
	if f.err != nil {
		return nil, f.err
	}
	f.state.User = &models.User{ID: "1", Username: "johndoe", Email: email, Roles: models.DefaultRoles()}
	return f.state.User, nil
}

func (f *fakeSession) Register(_ context.Context, username, email string, _ []byte) (*models.User, error) {
	f.regUser, f.regEmail = username, email
	if f.err != nil {
		return nil, f.err
	}
	f.state.User = &models.User{ID: "2", Username: username, Email: email, Roles: models.DefaultRoles()}
	return f.state.User, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalls++
	f.state.User = nil
	return f.err
}

func (f *fakeSession) State() models.SessionState                        { return f.state }
func (f *fakeSession) Token() string                                     { return f.token }
func (f *fakeSession) Subscribe(func(models.SessionState)) (unsub func()) { return func() {} }
func (f *fakeSession) Close(context.Context) error                       { return nil }

func newTestApp(f *fakeSession) (*App, context.Context, *bytes.Buffer) {
	var out bytes.Buffer
	a := &App{reader: bufio.NewReader(strings.NewReader("")), out: &out}
	return a, services.WithController(context.Background(), f), &out
}

func TestLogin_Success(t *testing.T) {
	f := &fakeSession{}
	a, ctx, out := newTestApp(f)
	pw := []byte("secret")
	stubInputs(t, []string{"a@b.com"}, pw)

	require.NoError(t, a.Login(ctx))

	assert.Equal(t, "a@b.com", f.loginEmail)
	assert.Contains(t, out.String(), "Signed in as johndoe <a@b.com>")
	assert.Equal(t, make([]byte, 6), pw, "password must be wiped")
}

func TestLogin_ErrorPropagates(t *testing.T) {
	boom := errors.New("persist session: disk full")
	a, ctx, _ := newTestApp(&fakeSession{err: boom})
	stubInputs(t, []string{"a@b.com"}, []byte("x"))

	require.ErrorIs(t, a.Login(ctx), boom)
}

func TestRegister_Success(t *testing.T) {
	f := &fakeSession{}
	a, ctx, out := newTestApp(f)
	stubInputs(t, []string{"alice", "alice@example.org"}, []byte("pw"))

	require.NoError(t, a.Register(ctx))

	assert.Equal(t, "alice", f.regUser)
	assert.Equal(t, "alice@example.org", f.regEmail)
	assert.Contains(t, out.String(), "Welcome, alice!")
}

func TestRegister_InputErrorStopsEarly(t *testing.T) {
	f := &fakeSession{}
	a, ctx, _ := newTestApp(f)
	stubInputs(t, []string{"alice"}, []byte("pw"))

	require.ErrorIs(t, a.Register(ctx), io.EOF)
	assert.Empty(t, f.regUser)
}

func TestLogout(t *testing.T) {
	f := &fakeSession{state: models.SessionState{User: &models.User{ID: "1"}}}
	a, ctx, out := newTestApp(f)

	require.NoError(t, a.Logout(ctx))
	assert.Equal(t, 1, f.logoutCalls)
	assert.Contains(t, out.String(), "Signed out")
}

func TestLogout_ErrorPropagates(t *testing.T) {
	a, ctx, _ := newTestApp(&fakeSession{err: errors.New("clean-fail")})
	require.Error(t, a.Logout(ctx))
}

func TestCommands_WithoutController(t *testing.T) {
	a := &App{out: io.Discard}
	ctx := context.Background()

	for name, fn := range map[string]func(context.Context) error{
		"login":    a.Login,
		"register": a.Register,
		"logout":   a.Logout,
		"whoami":   a.WhoAmI,
		"token":    a.ShowToken,
	} {
		assert.ErrorIs(t, fn(ctx), services.ErrNoController, name)
	}
	assert.False(t, a.isLoggedIn(ctx))
	assert.Empty(t, a.getStatus(ctx))
}

func TestWhoAmI(t *testing.T) {
	f := &fakeSession{}
	a, ctx, out := newTestApp(f)

	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "Not signed in")

	out.Reset()
	f.state.User = &models.User{
		ID:        "1",
		Username:  "johndoe",
		Email:     "a@b.com",
		Roles:     []models.Role{models.RoleUser, models.RoleAdmin},
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "username: johndoe")
	assert.Contains(t, out.String(), "roles:    USER, ADMIN")
	assert.Contains(t, out.String(), "access:   administrator")
	assert.Contains(t, out.String(), "since:    2024-01-02 03:04:05")
}

func TestShowToken(t *testing.T) {
	f := &fakeSession{}
	a, ctx, out := newTestApp(f)

	require.NoError(t, a.ShowToken(ctx))
	assert.Contains(t, out.String(), "Not signed in")

	out.Reset()
	f.token = "opaque.token.value"
	require.NoError(t, a.ShowToken(ctx))
	assert.Equal(t, "opaque.token.value\n", out.String())
}

func TestGetStatus(t *testing.T) {
	f := &fakeSession{state: models.SessionState{Loading: true}}
	a, ctx, _ := newTestApp(f)
	assert.Empty(t, a.getStatus(ctx))

	f.state = models.SessionState{}
	assert.Empty(t, a.getStatus(ctx))
	assert.False(t, a.isLoggedIn(ctx))

	f.state.User = &models.User{Username: "johndoe", Email: "a@b.com", Roles: models.DefaultRoles()}
	assert.Equal(t, "(johndoe a@b.com)", a.getStatus(ctx))
	assert.True(t, a.isLoggedIn(ctx))

	f.state.User.Roles = append(f.state.User.Roles, models.RoleAdmin)
	assert.Equal(t, "(johndoe a@b.com)#", a.getStatus(ctx))
}

func TestWhoAmI_StandardAccess(t *testing.T) {
	f := &fakeSession{state: models.SessionState{User: &models.User{ID: "1", Username: "johndoe", Roles: models.DefaultRoles()}}}
	a, ctx, out := newTestApp(f)

	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "access:   standard")
}
