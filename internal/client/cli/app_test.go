package cli

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jobtracker/internal/client/config"
)

func newAppForTest(t *testing.T, dbPath, script string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{DatabasePath: dbPath, LogLevel: "error", LogFormat: "text"}

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	a.reader = bufio.NewReader(strings.NewReader(script))
	a.out = &out
	return a, &out
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	capturePrintln(t)
	stubInputs(t, []string{"a@b.com"}, []byte("pw"))
	dbPath := filepath.Join(t.TempDir(), "jt.db")

	a, out := newAppForTest(t, dbPath, "login\nexit\n")
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Signed in as johndoe <a@b.com>")
	assert.NotContains(t, out.String(), "Welcome back")

	b, out := newAppForTest(t, dbPath, "whoami\nlogout\nexit\n")
	require.NoError(t, b.Run(context.Background()))
	assert.Contains(t, out.String(), "Welcome back, johndoe!")
	assert.Contains(t, out.String(), "email:    a@b.com")
	assert.Contains(t, out.String(), "Signed out")

	c, out := newAppForTest(t, dbPath, "exit\n")
	require.NoError(t, c.Run(context.Background()))
	assert.NotContains(t, out.String(), "Welcome back")
}

func TestNewApp_BadDatabasePath(t *testing.T) {
	cfg := &config.Config{
		DatabasePath: filepath.Join(t.TempDir(), "missing", "dir", "jt.db"),
		LogLevel:     "error",
	}
	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}

func TestApp_ApplicationsPersistForUser(t *testing.T) {
	capturePrintln(t)
	stubInputs(t, []string{"a@b.com", "Go Engineer", "Tech Corp", "", "", "", "applied"}, []byte("pw"))
	dbPath := filepath.Join(t.TempDir(), "jt.db")

	a, out := newAppForTest(t, dbPath, "login\nadd\nexit\n")
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "[Applied]    Go Engineer @ Tech Corp")

	b, out := newAppForTest(t, dbPath, "list applied\nlist offer\nexit\n")
	require.NoError(t, b.Run(context.Background()))
	assert.Contains(t, out.String(), "[Applied]    Go Engineer @ Tech Corp")
	assert.Contains(t, out.String(), "No applications")
}
