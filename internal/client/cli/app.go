package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/common-nighthawk/go-figure"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/config"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/services"
	"github.com/dmitrijs2005/jobtracker/internal/client/session"
	"github.com/dmitrijs2005/jobtracker/internal/logging"

	_ "modernc.org/sqlite"
)

const appName = "jobtracker"

type App struct {
	config  *config.Config
	session services.SessionController
	apps    services.ApplicationService
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local database and wires the session controller.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewLogger(c.LogLevel, c.LogFormat, os.Stderr)

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	api, err := client.NewMockClient(c.APILatency)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sc := services.NewSessionController(api, session.NewStore(db, log), log)

	return &App{
		config:  c,
		session: sc,
		apps:    services.NewApplicationService(db, sc, log),
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores the saved session and serves the REPL until the user exits
// or stdin closes. Resources are released on return.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()
	defer a.session.Close(ctx)

	fmt.Fprintln(a.out, figure.NewFigure(appName, "cybermedium", true).String())

	unsubscribe := a.session.Subscribe(func(s models.SessionState) {
		a.log.Debug(ctx, "session changed", "phase", s.Phase())
	})
	defer unsubscribe()

	if err := a.session.Initialize(ctx); err != nil {
		return err
	}

	ctx = services.WithController(ctx, a.session)
	if st := a.session.State(); st.Authenticated() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", st.User.Username)
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, bufio.NewScanner(a.reader))
	return nil
}
