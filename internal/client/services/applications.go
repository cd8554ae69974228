package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/repositories/applications"
	"github.com/dmitrijs2005/jobtracker/internal/dbx"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

var (
	ErrNotSignedIn         = errors.New("not signed in")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAmbiguousID         = errors.New("application id prefix matches more than one application")
)

// ApplicationService manages the signed-in user's job applications.
// Every call acts on the user currently held by the session controller and
// fails with ErrNotSignedIn when there is none. IDs may be given as a unique
// prefix.
type ApplicationService interface {
	Add(ctx context.Context, app models.JobApplication) (*models.JobApplication, error)
	List(ctx context.Context, filter models.ApplicationFilter) ([]models.JobApplication, error)
	SetStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.JobApplication, error)
	Delete(ctx context.Context, id string) error
}

type applicationService struct {
	db      *sql.DB
	session SessionController
	log     logging.Logger
	now     func() time.Time
}

func NewApplicationService(db *sql.DB, sc SessionController, log logging.Logger) ApplicationService {
	return &applicationService{
		db:      db,
		session: sc,
		log:     log.With("component", "application_service"),
		now:     time.Now,
	}
}

func (s *applicationService) userID() (string, error) {
	u := s.session.State().User
	if u == nil {
		return "", ErrNotSignedIn
	}
	return u.ID, nil
}

// update runs fn over the user's list inside one transaction and saves what
// fn returns.
func (s *applicationService) update(ctx context.Context, fn func(userID string, apps []models.JobApplication) ([]models.JobApplication, error)) error {
	userID, err := s.userID()
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := applications.NewMetadataRepository(tx)
		apps, err := repo.List(ctx, userID)
		if err != nil {
			return err
		}
		apps, err = fn(userID, apps)
		if err != nil {
			return err
		}
		return repo.Save(ctx, userID, apps)
	})
}

// Add validates app, assigns its ID, owner and timestamps, and stores it.
// An empty status becomes Saved.
func (s *applicationService) Add(ctx context.Context, app models.JobApplication) (*models.JobApplication, error) {
	app.Title = strings.TrimSpace(app.Title)
	app.Company = strings.TrimSpace(app.Company)
	if err := app.Validate(); err != nil {
		return nil, err
	}
	if app.Status == "" {
		app.Status = models.StatusSaved
	}

	err := s.update(ctx, func(userID string, apps []models.JobApplication) ([]models.JobApplication, error) {
		now := s.now().UTC()
		app.ID = uuid.NewString()
		app.UserID = userID
		app.CreatedAt = now
		app.UpdatedAt = now
		return append(apps, app), nil
	})
	if err != nil {
		return nil, fmt.Errorf("add application: %w", err)
	}

	s.log.Info(ctx, "application added", "id", app.ID, "status", app.Status)
	return &app, nil
}

// List returns the matching applications, newest first.
func (s *applicationService) List(ctx context.Context, filter models.ApplicationFilter) ([]models.JobApplication, error) {
	userID, err := s.userID()
	if err != nil {
		return nil, err
	}

	apps, err := applications.NewMetadataRepository(s.db).List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	out := make([]models.JobApplication, 0, len(apps))
	for _, a := range apps {
		if filter.Match(a) {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b models.JobApplication) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

func (s *applicationService) SetStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.JobApplication, error) {
	if !slices.Contains(models.ApplicationStatuses(), status) {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownStatus, status)
	}

	var updated models.JobApplication
	err := s.update(ctx, func(_ string, apps []models.JobApplication) ([]models.JobApplication, error) {
		i, err := findApplication(apps, id)
		if err != nil {
			return nil, err
		}
		apps[i].Status = status
		apps[i].UpdatedAt = s.now().UTC()
		updated = apps[i]
		return apps, nil
	})
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	s.log.Info(ctx, "application status changed", "id", updated.ID, "status", status)
	return &updated, nil
}

func (s *applicationService) Delete(ctx context.Context, id string) error {
	err := s.update(ctx, func(_ string, apps []models.JobApplication) ([]models.JobApplication, error) {
		i, err := findApplication(apps, id)
		if err != nil {
			return nil, err
		}
		return slices.Delete(apps, i, i+1), nil
	})
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}

// findApplication resolves id as an exact ID or a unique prefix.
func findApplication(apps []models.JobApplication, id string) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1, ErrApplicationNotFound
	}

	if i := slices.IndexFunc(apps, func(a models.JobApplication) bool { return a.ID == id }); i >= 0 {
		return i, nil
	}

	found := -1
	for i, a := range apps {
		if strings.HasPrefix(a.ID, id) {
			if found >= 0 {
				return -1, ErrAmbiguousID
			}
			found = i
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: %s", ErrApplicationNotFound, id)
	}
	return found, nil
}
