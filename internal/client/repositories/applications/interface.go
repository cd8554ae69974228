// Package applications keeps each user's tracked job applications in the
// local metadata table, one JSON list per user.
package applications

import (
	"context"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// KeyPrefix is prepended to the user ID to form the metadata key.
const KeyPrefix = "applications:"

type Repository interface {
	// List returns the user's applications, or an empty slice if none were saved.
	List(ctx context.Context, userID string) ([]models.JobApplication, error)
	// Save replaces the user's whole list.
	Save(ctx context.Context, userID string, apps []models.JobApplication) error
}
