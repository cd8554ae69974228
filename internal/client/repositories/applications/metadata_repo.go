package applications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobtracker/internal/dbx"
)

type MetadataRepository struct {
	kv metadata.Repository
}

var _ Repository = (*MetadataRepository)(nil)

// NewMetadataRepository binds the repository to db, which may be a *sql.DB
// or a *sql.Tx obtained through dbx.WithTx.
func NewMetadataRepository(db dbx.DBTX) *MetadataRepository {
	return &MetadataRepository{kv: metadata.NewSQLiteRepository(db)}
}

func (r *MetadataRepository) List(ctx context.Context, userID string) ([]models.JobApplication, error) {
	raw, err := r.kv.Get(ctx, KeyPrefix+userID)
	if errors.Is(err, metadata.ErrNotFound) {
		return []models.JobApplication{}, nil
	}
	if err != nil {
		return nil, err
	}

	apps := []models.JobApplication{}
	if err := json.Unmarshal(raw, &apps); err != nil {
		return nil, fmt.Errorf("decode applications of %s: %w", userID, err)
	}
	return apps, nil
}

func (r *MetadataRepository) Save(ctx context.Context, userID string, apps []models.JobApplication) error {
	if len(apps) == 0 {
		return r.kv.Delete(ctx, KeyPrefix+userID)
	}

	raw, err := json.Marshal(apps)
	if err != nil {
		return fmt.Errorf("encode applications of %s: %w", userID, err)
	}
	return r.kv.Set(ctx, KeyPrefix+userID, raw)
}
