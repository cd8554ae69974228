package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jobtracker/internal/dbx"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func countKeys(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	return n
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("tok")))

	v, err := r.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok"), v)
}

func TestGet_Missing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, v)
}

func TestSet_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestSet_NilStoredAsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestDelete_ManyKeysAndIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "auth_token", []byte("t")))
	require.NoError(t, r.Set(ctx, "user_data", []byte("{}")))
	require.NoError(t, r.Set(ctx, "other", []byte("x")))

	require.NoError(t, r.Delete(ctx, "auth_token", "user_data"))
	assert.Equal(t, 1, countKeys(t, db))

	_, err := r.Get(ctx, "auth_token")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.Delete(ctx, "auth_token", "user_data"))
	require.NoError(t, r.Delete(ctx))
	assert.Equal(t, 1, countKeys(t, db))
}

func TestRepository_InsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).Set(ctx, "auth_token", []byte("t"))
	})
	require.NoError(t, err)

	v, err := NewSQLiteRepository(db).Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("t"), v)
}

func TestErrorsWrapped_WhenDBClosed(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get metadata[k]")

	err = r.Set(ctx, "k", []byte("v"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set metadata[k]")

	err = r.Delete(ctx, "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete metadata")
}
