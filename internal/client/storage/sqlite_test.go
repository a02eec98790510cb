package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/credittransfer/internal/dbx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpenDB_AppliesMigrations(t *testing.T) {
	db, err := OpenDB(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, tableExists(t, db, "goose_db_version"))
	assert.True(t, tableExists(t, db, "kv"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	db, err := OpenDB(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "kv"))
}

func TestStore_SetGet(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "authToken", []byte(`{"access":"a"}`)))

	v, err := s.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.Equal(t, `{"access":"a"}`, string(v))
}

func TestStore_GetAbsentReturnsNilNil(t *testing.T) {
	s := openStore(t)

	v, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStore_SetOverwrites(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("old")))
	require.NoError(t, s.Set(ctx, "k", []byte("new")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", string(v))

	var n int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "x", []byte{1}))
	require.NoError(t, s.Delete(ctx, "x"))
	require.NoError(t, s.Delete(ctx, "x"))

	v, err := s.Get(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	s, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "authToken", []byte("tok")))
	require.NoError(t, s.Close())

	s, err = Open(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.Equal(t, "tok", string(v))
}

func TestStore_ErrorsWrappedAfterClose(t *testing.T) {
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())
	ctx := context.Background()

	_, err = s.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get kv[k]")

	err = s.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete kv[k]")

	require.Error(t, s.Set(ctx, "k", []byte("v")))
}

func TestStore_SetInsideFailedTransactionIsRolledBack(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "authToken", []byte("old")))

	errAbort := errors.New("abort")
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, "authToken", []byte("new")); err != nil {
			return err
		}
		v, err := get(ctx, tx, "authToken")
		require.NoError(t, err)
		assert.Equal(t, "new", string(v))
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	v, err := s.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.Equal(t, "old", string(v))
}
