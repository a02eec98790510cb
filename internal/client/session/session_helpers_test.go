package session

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/credittransfer/internal/client/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func openStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	s, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// failingStore fails every operation with err.
type failingStore struct {
	err        error
	deleteSeen bool
}

func (f *failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f *failingStore) Set(context.Context, string, []byte) error  { return f.err }
func (f *failingStore) Delete(context.Context, string) error {
	f.deleteSeen = true
	return f.err
}

var errDisk = errors.New("disk gone")
