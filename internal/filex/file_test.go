package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureSubdDir_CreatesDirectory(t *testing.T) {
	base := t.TempDir()

	got, err := EnsureSubdDir(base, "download")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "download"), got)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureSubdDir_Idempotent(t *testing.T) {
	base := t.TempDir()

	first, err := EnsureSubdDir(base, "x")
	require.NoError(t, err)
	second, err := EnsureSubdDir(base, "x")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureSubdDir_FailsWhenPathIsFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "busy"), []byte("x"), 0o600))

	_, err := EnsureSubdDir(base, "busy")
	require.Error(t, err)
}

func TestSaveFile_WritesUnderDirUsingBaseName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := SaveFile(dir, "../../escape.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "escape.pdf"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4", string(b))
}
