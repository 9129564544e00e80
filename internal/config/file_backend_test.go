package config_test

import (
	"io/fs"
	"os"
	"path"
	"testing"

	"github.com/fernandofreitas03/textfmt/internal/config"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_Get(t *testing.T) {
	t.Run("when there is only the primary directory", func(t *testing.T) {
		t.Run("when the file does not exist", func(t *testing.T) {
			dir := t.TempDir()

			backend, err := config.NewFileBackend(dir)
			require.NoError(t, err)

			value, err := backend.Get("testfile")
			require.NoError(t, err)
			require.Equal(t, "", value)
		})

		t.Run("when the file is otherwise unable to be opened", func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.Chmod(dir, 0o000))
			t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

			backend, err := config.NewFileBackend(dir)
			require.NoError(t, err)

			value, err := backend.Get("testfile")
			require.Error(t, err)
			require.Contains(t, err.Error(), "unable to open")
			require.ErrorIs(t, err, fs.ErrPermission)
			require.Equal(t, "", value)
		})

		t.Run("when the file is present and has contents", func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(path.Join(dir, "testfile"), []byte("the-value\n"), 0o644))

			backend, err := config.NewFileBackend(dir)
			require.NoError(t, err)

			value, err := backend.Get("testfile")
			require.NoError(t, err)
			require.Equal(t, "the-value", value)
		})
	})

	t.Run("when there are legacy directories", func(t *testing.T) {
		t.Run("prefers the primary directory", func(t *testing.T) {
			primary := t.TempDir()
			legacy := t.TempDir()
			require.NoError(t, os.WriteFile(path.Join(primary, "testfile"), []byte("primary"), 0o644))
			require.NoError(t, os.WriteFile(path.Join(legacy, "testfile"), []byte("legacy"), 0o644))

			backend, err := config.NewFileBackend(primary, legacy)
			require.NoError(t, err)

			value, err := backend.Get("testfile")
			require.NoError(t, err)
			require.Equal(t, "primary", value)
		})

		t.Run("migrates a value found in a legacy directory", func(t *testing.T) {
			primary := t.TempDir()
			legacy := t.TempDir()
			require.NoError(t, os.WriteFile(path.Join(legacy, "testfile"), []byte("legacy"), 0o644))

			backend, err := config.NewFileBackend(primary, legacy)
			require.NoError(t, err)

			value, err := backend.Get("testfile")
			require.NoError(t, err)
			require.Equal(t, "legacy", value)

			migrated, err := os.ReadFile(path.Join(primary, "testfile"))
			require.NoError(t, err)
			require.Equal(t, "legacy", string(migrated))
		})

		t.Run("when the file exists nowhere", func(t *testing.T) {
			backend, err := config.NewFileBackend(t.TempDir(), t.TempDir())
			require.NoError(t, err)

			value, err := backend.Get("testfile")
			require.NoError(t, err)
			require.Equal(t, "", value)
		})
	})
}

func TestFileBackend_Set(t *testing.T) {
	t.Run("creates the directory when it does not exist", func(t *testing.T) {
		dir := path.Join(t.TempDir(), "nested", "config")

		backend, err := config.NewFileBackend(dir)
		require.NoError(t, err)

		require.NoError(t, backend.Set("testfile", "the-value"))

		contents, err := os.ReadFile(path.Join(dir, "testfile"))
		require.NoError(t, err)
		require.Equal(t, "the-value", string(contents))
	})

	t.Run("overwrites an existing value", func(t *testing.T) {
		dir := t.TempDir()

		backend, err := config.NewFileBackend(dir)
		require.NoError(t, err)

		require.NoError(t, backend.Set("testfile", "first"))
		require.NoError(t, backend.Set("testfile", "second"))

		value, err := backend.Get("testfile")
		require.NoError(t, err)
		require.Equal(t, "second", value)
	})
}
