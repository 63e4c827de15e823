package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSaveAndList(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads/videos")
	require.NoError(t, err)

	require.NoError(t, store.Save("clip.mp4", strings.NewReader("payload")))

	data, err := os.ReadFile(filepath.Join(dir, "clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"clip.mp4"}, names)
}

func TestLocalStorePublicPath(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads/videos")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/videos/clip.mp4", store.PublicPath("clip.mp4"))
}

func TestNewLocalStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStore(dir, "/uploads/videos")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStoreListSkipsDirs(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads/videos")
	require.NoError(t, err)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	require.NoError(t, store.Save("a.mp4", strings.NewReader("x")))

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.mp4"}, names)
}
