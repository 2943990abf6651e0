package lib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidObjectName(t *testing.T) {
	assert.True(t, ValidObjectName("1700000000000-handbook.pdf"))
	for _, name := range []string{"", ".", "..", "../x", "a/b", "/abs"} {
		assert.False(t, ValidObjectName(name), name)
	}
}

func TestLocalStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)
	ctx := context.Background()

	err = storage.Save(ctx, "1-guide.txt", strings.NewReader("welcome"), 7, "text/plain")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "1-guide.txt"))
	require.NoError(t, err)
	assert.Equal(t, "welcome", string(b))

	err = storage.Save(ctx, "1-guide.txt", strings.NewReader("again"), 5, "text/plain")
	assert.Error(t, err, "existing objects are never overwritten")

	w := httptest.NewRecorder()
	storage.Serve(w, httptest.NewRequest(http.MethodGet, "/uploads/1-guide.txt", nil), "1-guide.txt")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "welcome", w.Body.String())

	require.NoError(t, storage.Remove(ctx, "1-guide.txt"))
	_, err = os.Stat(filepath.Join(dir, "1-guide.txt"))
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, storage.Remove(ctx, "1-guide.txt"))

	w = httptest.NewRecorder()
	storage.Serve(w, httptest.NewRequest(http.MethodGet, "/uploads/1-guide.txt", nil), "1-guide.txt")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	err = storage.Save(context.Background(), "../escape.txt", strings.NewReader("x"), 1, "text/plain")
	assert.ErrorIs(t, err, ErrInvalidObjectName)
}
