package upload_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DhavalSuthar-24/skillswap/internal/testutil"
	"github.com/DhavalSuthar-24/skillswap/internal/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, filename string, content []byte, token string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestUploadFile(t *testing.T) {
	app := testutil.NewApp(t)
	_, tok := app.CreateUser(t, "alice@example.com", "Alice")

	rec := app.Serve(multipartRequest(t, "file", "Avatar.PNG", []byte("fake image"), tok))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp upload.UploadResponse
	testutil.DecodeData(t, rec, &resp)
	require.True(t, strings.HasPrefix(resp.URL, upload.PublicPrefix+"/"), resp.URL)
	assert.True(t, strings.HasSuffix(resp.URL, ".png"))

	name := strings.TrimPrefix(resp.URL, upload.PublicPrefix+"/")
	stored, err := os.ReadFile(filepath.Join(app.Config.App.UploadDir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image", string(stored))

	rec = app.Do(t, http.MethodGet, resp.URL, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fake image", rec.Body.String())
}

func TestUploadRejections(t *testing.T) {
	app := testutil.NewApp(t)
	_, tok := app.CreateUser(t, "alice@example.com", "Alice")

	t.Run("anonymous", func(t *testing.T) {
		rec := app.Serve(multipartRequest(t, "file", "a.txt", []byte("x"), ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong field", func(t *testing.T) {
		rec := app.Serve(multipartRequest(t, "attachment", "a.txt", []byte("x"), tok))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("too large", func(t *testing.T) {
		big := bytes.Repeat([]byte("a"), app.Config.App.MaxUploadSizeMB<<20+1)
		rec := app.Serve(multipartRequest(t, "file", "big.bin", big, tok))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	entries, err := os.ReadDir(app.Config.App.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
