package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "photo.png", header.Filename)
		contents, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(contents))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url": "https://cdn.example.com/photo.png"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokenSource("token"))
	defer client.Close()

	result, err := client.Upload(context.Background(), "photo.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/photo.png", result.URL)
}

func TestClient_Upload_MissingURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokenSource("token"))
	defer client.Close()

	_, err := client.Upload(context.Background(), "photo.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty url")
}
