package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokenSource string

func (s staticTokenSource) Token() string { return string(s) }

func TestClient_AuthorizationHeader(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{
			name:       "token attached as bearer header",
			token:      "secret-token",
			wantHeader: "Bearer secret-token",
		},
		{
			name:       "no header without a token",
			token:      "",
			wantHeader: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotHeader string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("Authorization")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[]`))
			}))
			defer server.Close()

			client := NewClient(server.URL, staticTokenSource(tc.token))
			defer client.Close()

			var out []struct{}
			err := client.Get(context.Background(), "/dictionary", &out)
			require.NoError(t, err)
			assert.Equal(t, tc.wantHeader, gotHeader)
		})
	}
}

func TestClient_ErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantMessage string
	}{
		{
			name:        "message field",
			statusCode:  http.StatusBadRequest,
			body:        `{"message": "name is taken"}`,
			wantMessage: "name is taken",
		},
		{
			name:        "error field",
			statusCode:  http.StatusUnauthorized,
			body:        `{"error": "invalid token"}`,
			wantMessage: "invalid token",
		},
		{
			name:        "non-JSON body falls back to the generic message",
			statusCode:  http.StatusInternalServerError,
			body:        `<html>oops</html>`,
			wantMessage: genericErrorMessage,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, staticTokenSource(""))
			defer client.Close()

			err := client.Delete(context.Background(), "/word/1")
			require.Error(t, err)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.statusCode, apiErr.StatusCode)
			assert.Equal(t, tc.wantMessage, apiErr.Message)
			assert.Contains(t, apiErr.Error(), tc.wantMessage)
		})
	}
}

func TestClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/dictionary", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id": "d1", "name": "Devon"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokenSource("token"))
	defer client.Close()

	var out struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	err := client.Post(context.Background(), "/dictionary", map[string]string{"name": "Devon"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "d1", out.ID)
	assert.Equal(t, "Devon", out.Name)
}
