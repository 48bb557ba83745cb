package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uzdict/dictadmin/internal/api"
)

type noTokens struct{}

func (noTokens) Token() string { return "" }

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, noTokens{})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(client)
}

func TestService_ListDepartments(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "bare array",
			body: `[{"_id": "dep1", "name": "Fruits", "dictionary": "d1"}]`,
		},
		{
			name: "wrapped object",
			body: `{"departments": [{"_id": "dep1", "name": "Fruits", "dictionary": "d1"}]}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/departments", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			})

			got, err := service.ListDepartments(context.Background())
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "dep1", got[0].ID)
			assert.Equal(t, "Fruits", got[0].Name)
			assert.Equal(t, "d1", got[0].Dictionary.ID)
		})
	}
}

func TestService_CreateDepartment(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "wrapped response",
			body: `{"department": {"_id": "dep1", "name": "Fruits"}}`,
		},
		{
			name: "bare response",
			body: `{"_id": "dep1", "name": "Fruits"}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/departments", r.URL.Path)

				var payload map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				assert.Equal(t, "Fruits", payload["name"])
				assert.Equal(t, "d1", payload["dictionaryId"])

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			})

			got, err := service.CreateDepartment(context.Background(), DepartmentInput{
				Name:         "Fruits",
				DictionaryID: "d1",
			})
			require.NoError(t, err)
			assert.Equal(t, "dep1", got.ID)
			assert.Equal(t, "Fruits", got.Name)
		})
	}
}

func TestService_CreateWord_Payload(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/words", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Olma", payload["name"])
		assert.Equal(t, "apple", payload["meaning"])
		assert.Equal(t, "d1", payload["dictionary"])
		assert.Equal(t, "dep1", payload["department"])
		assert.Equal(t, "c1", payload["category"])
		assert.Equal(t, "historical", payload["dictType"])
		_, hasImage := payload["imageUrl"]
		assert.False(t, hasImage)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id": "w1", "name": "Olma"}`))
	})

	got, err := service.CreateWord(context.Background(), WordInput{
		Name:           "Olma",
		Meaning:        "apple",
		DictionaryID:   "d1",
		DepartmentID:   "dep1",
		CategoryID:     "c1",
		DictionaryType: DictionaryTypeHistorical,
	})
	require.NoError(t, err)
	assert.Equal(t, "w1", got.ID)
}

func TestService_UpdateDictionary(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/dictionaries/d1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id": "d1", "name": "Devon", "type": "contemporary"}`))
	})

	got, err := service.UpdateDictionary(context.Background(), "d1", DictionaryInput{
		Name: "Devon",
		Type: DictionaryTypeContemporary,
	})
	require.NoError(t, err)
	assert.Equal(t, DictionaryTypeContemporary, got.Type)
}

func TestService_DeleteWord(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/words/w1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, service.DeleteWord(context.Background(), "w1"))
}

func TestService_ListDictionaries_Error(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "invalid token"}`))
	})

	_, err := service.ListDictionaries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}
