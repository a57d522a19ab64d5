// internal/client/client_test.go
package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medadmin/internal/auth"
	"medadmin/internal/client"
	"medadmin/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) (*client.Client, *auth.FileTokenStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := auth.NewFileTokenStore(filepath.Join(t.TempDir(), "admin_token"))
	return client.New(server.URL, tokens, 0, nil), tokens
}

func TestDo_ErrorMessagePriority(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "detail wins",
			status:      http.StatusBadRequest,
			body:        `{"detail":"과목 이름이 중복됩니다","error":"secondary"}`,
			wantMessage: "과목 이름이 중복됩니다",
		},
		{
			name:        "error is the fallback key",
			status:      http.StatusBadRequest,
			body:        `{"error":"something broke"}`,
			wantMessage: "something broke",
		},
		{
			name:        "unknown JSON body is stringified",
			status:      http.StatusBadRequest,
			body:        `{"weird":1}`,
			wantMessage: `{"weird":1}`,
		},
		{
			name:        "non-JSON body is used verbatim",
			status:      http.StatusBadGateway,
			body:        "upstream exploded",
			wantMessage: "upstream exploded",
		},
		{
			name:        "empty body falls back to the status line",
			status:      http.StatusInternalServerError,
			body:        "",
			wantMessage: "HTTP Error: 500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))

			err := api.Get(context.Background(), "/admin/subjects/", nil)
			require.Error(t, err)

			var apiErr *model.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.wantMessage, apiErr.Message)
		})
	}
}

func TestDo_ErrorClassMapping(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"없음"}`))
	}))

	err := api.Get(context.Background(), "/admin/subjects/99/", nil)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDo_EmptyBodySuccess(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/admin/subjects/{id}/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Delete("/admin/notices/{id}/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "0")
		w.WriteHeader(http.StatusOK)
	})

	api, _ := newTestClient(t, r)

	assert.NoError(t, api.Delete(context.Background(), "/admin/subjects/1/"))
	assert.NoError(t, api.Delete(context.Background(), "/admin/notices/1/"))
}

func TestDo_UnparsableSuccessBodyIsTolerated(t *testing.T) {
	api, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>surprise</html>"))
	}))

	var out model.Subject
	err := api.Get(context.Background(), "/admin/subjects/1/", &out)
	assert.NoError(t, err)
	assert.Zero(t, out.ID)
}

func TestDo_BearerHeader(t *testing.T) {
	var gotAuth, gotContentType string
	api, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))

	// no token stored: header omitted
	require.NoError(t, api.Get(context.Background(), "/admin/users/", nil))
	assert.Empty(t, gotAuth)

	require.NoError(t, tokens.Save("tok-123"))
	require.NoError(t, api.Get(context.Background(), "/admin/users/", nil))
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}
