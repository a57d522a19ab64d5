// internal/service/service_test.go
package service_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medadmin/internal/auth"
	"medadmin/internal/client"
	"medadmin/internal/model"
	"medadmin/internal/service"
)

func newServiceClient(t *testing.T, router http.Handler) (*client.Client, *auth.FileTokenStore) {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	tokens := auth.NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	return client.New(server.URL, tokens, 0, discardLogger()), tokens
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthLogin_TokenKeyPriority(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"access wins over the rest", `{"access":"a1","access_token":"a2","token":"a3"}`, "a1"},
		{"access_token is second", `{"access_token":"a2","token":"a3"}`, "a2"},
		{"token is last", `{"token":"a3"}`, "a3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/admin/auth/login/", func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tc.body))
			})
			api, tokens := newServiceClient(t, r)
			svc := service.NewAuthService(api, tokens, discardLogger())

			token, err := svc.Login(context.Background(), "admin@example.com", "hunter2")
			require.NoError(t, err)
			assert.Equal(t, tc.want, token)
			assert.Equal(t, tc.want, tokens.Token(), "login persists the token")
		})
	}
}

func TestAuthLogin_NoTokenInResponse(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/admin/auth/login/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"message":"ok"}`))
	})
	api, tokens := newServiceClient(t, r)
	svc := service.NewAuthService(api, tokens, discardLogger())

	_, err := svc.Login(context.Background(), "admin@example.com", "hunter2")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no token")
	assert.Empty(t, tokens.Token())
}

func TestAuthLogin_RejectsInvalidEmail(t *testing.T) {
	api, tokens := newServiceClient(t, chi.NewRouter())
	svc := service.NewAuthService(api, tokens, discardLogger())

	_, err := svc.Login(context.Background(), "not-an-email", "hunter2")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestAuthLogout_ClearsToken(t *testing.T) {
	api, tokens := newServiceClient(t, chi.NewRouter())
	require.NoError(t, tokens.Save("tok"))

	svc := service.NewAuthService(api, tokens, discardLogger())
	require.NoError(t, svc.Logout())
	assert.Empty(t, tokens.Token())
}

func TestBulkCreate_LengthMismatch(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/admin/problems/bulk_create/", func(w http.ResponseWriter, _ *http.Request) {
		// echo one record for two submitted
		json.NewEncoder(w).Encode([]model.ProblemManagement{{ID: 1, ProgressID: 10, Content: "q", Answer: 1}})
	})
	api, _ := newServiceClient(t, r)
	svc := service.NewProblemService(api, discardLogger())

	reqs := []model.CreateProblemRequest{
		{ProgressID: 10, Content: "q1", Answer: 1},
		{ProgressID: 10, Content: "q2", Answer: 2},
	}
	_, err := svc.BulkCreate(context.Background(), reqs)
	assert.ErrorIs(t, err, service.ErrBulkMismatch)
}

func TestListSubjects_NormalizesEnvelopes(t *testing.T) {
	// one service, two endpoints with different list shapes
	r := chi.NewRouter()
	r.Get("/admin/subjects/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"count":2,"next":null,"previous":null,"results":[{"id":1,"name":"해부학"},{"id":2,"name":"생리학"}]}`))
	})
	r.Get("/admin/prepare-majors/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"의예과"}]`))
	})
	api, _ := newServiceClient(t, r)
	svc := service.NewSubjectService(api, discardLogger())

	subjects, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, subjects.Count)
	require.Len(t, subjects.Items, 2)
	assert.Equal(t, "해부학", subjects.Items[0].Name)

	majors, err := svc.ListPrepareMajors(context.Background())
	require.NoError(t, err)
	require.Len(t, majors.Items, 1)
	assert.Equal(t, "의예과", majors.Items[0].Name)
}

func TestCountByProgress(t *testing.T) {
	r := chi.NewRouter()
	counts := map[string]int{"10": 4, "11": 0, "12": 9}
	r.Get("/admin/problems/", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"count":    counts[req.URL.Query().Get("progress")],
			"next":     nil,
			"previous": nil,
			"results":  []any{},
		})
	})
	api, _ := newServiceClient(t, r)
	svc := service.NewProblemService(api, discardLogger())

	got, err := svc.CountByProgress(context.Background(), []int64{10, 11, 12})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{10: 4, 11: 0, 12: 9}, got)
}

func TestUploadImage_ReturnsStoredURL(t *testing.T) {
	var gotFileName, gotContent string
	r := chi.NewRouter()
	r.Post("/admin/upload/", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseMultipartForm(1<<20))
		file, header, err := req.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		gotFileName = header.Filename
		gotContent = string(data)
		json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/media/diagram.png"})
	})
	api, _ := newServiceClient(t, r)
	svc := service.NewUploadService(api, discardLogger())

	url, err := svc.UploadImage(context.Background(), "diagram.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/media/diagram.png", url)
	assert.Equal(t, "diagram.png", gotFileName)
	assert.Equal(t, "png-bytes", gotContent)
}

func TestDeleteImage_PostsURL(t *testing.T) {
	var gotBody map[string]string
	r := chi.NewRouter()
	r.Post("/admin/upload/delete-image/", func(w http.ResponseWriter, req *http.Request) {
		json.NewDecoder(req.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	})
	api, _ := newServiceClient(t, r)
	svc := service.NewUploadService(api, discardLogger())

	require.NoError(t, svc.DeleteImage(context.Background(), "https://cdn.example.com/media/diagram.png"))
	assert.Equal(t, "https://cdn.example.com/media/diagram.png", gotBody["url"])
}
