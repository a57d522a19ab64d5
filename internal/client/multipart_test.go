// internal/client/multipart_test.go
package client_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medadmin/internal/client"
	"medadmin/internal/model"
)

func TestDoMultipart_UploadsFieldsAndFile(t *testing.T) {
	var gotFields map[string]string
	var gotFile string
	api, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for key := range r.MultipartForm.Value {
			gotFields[key] = r.FormValue(key)
		}
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		gotFile = header.Filename
		w.Write([]byte(`{"id":7,"title":"공지"}`))
	}))
	require.NoError(t, tokens.Save("tok"))

	fields := client.Fields(map[string]any{
		"title":      "공지",
		"content":    "",
		"is_visible": true,
		"priority":   3,
		"author":     nil,
	})

	var out model.Notice
	err := api.DoMultipart(context.Background(), http.MethodPost, "/admin/notices/",
		fields, &client.FilePart{FieldName: "image", FileName: "banner.png", Reader: strings.NewReader("png-bytes")}, &out)
	require.NoError(t, err)

	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "banner.png", gotFile)
	assert.Equal(t, "공지", gotFields["title"])
	assert.Equal(t, "true", gotFields["is_visible"])
	assert.Equal(t, "3", gotFields["priority"])
	_, hasContent := gotFields["content"]
	assert.False(t, hasContent, "empty strings are dropped")
	_, hasAuthor := gotFields["author"]
	assert.False(t, hasAuthor, "nil values are dropped")
}

func TestDoMultipart_401ClearsStoredToken(t *testing.T) {
	api, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"token expired"}`))
	}))
	require.NoError(t, tokens.Save("stale-token"))

	err := api.DoMultipart(context.Background(), http.MethodPost, "/admin/notices/",
		map[string]string{"title": "x"}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	assert.Empty(t, tokens.Token(), "401 clears the persisted token")
}

func TestDoMultipart_OtherErrorsKeepToken(t *testing.T) {
	api, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"invalid image"}`))
	}))
	require.NoError(t, tokens.Save("still-good"))

	err := api.DoMultipart(context.Background(), http.MethodPost, "/admin/popups/",
		map[string]string{"title": "x"}, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "still-good", tokens.Token())
}
