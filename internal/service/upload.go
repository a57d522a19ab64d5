// internal/service/upload.go
package service

import (
	"context"
	"io"
	"log/slog"

	"medadmin/internal/client"
)

type UploadService interface {
	UploadImage(ctx context.Context, fileName string, content io.Reader) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
}

type uploadService struct {
	api    *client.Client
	logger *slog.Logger
}

func NewUploadService(api *client.Client, logger *slog.Logger) UploadService {
	return &uploadService{api: api, logger: logger}
}

// UploadImage pushes a standalone image to the generic upload endpoint and
// returns the URL the backend stored it under.
func (s *uploadService) UploadImage(ctx context.Context, fileName string, content io.Reader) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	file := &client.FilePart{FieldName: "image", FileName: fileName, Reader: content}
	if err := s.api.DoMultipart(ctx, "POST", "/admin/upload/", nil, file, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (s *uploadService) DeleteImage(ctx context.Context, imageURL string) error {
	body := map[string]string{"url": imageURL}
	return s.api.Post(ctx, "/admin/upload/delete-image/", body, nil)
}
