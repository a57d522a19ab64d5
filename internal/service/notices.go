// internal/service/notices.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"medadmin/internal/client"
	"medadmin/internal/model"
	"medadmin/internal/validate"
)

type NoticeService interface {
	List(ctx context.Context) (model.ListPage[model.Notice], error)
	Get(ctx context.Context, id int64) (*model.Notice, error)
	Create(ctx context.Context, req *model.CreateNoticeRequest) (*model.Notice, error)
	CreateWithImage(ctx context.Context, req *model.CreateNoticeRequest, image *client.FilePart) (*model.Notice, error)
	Update(ctx context.Context, id int64, req *model.UpdateNoticeRequest) (*model.Notice, error)
	UpdateWithImage(ctx context.Context, id int64, req *model.UpdateNoticeRequest, image *client.FilePart) (*model.Notice, error)
	Delete(ctx context.Context, id int64) error
}

type noticeService struct {
	api    *client.Client
	logger *slog.Logger
}

func NewNoticeService(api *client.Client, logger *slog.Logger) NoticeService {
	return &noticeService{api: api, logger: logger}
}

func (s *noticeService) List(ctx context.Context) (model.ListPage[model.Notice], error) {
	// The notices endpoint is the one returning the nonstandard {data:[...]}
	// wrapper; UnwrapList covers it.
	return list[model.Notice](ctx, s.api, "/admin/notices/", s.logger)
}

func (s *noticeService) Get(ctx context.Context, id int64) (*model.Notice, error) {
	var notice model.Notice
	if err := s.api.Get(ctx, fmt.Sprintf("/admin/notices/%d/", id), &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (s *noticeService) Create(ctx context.Context, req *model.CreateNoticeRequest) (*model.Notice, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var created model.Notice
	if err := s.api.Post(ctx, "/admin/notices/", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *noticeService) CreateWithImage(ctx context.Context, req *model.CreateNoticeRequest, image *client.FilePart) (*model.Notice, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var created model.Notice
	err := s.api.DoMultipart(ctx, "POST", "/admin/notices/", s.fields(req.Title, req.Content, req.IsPinned), image, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *noticeService) Update(ctx context.Context, id int64, req *model.UpdateNoticeRequest) (*model.Notice, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var updated model.Notice
	if err := s.api.Put(ctx, fmt.Sprintf("/admin/notices/%d/", id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *noticeService) UpdateWithImage(ctx context.Context, id int64, req *model.UpdateNoticeRequest, image *client.FilePart) (*model.Notice, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var updated model.Notice
	path := fmt.Sprintf("/admin/notices/%d/", id)
	err := s.api.DoMultipart(ctx, "PUT", path, s.fields(req.Title, req.Content, req.IsPinned), image, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *noticeService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/admin/notices/%d/", id))
}

func (s *noticeService) fields(title, content string, pinned bool) map[string]string {
	return client.Fields(map[string]any{
		"title":     title,
		"content":   content,
		"is_pinned": pinned,
	})
}
