// internal/service/popups.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"medadmin/internal/client"
	"medadmin/internal/model"
	"medadmin/internal/validate"
)

type PopupService interface {
	List(ctx context.Context) (model.ListPage[model.Popup], error)
	Get(ctx context.Context, id int64) (*model.Popup, error)
	Create(ctx context.Context, req *model.CreatePopupRequest) (*model.Popup, error)
	CreateWithImage(ctx context.Context, req *model.CreatePopupRequest, image *client.FilePart) (*model.Popup, error)
	Update(ctx context.Context, id int64, req *model.CreatePopupRequest) (*model.Popup, error)
	UpdateWithImage(ctx context.Context, id int64, req *model.CreatePopupRequest, image *client.FilePart) (*model.Popup, error)
	Delete(ctx context.Context, id int64) error
}

type popupService struct {
	api    *client.Client
	logger *slog.Logger
}

func NewPopupService(api *client.Client, logger *slog.Logger) PopupService {
	return &popupService{api: api, logger: logger}
}

func (s *popupService) List(ctx context.Context) (model.ListPage[model.Popup], error) {
	return list[model.Popup](ctx, s.api, "/admin/popups/", s.logger)
}

func (s *popupService) Get(ctx context.Context, id int64) (*model.Popup, error) {
	var popup model.Popup
	if err := s.api.Get(ctx, fmt.Sprintf("/admin/popups/%d/", id), &popup); err != nil {
		return nil, err
	}
	return &popup, nil
}

func (s *popupService) Create(ctx context.Context, req *model.CreatePopupRequest) (*model.Popup, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var created model.Popup
	if err := s.api.Post(ctx, "/admin/popups/", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *popupService) CreateWithImage(ctx context.Context, req *model.CreatePopupRequest, image *client.FilePart) (*model.Popup, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var created model.Popup
	if err := s.api.DoMultipart(ctx, "POST", "/admin/popups/", s.fields(req), image, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *popupService) Update(ctx context.Context, id int64, req *model.CreatePopupRequest) (*model.Popup, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var updated model.Popup
	if err := s.api.Put(ctx, fmt.Sprintf("/admin/popups/%d/", id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *popupService) UpdateWithImage(ctx context.Context, id int64, req *model.CreatePopupRequest, image *client.FilePart) (*model.Popup, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var updated model.Popup
	path := fmt.Sprintf("/admin/popups/%d/", id)
	if err := s.api.DoMultipart(ctx, "PUT", path, s.fields(req), image, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *popupService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/admin/popups/%d/", id))
}

func (s *popupService) fields(req *model.CreatePopupRequest) map[string]string {
	return client.Fields(map[string]any{
		"title":      req.Title,
		"link_url":   req.LinkURL,
		"is_active":  req.IsActive,
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
	})
}
