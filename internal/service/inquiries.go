// internal/service/inquiries.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"medadmin/internal/client"
	"medadmin/internal/model"
	"medadmin/internal/validate"
)

type InquiryService interface {
	List(ctx context.Context) (model.ListPage[model.Inquiry], error)
	Get(ctx context.Context, id int64) (*model.Inquiry, error)
	Reply(ctx context.Context, id int64, req *model.ReplyInquiryRequest) (*model.Inquiry, error)
	Delete(ctx context.Context, id int64) error
}

type inquiryService struct {
	api    *client.Client
	logger *slog.Logger
}

func NewInquiryService(api *client.Client, logger *slog.Logger) InquiryService {
	return &inquiryService{api: api, logger: logger}
}

func (s *inquiryService) List(ctx context.Context) (model.ListPage[model.Inquiry], error) {
	return list[model.Inquiry](ctx, s.api, "/admin/inquiries/", s.logger)
}

func (s *inquiryService) Get(ctx context.Context, id int64) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	if err := s.api.Get(ctx, fmt.Sprintf("/admin/inquiries/%d/", id), &inquiry); err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (s *inquiryService) Reply(ctx context.Context, id int64, req *model.ReplyInquiryRequest) (*model.Inquiry, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var replied model.Inquiry
	if err := s.api.Patch(ctx, fmt.Sprintf("/admin/inquiries/%d/", id), req, &replied); err != nil {
		return nil, err
	}
	return &replied, nil
}

func (s *inquiryService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/admin/inquiries/%d/", id))
}
