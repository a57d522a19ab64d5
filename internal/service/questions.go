// internal/service/questions.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"medadmin/internal/client"
	"medadmin/internal/model"
	"medadmin/internal/validate"
)

type QuestionService interface {
	List(ctx context.Context) (model.ListPage[model.Question], error)
	Get(ctx context.Context, id int64) (*model.Question, error)
	Answer(ctx context.Context, id int64, req *model.AnswerQuestionRequest) (*model.Question, error)
	Delete(ctx context.Context, id int64) error
}

type questionService struct {
	api    *client.Client
	logger *slog.Logger
}

func NewQuestionService(api *client.Client, logger *slog.Logger) QuestionService {
	return &questionService{api: api, logger: logger}
}

func (s *questionService) List(ctx context.Context) (model.ListPage[model.Question], error) {
	return list[model.Question](ctx, s.api, "/admin/questions/", s.logger)
}

func (s *questionService) Get(ctx context.Context, id int64) (*model.Question, error) {
	var question model.Question
	if err := s.api.Get(ctx, fmt.Sprintf("/admin/questions/%d/", id), &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// Answer patches only the answer field; the Q&A screen saved answers inline.
func (s *questionService) Answer(ctx context.Context, id int64, req *model.AnswerQuestionRequest) (*model.Question, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var answered model.Question
	if err := s.api.Patch(ctx, fmt.Sprintf("/admin/questions/%d/", id), req, &answered); err != nil {
		return nil, err
	}
	return &answered, nil
}

func (s *questionService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/admin/questions/%d/", id))
}
