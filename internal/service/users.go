// internal/service/users.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"medadmin/internal/client"
	"medadmin/internal/model"
	"medadmin/internal/validate"
)

type UserService interface {
	List(ctx context.Context) (model.ListPage[model.User], error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	api    *client.Client
	logger *slog.Logger
}

func NewUserService(api *client.Client, logger *slog.Logger) UserService {
	return &userService{api: api, logger: logger}
}

func (s *userService) List(ctx context.Context) (model.ListPage[model.User], error) {
	return list[model.User](ctx, s.api, "/admin/users/", s.logger)
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := s.api.Get(ctx, fmt.Sprintf("/admin/users/%d/", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var updated model.User
	if err := s.api.Put(ctx, fmt.Sprintf("/admin/users/%d/", id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/admin/users/%d/", id))
}
