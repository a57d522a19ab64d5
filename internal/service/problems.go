// internal/service/problems.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"medadmin/internal/client"
	"medadmin/internal/model"
	"medadmin/internal/validate"
)

type ProblemService interface {
	List(ctx context.Context) (model.ListPage[model.ProblemManagement], error)
	ListByProgress(ctx context.Context, progressID int64) (model.ListPage[model.ProblemManagement], error)
	Get(ctx context.Context, id int64) (*model.ProblemManagement, error)
	Create(ctx context.Context, req *model.CreateProblemRequest) (*model.ProblemManagement, error)
	CreateWithImage(ctx context.Context, req *model.CreateProblemRequest, image *client.FilePart) (*model.ProblemManagement, error)
	Update(ctx context.Context, id int64, req *model.CreateProblemRequest) (*model.ProblemManagement, error)
	Delete(ctx context.Context, id int64) error
	BulkCreate(ctx context.Context, reqs []model.CreateProblemRequest) ([]model.ProblemManagement, error)
	BulkCreateSelects(ctx context.Context, reqs []model.CreateProblemSelectRequest) ([]model.ProblemSelect, error)
	CountByProgress(ctx context.Context, progressIDs []int64) (map[int64]int, error)
}

type problemService struct {
	api    *client.Client
	logger *slog.Logger
}

func NewProblemService(api *client.Client, logger *slog.Logger) ProblemService {
	return &problemService{api: api, logger: logger}
}

func (s *problemService) List(ctx context.Context) (model.ListPage[model.ProblemManagement], error) {
	return list[model.ProblemManagement](ctx, s.api, "/admin/problems/", s.logger)
}

func (s *problemService) ListByProgress(ctx context.Context, progressID int64) (model.ListPage[model.ProblemManagement], error) {
	path := fmt.Sprintf("/admin/problems/?progress=%d", progressID)
	return list[model.ProblemManagement](ctx, s.api, path, s.logger)
}

func (s *problemService) Get(ctx context.Context, id int64) (*model.ProblemManagement, error) {
	var problem model.ProblemManagement
	if err := s.api.Get(ctx, fmt.Sprintf("/admin/problems/%d/", id), &problem); err != nil {
		return nil, err
	}
	return &problem, nil
}

func (s *problemService) Create(ctx context.Context, req *model.CreateProblemRequest) (*model.ProblemManagement, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var created model.ProblemManagement
	if err := s.api.Post(ctx, "/admin/problems/", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateWithImage submits through the multipart path; the generic JSON
// wrapper only understands JSON bodies.
func (s *problemService) CreateWithImage(ctx context.Context, req *model.CreateProblemRequest, image *client.FilePart) (*model.ProblemManagement, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	fields := client.Fields(map[string]any{
		"progress":  req.ProgressID,
		"problem":   req.Content,
		"answer":    req.Answer,
		"solution":  req.Solution,
		"exam_year": req.ExamYear,
		"sequence":  req.Sequence,
	})
	var created model.ProblemManagement
	if err := s.api.DoMultipart(ctx, "POST", "/admin/problems/", fields, image, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *problemService) Update(ctx context.Context, id int64, req *model.CreateProblemRequest) (*model.ProblemManagement, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	var updated model.ProblemManagement
	if err := s.api.Put(ctx, fmt.Sprintf("/admin/problems/%d/", id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *problemService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/admin/problems/%d/", id))
}

// BulkCreate submits all problems in one call. The response must echo the
// created records in request order; the length check makes the positional
// dependency explicit instead of assuming it.
func (s *problemService) BulkCreate(ctx context.Context, reqs []model.CreateProblemRequest) ([]model.ProblemManagement, error) {
	var created []model.ProblemManagement
	if err := s.api.Post(ctx, "/admin/problems/bulk_create/", reqs, &created); err != nil {
		return nil, err
	}
	if len(created) != len(reqs) {
		return nil, fmt.Errorf("%w: sent %d problems, got %d back", ErrBulkMismatch, len(reqs), len(created))
	}
	return created, nil
}

func (s *problemService) BulkCreateSelects(ctx context.Context, reqs []model.CreateProblemSelectRequest) ([]model.ProblemSelect, error) {
	var created []model.ProblemSelect
	if err := s.api.Post(ctx, "/admin/problem-selects/bulk_create/", reqs, &created); err != nil {
		return nil, err
	}
	if len(created) != len(reqs) {
		return nil, fmt.Errorf("%w: sent %d choices, got %d back", ErrBulkMismatch, len(reqs), len(created))
	}
	return created, nil
}

// CountByProgress fans out one count lookup per progress concurrently, the
// second of the two fixed parallel call sites the console had.
func (s *problemService) CountByProgress(ctx context.Context, progressIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(progressIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range progressIDs {
		id := id
		g.Go(func() error {
			page, err := s.ListByProgress(gctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			counts[id] = page.Count
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
