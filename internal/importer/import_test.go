// internal/importer/import_test.go
package importer_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medadmin/internal/auth"
	"medadmin/internal/client"
	"medadmin/internal/importer"
	"medadmin/internal/model"
	"medadmin/internal/service"
)

// fakeBackend is a minimal stand-in for the admin API, just enough state for
// the import flows: fixed reference lists plus captured submissions.
type fakeBackend struct {
	router *chi.Mux

	createdProgresses []model.CreateProgressRequest
	bulkProblems      []model.CreateProblemRequest
	bulkSelects       []model.CreateProblemSelectRequest
	bulkCards         []model.CreateMemoProblemRequest

	failProgressCreateAfter int // 0 disables; N fails the N+1th create
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{router: chi.NewRouter(), failProgressCreateAfter: -1}

	b.router.Get("/admin/subjects/", func(w http.ResponseWriter, _ *http.Request) {
		writeListEnvelope(w, []model.Subject{
			{ID: 1, Name: "해부학"},
			{ID: 2, Name: "생리학"},
		})
	})
	b.router.Get("/admin/progresses/", func(w http.ResponseWriter, _ *http.Request) {
		writeListEnvelope(w, []model.ProblemProgress{
			{ID: 10, Name: "심장의 구조", Day: 1},
			{ID: 11, Name: "호르몬", Day: 2},
		})
	})
	b.router.Get("/admin/memo-progresses/", func(w http.ResponseWriter, _ *http.Request) {
		writeListEnvelope(w, []model.MemoProgress{
			{ID: 20, Name: "해부학 용어"},
		})
	})

	b.router.Post("/admin/progresses/", func(w http.ResponseWriter, r *http.Request) {
		if b.failProgressCreateAfter >= 0 && len(b.createdProgresses) >= b.failProgressCreateAfter {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail":"database is on fire"}`))
			return
		}
		var req model.CreateProgressRequest
		json.NewDecoder(r.Body).Decode(&req)
		b.createdProgresses = append(b.createdProgresses, req)
		json.NewEncoder(w).Encode(model.ProblemProgress{
			ID:   int64(100 + len(b.createdProgresses)),
			Name: req.Name,
			Day:  req.Day,
		})
	})

	b.router.Post("/admin/problems/bulk_create/", func(w http.ResponseWriter, r *http.Request) {
		var reqs []model.CreateProblemRequest
		json.NewDecoder(r.Body).Decode(&reqs)
		b.bulkProblems = reqs
		created := make([]model.ProblemManagement, len(reqs))
		for i, req := range reqs {
			created[i] = model.ProblemManagement{
				ID:         int64(200 + i),
				ProgressID: req.ProgressID,
				Content:    req.Content,
				Answer:     req.Answer,
			}
		}
		json.NewEncoder(w).Encode(created)
	})
	b.router.Post("/admin/problem-selects/bulk_create/", func(w http.ResponseWriter, r *http.Request) {
		var reqs []model.CreateProblemSelectRequest
		json.NewDecoder(r.Body).Decode(&reqs)
		b.bulkSelects = reqs
		created := make([]model.ProblemSelect, len(reqs))
		for i, req := range reqs {
			created[i] = model.ProblemSelect{
				ID:        int64(300 + i),
				ProblemID: req.ProblemID,
				Sequence:  req.Sequence,
				Content:   req.Content,
			}
		}
		json.NewEncoder(w).Encode(created)
	})

	b.router.Post("/admin/memo-problems/bulk_create/", func(w http.ResponseWriter, r *http.Request) {
		var reqs []model.CreateMemoProblemRequest
		json.NewDecoder(r.Body).Decode(&reqs)
		b.bulkCards = reqs
		created := make([]model.MemoProblemData, len(reqs))
		for i, req := range reqs {
			created[i] = model.MemoProblemData{
				ID:             int64(400 + i),
				MemoProgressID: req.MemoProgressID,
				Front:          req.Front,
				Back:           req.Back,
			}
		}
		json.NewEncoder(w).Encode(created)
	})

	return b
}

func writeListEnvelope(w http.ResponseWriter, results any) {
	json.NewEncoder(w).Encode(map[string]any{
		"count":    0,
		"next":     nil,
		"previous": nil,
		"results":  results,
	})
}

func newImportClient(t *testing.T, backend *fakeBackend) *client.Client {
	t.Helper()
	server := httptest.NewServer(backend.router)
	t.Cleanup(server.Close)
	tokens := auth.NewFileTokenStore(filepath.Join(t.TempDir(), "token"))
	return client.New(server.URL, tokens, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestProgressImporter_SkipsBadRowsAndCreatesTheRest(t *testing.T) {
	backend := newFakeBackend()
	api := newImportClient(t, backend)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	im := importer.NewProgressImporter(
		service.NewSubjectService(api, logger),
		service.NewProgressService(api, logger),
		logger,
	)

	path := writeCSV(t, "과목명,진도,day,난이도\n"+
		"해부학,심장의 구조,1,기본\n"+
		"해부학,혈관,둘째날,심화\n"+ // non-numeric day
		"생리학,호르몬,2,\n")

	result, err := im.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Created)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 3, result.Skipped[0].Line)
	assert.Contains(t, result.Skipped[0].Reason, "day")
	assert.Equal(t, "2 items uploaded", result.Summary())

	require.Len(t, backend.createdProgresses, 2)
	first := backend.createdProgresses[0]
	assert.Equal(t, "심장의 구조", first.Name)
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, model.DifficultyBasic, first.Difficulty)
	require.NotNil(t, first.SubjectID)
	assert.Equal(t, int64(1), *first.SubjectID)
	// blank difficulty cell stays unset
	assert.Empty(t, backend.createdProgresses[1].Difficulty)
}

func TestProgressImporter_UnknownSubjectIsSkipped(t *testing.T) {
	backend := newFakeBackend()
	api := newImportClient(t, backend)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	im := importer.NewProgressImporter(
		service.NewSubjectService(api, logger),
		service.NewProgressService(api, logger),
		logger,
	)

	path := writeCSV(t, "subject,name,day\n약리학,작용기전,1\n")

	result, err := im.Run(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, result.Created)
	require.Len(t, result.Skipped, 1)
	assert.Contains(t, result.Skipped[0].Reason, "약리학")
}

func TestProgressImporter_SubmitFailureAbortsRun(t *testing.T) {
	backend := newFakeBackend()
	backend.failProgressCreateAfter = 1
	api := newImportClient(t, backend)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	im := importer.NewProgressImporter(
		service.NewSubjectService(api, logger),
		service.NewProgressService(api, logger),
		logger,
	)

	path := writeCSV(t, "name,day\n심장,1\n혈관,2\n근육,3\n")

	result, err := im.Run(context.Background(), path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "row 3")
	assert.ErrorContains(t, err, "database is on fire")
	// the first row stays created, the rest never go up
	assert.Equal(t, 1, result.Created)
	assert.Len(t, backend.createdProgresses, 1)
}

func TestProblemImporter_TwoPhaseBulkCreate(t *testing.T) {
	backend := newFakeBackend()
	api := newImportClient(t, backend)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	im := importer.NewProblemImporter(
		service.NewSubjectService(api, logger),
		service.NewProgressService(api, logger),
		service.NewProblemService(api, logger),
		logger,
	)

	path := writeCSV(t, "subject,progress,problem,answer,choice1,choice2,choice3\n"+
		"해부학,심장의 구조,심장의 방 개수는?,2,둘,넷\n"+
		"해부학,심장의 구조,판막의 이름은?,1,승모판,삼첨판,대동맥판\n"+
		"생리학,호르몬,항상성을 서술하시오,1\n"+ // no choices: essay-type
		"해부학,심장의 구조,보기가 부족한 문제,1,하나만\n") // 1 choice: skipped

	result, err := im.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 5, result.ChildRows)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 5, result.Skipped[0].Line)
	assert.Equal(t, "3 items uploaded (5 choice rows)", result.Summary())

	require.Len(t, backend.bulkProblems, 3)
	assert.Equal(t, int64(10), backend.bulkProblems[0].ProgressID)
	assert.Equal(t, int64(11), backend.bulkProblems[2].ProgressID)

	// choices carry the IDs the first bulk call returned, matched by position
	require.Len(t, backend.bulkSelects, 5)
	assert.Equal(t, int64(200), backend.bulkSelects[0].ProblemID)
	assert.Equal(t, 1, backend.bulkSelects[0].Sequence)
	assert.Equal(t, "둘", backend.bulkSelects[0].Content)
	assert.Equal(t, int64(200), backend.bulkSelects[1].ProblemID)
	assert.Equal(t, 2, backend.bulkSelects[1].Sequence)
	assert.Equal(t, int64(201), backend.bulkSelects[2].ProblemID)
	assert.Equal(t, int64(201), backend.bulkSelects[4].ProblemID)
	assert.Equal(t, 3, backend.bulkSelects[4].Sequence)
}

func TestProblemImporter_AllRowsInvalidSubmitsNothing(t *testing.T) {
	backend := newFakeBackend()
	api := newImportClient(t, backend)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	im := importer.NewProblemImporter(
		service.NewSubjectService(api, logger),
		service.NewProgressService(api, logger),
		service.NewProblemService(api, logger),
		logger,
	)

	path := writeCSV(t, "subject,progress,problem,answer\n"+
		"해부학,없는 진도,문제,1\n"+
		"해부학,심장의 구조,,1\n")

	result, err := im.Run(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, result.Created)
	assert.Len(t, result.Skipped, 2)
	assert.Nil(t, backend.bulkProblems)
	assert.Nil(t, backend.bulkSelects)
}

func TestMemoImporter_BulkCreatesCards(t *testing.T) {
	backend := newFakeBackend()
	api := newImportClient(t, backend)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	im := importer.NewMemoImporter(service.NewMemoService(api, logger), logger)

	path := writeCSV(t, "진도,앞면,뒷면\n"+
		"해부학 용어,clavicle,빗장뼈\n"+
		"모르는 덱,femur,넙다리뼈\n"+
		"해부학 용어,scapula,\n")

	result, err := im.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Len(t, result.Skipped, 2)
	require.Len(t, backend.bulkCards, 1)
	assert.Equal(t, int64(20), backend.bulkCards[0].MemoProgressID)
	assert.Equal(t, "clavicle", backend.bulkCards[0].Front)
	assert.Equal(t, "빗장뼈", backend.bulkCards[0].Back)
}
