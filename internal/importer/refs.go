// internal/importer/refs.go
package importer

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"medadmin/internal/model"
	"medadmin/internal/service"
)

// refIndex resolves a human-readable name to a backend ID. Lookup is by
// exact trimmed string match, case-sensitive; no fuzzy matching.
type refIndex map[string]int64

func (idx refIndex) resolve(name string) (int64, bool) {
	id, ok := idx[strings.TrimSpace(name)]
	return id, ok
}

func subjectIndex(page model.ListPage[model.Subject]) refIndex {
	idx := make(refIndex, len(page.Items))
	for _, s := range page.Items {
		idx[strings.TrimSpace(s.Name)] = s.ID
	}
	return idx
}

func progressIndex(page model.ListPage[model.ProblemProgress]) refIndex {
	idx := make(refIndex, len(page.Items))
	for _, p := range page.Items {
		idx[strings.TrimSpace(p.Name)] = p.ID
	}
	return idx
}

func memoProgressIndex(page model.ListPage[model.MemoProgress]) refIndex {
	idx := make(refIndex, len(page.Items))
	for _, p := range page.Items {
		idx[strings.TrimSpace(p.Name)] = p.ID
	}
	return idx
}

// fetchSubjectAndProgressRefs loads both reference lists concurrently; the
// pair is always needed together for problem imports.
func fetchSubjectAndProgressRefs(ctx context.Context, subjects service.SubjectService, progresses service.ProgressService) (refIndex, refIndex, error) {
	var subjectIdx, progressIdx refIndex

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := subjects.List(gctx)
		if err != nil {
			return err
		}
		subjectIdx = subjectIndex(page)
		return nil
	})
	g.Go(func() error {
		page, err := progresses.List(gctx)
		if err != nil {
			return err
		}
		progressIdx = progressIndex(page)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return subjectIdx, progressIdx, nil
}
