package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/inovacc/iconsync/internal/api"
	"github.com/inovacc/iconsync/internal/model"
)

// fakeFetcher is an IconFetcher serving canned responses.
type fakeFetcher struct {
	mu        sync.Mutex
	responses map[string]*api.ProjectIconsResponse
	errs      map[string]error
	delays    map[string]time.Duration

	calls []fetchCall
}

type fetchCall struct {
	ProjectID    string
	VersionRange string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		responses: map[string]*api.ProjectIconsResponse{},
		errs:      map[string]error{},
		delays:    map[string]time.Duration{},
	}
}

func (f *fakeFetcher) ProjectIcons(ctx context.Context, projectID, versionRange string) (*api.ProjectIconsResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fetchCall{ProjectID: projectID, VersionRange: versionRange})
	delay := f.delays[projectID]
	err := f.errs[projectID]
	resp, ok := f.responses[projectID]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, api.ErrNotFound)
	}

	// hand out a copy so conversions in one test never leak into another
	clone := *resp
	clone.Icons = append([]api.IconBundle(nil), resp.Icons...)

	return &clone, nil
}

func (f *fakeFetcher) callsByProject() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]string, len(f.calls))
	for _, c := range f.calls {
		out[c.ProjectID] = c.VersionRange
	}

	return out
}

// fakeWriter is a FileWriter recording every write in order.
type fakeWriter struct {
	writes []writeCall
	failOn string
	err    error
}

type writeCall struct {
	Path    string
	Content string
	Force   bool
}

func (w *fakeWriter) WriteFile(path, content string, opts WriteOptions) error {
	if w.failOn != "" && path == w.failOn {
		return w.err
	}

	w.writes = append(w.writes, writeCall{Path: path, Content: content, Force: opts.Force})

	return nil
}

// fakeStore is a ConfigStore counting saves.
type fakeStore struct {
	saves int
	err   error
}

func (s *fakeStore) SaveConfig(cfg *model.Config) error {
	if s.err != nil {
		return s.err
	}

	s.saves++

	return nil
}

// fakeRecorder is a Recorder keeping runs in memory.
type fakeRecorder struct {
	runs []*model.SyncRun
	err  error
}

func (r *fakeRecorder) RecordRun(run *model.SyncRun) error {
	if r.err != nil {
		return r.err
	}

	r.runs = append(r.runs, run)

	return nil
}

func bundle(id, name, fileName string) api.IconBundle {
	return api.IconBundle{
		ID:       id,
		Name:     name,
		FileName: fileName,
		Module:   "export const " + name + " = 1;",
	}
}

func identityFormat(module, _ string) string {
	return module
}
