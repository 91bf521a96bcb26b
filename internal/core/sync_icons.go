package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/iconsync/internal/api"
	"github.com/inovacc/iconsync/internal/model"
	"golang.org/x/sync/errgroup"
)

// SyncIcons fetches the icon bundles of every requested project and
// reconciles them into the local tree, then saves the configuration.
//
// An empty projectIDs syncs every configured project. Fetches run
// concurrently and the first failure aborts the run before anything is
// written. Reconciliation is sequential in request order. The returned run
// summarizes what was synced.
func SyncIcons(ctx context.Context, sc *SyncContext, projectIDs []string) (*model.SyncRun, error) {
	logger := sc.logger()

	ids := projectIDs
	if len(ids) == 0 {
		ids = sc.Config.ProjectIDs()
	}

	run := &model.SyncRun{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Projects:  make([]model.ProjectSummary, 0, len(ids)),
	}

	if len(ids) == 0 {
		logger.Warn("no projects to sync")
	}

	results, err := fetchProjectIcons(ctx, sc, ids)
	if err != nil {
		return nil, err
	}

	for i, id := range ids {
		resp := results[i]

		if sc.Config.Code.Lang == model.LangJS {
			if err := convertBundles(sc.converter(), resp.Icons); err != nil {
				return nil, fmt.Errorf("project %s: %w", id, err)
			}
		}

		project := sc.Config.GetOrAddProject(id)
		if project.ProjectName == "" && resp.ProjectName != "" {
			project.ProjectName = resp.ProjectName
		}

		before := len(project.Icons)

		if err := SyncProjectIconAssets(sc, id, resp.Version, resp.Icons); err != nil {
			return nil, err
		}

		run.Projects = append(run.Projects, model.ProjectSummary{
			ProjectID:   id,
			ProjectName: project.ProjectName,
			Version:     resp.Version,
			Icons:       len(resp.Icons),
			Added:       len(project.Icons) - before,
		})
	}

	if err := sc.Store.SaveConfig(sc.Config); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	run.FinishedAt = time.Now()

	if sc.Recorder != nil {
		if err := sc.Recorder.RecordRun(run); err != nil {
			logger.Warn("failed to record sync history",
				slog.String("run_id", run.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	logger.Debug("sync complete",
		slog.String("run_id", run.ID),
		slog.Int("projects", len(run.Projects)),
		slog.Int("icons", run.TotalIcons()),
		slog.Int("added", run.TotalAdded()),
	)

	return run, nil
}

// fetchProjectIcons issues one request per project at once and waits for
// all of them. results[i] belongs to ids[i].
func fetchProjectIcons(ctx context.Context, sc *SyncContext, ids []string) ([]*api.ProjectIconsResponse, error) {
	versions := make([]string, len(ids))
	for i, id := range ids {
		versions[i] = sc.Config.FindProject(id).VersionSelector()
	}

	results := make([]*api.ProjectIconsResponse, len(ids))

	g, gctx := errgroup.WithContext(ctx)

	for i, id := range ids {
		g.Go(func() error {
			resp, err := sc.API.ProjectIcons(gctx, id, versions[i])
			if err != nil {
				return &FetchError{ProjectID: id, Version: versions[i], Err: err}
			}

			if resp == nil {
				return &FetchError{ProjectID: id, Version: versions[i], Err: api.ErrInvalidResponse}
			}

			results[i] = resp

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func convertBundles(convert Converter, bundles []api.IconBundle) error {
	for i := range bundles {
		b := &bundles[i]

		fileName, module, err := convert(b.FileName, b.Module)
		if err != nil {
			return fmt.Errorf("convert icon %s: %w", b.ID, err)
		}

		b.FileName, b.Module = fileName, module
	}

	return nil
}
