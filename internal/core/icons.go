package core

import (
	"log/slog"
	"path/filepath"

	"github.com/inovacc/iconsync/internal/api"
	"github.com/inovacc/iconsync/internal/model"
)

// SyncProjectIconAssets merges fetched bundles into the project's icon list
// and writes every bundle's module to disk.
//
// A newly seen icon gets a path under the default directory and is written
// without force, so an existing file at that path is kept. A known icon
// keeps the path stored on first sight and is always overwritten. The first
// write error stops the batch.
func SyncProjectIconAssets(sc *SyncContext, projectID, version string, bundles []api.IconBundle) error {
	logger := sc.logger()
	format := sc.formatter()

	project := sc.Config.GetOrAddProject(projectID)
	if project.Icons == nil {
		project.Icons = []*model.IconConfig{}
	}

	known := make(map[string]*model.IconConfig, len(project.Icons))
	for _, icon := range project.Icons {
		known[icon.ID] = icon
	}

	for _, bundle := range bundles {
		logger.Info("syncing icon",
			slog.String("project", project.ProjectName),
			slog.String("project_id", project.ProjectID),
			slog.String("icon_id", bundle.ID),
			slog.String("icon", bundle.Name),
			slog.String("version", version),
		)

		icon, ok := known[bundle.ID]
		isNew := !ok

		if isNew {
			if !filepath.IsLocal(filepath.FromSlash(bundle.FileName)) {
				return &WriteError{ProjectID: projectID, IconID: bundle.ID, Path: bundle.FileName, Err: ErrUnsafeFileName}
			}

			icon = &model.IconConfig{
				ID:             bundle.ID,
				Name:           bundle.Name,
				ModuleFilePath: IconModulePath(sc.Config.DefaultPlasmicDir, project.ProjectName, bundle.FileName),
			}
			known[bundle.ID] = icon
			project.Icons = append(project.Icons, icon)
		}

		content := format(bundle.Module, icon.ModuleFilePath)

		if err := sc.Writer.WriteFile(icon.ModuleFilePath, content, WriteOptions{Force: !isNew}); err != nil {
			return &WriteError{ProjectID: projectID, IconID: bundle.ID, Path: icon.ModuleFilePath, Err: err}
		}
	}

	return nil
}
