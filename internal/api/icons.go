package api

import (
	"context"
	"fmt"
)

// IconBundle is the generated artifact for one icon.
type IconBundle struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FileName string `json:"fileName"`
	Module   string `json:"module"`
}

// ProjectIconsResponse is the icon set of one project at a resolved version.
type ProjectIconsResponse struct {
	Version     string       `json:"version"`
	ProjectName string       `json:"projectName,omitempty"`
	Icons       []IconBundle `json:"icons"`
}

type projectIconsRequest struct {
	VersionRange string `json:"versionRange"`
}

// ProjectIcons fetches the icon bundles of a project for a version range.
// Unknown projects or versions fail with an error wrapping ErrNotFound.
func (c *Client) ProjectIcons(ctx context.Context, projectID, versionRange string) (*ProjectIconsResponse, error) {
	var resp ProjectIconsResponse

	err := c.post(ctx, projectPath(projectID, "/code/project-icons"), projectIconsRequest{VersionRange: versionRange}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Version == "" {
		return nil, fmt.Errorf("project %s: missing resolved version: %w", projectID, ErrInvalidResponse)
	}

	for i, icon := range resp.Icons {
		if icon.ID == "" || icon.FileName == "" {
			return nil, fmt.Errorf("project %s: icon %d missing id or file name: %w", projectID, i, ErrInvalidResponse)
		}
	}

	return &resp, nil
}
