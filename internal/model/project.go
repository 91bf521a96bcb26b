package model

// LatestVersion is the version selector meaning "most recent published
// version" when querying the remote API.
const LatestVersion = "latest"

// ProjectConfig is the local record for one remote project.
type ProjectConfig struct {
	// ProjectID is the remote project identifier
	ProjectID string `json:"project_id"`

	// ProjectName is the display name, used to name the icon directory
	ProjectName string `json:"project_name"`

	// Version is the pinned version or LatestVersion
	Version string `json:"version"`

	// Icons is the ordered list of tracked icons
	Icons []*IconConfig `json:"icons"`
}

// VersionSelector returns the pinned version, or LatestVersion when unset.
func (p *ProjectConfig) VersionSelector() string {
	if p == nil || p.Version == "" {
		return LatestVersion
	}

	return p.Version
}

// IconConfig binds an icon id to its module file on disk.
type IconConfig struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ModuleFilePath string `json:"module_file_path"`
}
