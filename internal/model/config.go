package model

import (
	"path"
	"strings"
)

// ConfigFileName is the name of the project configuration file.
const ConfigFileName = "iconsync.json"

// Lang is the target language of generated modules.
type Lang string

const (
	LangTS Lang = "ts"
	LangJS Lang = "js"
)

// CodeConfig holds settings for generated code.
type CodeConfig struct {
	// Lang is the language generated modules are written in
	Lang Lang `json:"lang"`
}

// Config holds the project configuration persisted in iconsync.json
type Config struct {
	// SrcDir is the directory relative module paths are resolved against
	SrcDir string `json:"src_dir"`

	// DefaultPlasmicDir is the directory new icon modules are placed under
	DefaultPlasmicDir string `json:"default_plasmic_dir"`

	// Code holds target language settings
	Code CodeConfig `json:"code"`

	// Projects is the list of tracked remote projects
	Projects []*ProjectConfig `json:"projects"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		SrcDir:            "src",
		DefaultPlasmicDir: "./plasmic",
		Code:              CodeConfig{Lang: LangTS},
		Projects:          []*ProjectConfig{},
	}
}

// FindProject returns the project config with the given id, or nil.
func (c *Config) FindProject(projectID string) *ProjectConfig {
	for _, p := range c.Projects {
		if p.ProjectID == projectID {
			return p
		}
	}

	return nil
}

// GetOrAddProject returns the project config with the given id, appending
// a fresh one pinned to LatestVersion when none exists.
func (c *Config) GetOrAddProject(projectID string) *ProjectConfig {
	if p := c.FindProject(projectID); p != nil {
		return p
	}

	p := &ProjectConfig{
		ProjectID: projectID,
		Version:   LatestVersion,
		Icons:     []*IconConfig{},
	}
	c.Projects = append(c.Projects, p)

	return p
}

// ProjectIDs returns the ids of all configured projects in config order.
func (c *Config) ProjectIDs() []string {
	ids := make([]string, 0, len(c.Projects))
	for _, p := range c.Projects {
		ids = append(ids, p.ProjectID)
	}

	return ids
}

// FixFilePaths normalizes every stored module path to a clean,
// forward-slash form so configs written on Windows load everywhere.
func (c *Config) FixFilePaths() {
	c.DefaultPlasmicDir = normalizePath(c.DefaultPlasmicDir)

	for _, p := range c.Projects {
		for _, icon := range p.Icons {
			icon.ModuleFilePath = normalizePath(icon.ModuleFilePath)
		}
	}
}

func normalizePath(p string) string {
	if p == "" {
		return p
	}

	return path.Clean(strings.ReplaceAll(p, "\\", "/"))
}
