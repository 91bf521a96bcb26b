package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/inovacc/iconsync/internal/encoding"
	"github.com/inovacc/iconsync/internal/model"
)

// FindConfigFile walks up from startDir looking for iconsync.json.
func FindConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(dir, model.ConfigFileName)
		if encoding.FileExists(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched from %s)", ErrConfigNotFound, startDir)
		}

		dir = parent
	}
}

// ConfigFile is a ConfigStore backed by an iconsync.json on disk.
type ConfigFile struct {
	Path string
}

// Load reads and normalizes the config file.
func (f *ConfigFile) Load() (*model.Config, error) {
	cfg, err := encoding.LoadJSON[model.Config](f.Path)
	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, f.Path)
	}

	if cfg.Projects == nil {
		cfg.Projects = []*model.ProjectConfig{}
	}

	if cfg.Code.Lang == "" {
		cfg.Code.Lang = model.LangTS
	}

	cfg.FixFilePaths()

	return cfg, nil
}

// SaveConfig implements ConfigStore.
func (f *ConfigFile) SaveConfig(cfg *model.Config) error {
	return encoding.SaveJSON(f.Path, cfg, 0644)
}

// SrcRoot is the directory relative module paths resolve against.
func (f *ConfigFile) SrcRoot(cfg *model.Config) string {
	return filepath.Join(filepath.Dir(f.Path), filepath.FromSlash(cfg.SrcDir))
}

// InitConfig writes a default iconsync.json into dir. An existing file is
// left alone and reported with os.ErrExist.
func InitConfig(dir string) (string, error) {
	path := filepath.Join(dir, model.ConfigFileName)
	if encoding.FileExists(path) {
		return path, fmt.Errorf("%s: %w", path, os.ErrExist)
	}

	f := &ConfigFile{Path: path}
	cfg := model.DefaultConfig()

	if err := f.SaveConfig(&cfg); err != nil {
		return "", err
	}

	return path, nil
}

// ShowConfig prints the configuration and its tracked projects.
func ShowConfig(w io.Writer, f *ConfigFile, cfg *model.Config) error {
	_, _ = fmt.Fprintln(w, "Current Configuration:")
	_, _ = fmt.Fprintln(w, "=====================")
	_, _ = fmt.Fprintf(w, "Config File:         %s\n", f.Path)
	_, _ = fmt.Fprintf(w, "Source Directory:    %s\n", f.SrcRoot(cfg))
	_, _ = fmt.Fprintf(w, "Default Icon Dir:    %s\n", cfg.DefaultPlasmicDir)
	_, _ = fmt.Fprintf(w, "Language:            %s\n", cfg.Code.Lang)

	if len(cfg.Projects) == 0 {
		_, _ = fmt.Fprintln(w, "\nNo projects configured.")
		return nil
	}

	_, _ = fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PROJECT ID\tNAME\tVERSION\tICONS")

	for _, p := range cfg.Projects {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.ProjectID, p.ProjectName, p.VersionSelector(), len(p.Icons))
	}

	return tw.Flush()
}
