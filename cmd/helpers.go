package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/iconsync/internal/core"
	"github.com/inovacc/iconsync/internal/model"
	"github.com/inovacc/iconsync/internal/params"
)

// loadProjectConfig resolves the config path from --config, ICONSYNC_CONFIG
// or an upward search, then loads it.
func loadProjectConfig(env params.Env) (*core.ConfigFile, *model.Config, error) {
	path := configPath
	if path == "" {
		path = env.ConfigFile
	}

	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get working directory: %w", err)
		}

		path, err = core.FindConfigFile(wd)
		if err != nil {
			return nil, nil, err
		}
	}

	f := &core.ConfigFile{Path: path}

	cfg, err := f.Load()
	if err != nil {
		return nil, nil, err
	}

	return f, cfg, nil
}

// collectProjectIDs merges positional ids with --projects values, keeping
// first-seen order and dropping blanks and repeats.
func collectProjectIDs(args, flagIDs []string) []string {
	seen := make(map[string]bool, len(args)+len(flagIDs))

	var out []string

	for _, list := range [][]string{args, flagIDs} {
		for _, id := range list {
			id = strings.TrimSpace(id)
			if id == "" || seen[id] {
				continue
			}

			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}

// padRight pads s to width terminal cells. Styled text is measured without
// its escape sequences.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}

	return s + strings.Repeat(" ", width-w)
}
