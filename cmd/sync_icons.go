package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/iconsync/internal/api"
	"github.com/inovacc/iconsync/internal/application"
	"github.com/inovacc/iconsync/internal/core"
	"github.com/inovacc/iconsync/internal/model"
	"github.com/inovacc/iconsync/internal/params"
	"github.com/inovacc/iconsync/internal/store"
	"github.com/spf13/cobra"
)

var syncIconsCmd = &cobra.Command{
	Use:   "sync-icons [project-id...]",
	Short: "Sync icon components of remote projects into the source tree",
	Long: `Sync icon components of remote projects into the source tree.

This command will:
  1. Fetch the icons of every requested project (all configured projects
     when none are given) at the project's pinned version, or latest
  2. Place new icons under <default_plasmic_dir>/<project_name>/ without
     touching files that already exist there
  3. Overwrite icons that are already tracked, at their recorded path
  4. Save the updated iconsync.json

Authentication:
  Credentials are detected from (in order):
  - --user / --token flags
  - ICONSYNC_USER / ICONSYNC_TOKEN environment variables
  - the auth file written by 'iconsync auth'

Examples:
  # Sync every configured project
  iconsync sync-icons

  # Sync specific projects
  iconsync sync-icons 47tFXWjN2C4NyHFGGpaYQ3 8fEhwc2bTyuvaTj2Kf8a3C

  # Debug logging as JSON
  iconsync sync-icons --json --log-level=debug`,
	RunE: runSyncIcons,
}

func runSyncIcons(cmd *cobra.Command, args []string) error {
	flagProjects, _ := cmd.Flags().GetStringSlice("projects")
	user, _ := cmd.Flags().GetString("user")
	token, _ := cmd.Flags().GetString("token")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	logger := setupLogger(cmd, logLevel, jsonOutput)

	env, err := params.LoadEnv()
	if err != nil {
		return err
	}

	cfgFile, cfg, err := loadProjectConfig(env)
	if err != nil {
		return err
	}

	creds, err := core.ResolveCredentials(user, token, env)
	if err != nil {
		return err
	}

	logger.Debug("credentials resolved",
		slog.String("source", string(creds.Source)),
		slog.String("host", creds.Host),
	)

	ctx, cancel := core.WithTimeoutFrom(cmd.Context(), core.TimeoutSync)
	defer cancel()

	client := api.NewClient(ctx, creds.Host, creds.User, creds.Token, api.WithTimeout(env.Timeout))

	var recorder core.Recorder

	if !noHistory {
		ledger, err := openHistory(env)
		if err != nil {
			logger.Warn("sync history disabled", slog.String("error", err.Error()))
		} else {
			defer func() { _ = ledger.Close() }()

			recorder = ledger
		}
	}

	sc := &core.SyncContext{
		API:      client,
		Config:   cfg,
		Store:    cfgFile,
		Writer:   &core.DiskWriter{BaseDir: cfgFile.SrcRoot(cfg), Logger: logger},
		Recorder: recorder,
		Logger:   logger,
	}

	ids := collectProjectIDs(args, flagProjects)

	logger.Debug("starting icon sync",
		slog.String("config", cfgFile.Path),
		slog.Int("requested", len(ids)),
		slog.String("lang", string(cfg.Code.Lang)),
	)

	run, err := core.SyncIcons(ctx, sc, ids)
	if err != nil {
		return err
	}

	printSyncSummary(cmd.OutOrStdout(), run)

	return nil
}

// openHistory opens the sync ledger at ICONSYNC_HISTORY_FILE or the default
// location in the application directory.
func openHistory(env params.Env) (store.Store, error) {
	path := env.HistoryDB
	if path == "" {
		var err error

		path, err = application.DefaultHistoryFile()
		if err != nil {
			return nil, err
		}
	}

	ledger, err := store.Open(path)
	if err != nil {
		return nil, err
	}

	if err := ledger.Ping(); err != nil {
		_ = ledger.Close()
		return nil, fmt.Errorf("history %s unavailable: %w", path, err)
	}

	return ledger, nil
}

func printSyncSummary(w io.Writer, run *model.SyncRun) {
	projectStyle := lipgloss.NewStyle().Bold(true)
	addedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	if len(run.Projects) == 0 {
		_, _ = fmt.Fprintln(w, "No projects to sync.")
		return
	}

	for _, p := range run.Projects {
		name := p.ProjectName
		if name == "" {
			name = p.ProjectID
		}

		added := mutedStyle.Render("0 new")
		if p.Added > 0 {
			added = addedStyle.Render(fmt.Sprintf("%d new", p.Added))
		}

		_, _ = fmt.Fprintf(w, "%s@%s: %d icons (%s)\n", projectStyle.Render(name), p.Version, p.Icons, added)
	}
}

func init() {
	rootCmd.AddCommand(syncIconsCmd)

	syncIconsCmd.Flags().StringSliceP("projects", "p", nil, "Project ids to sync (default: all configured projects)")
	syncIconsCmd.Flags().String("user", "", "API user (overrides ICONSYNC_USER)")
	syncIconsCmd.Flags().String("token", "", "API token (overrides ICONSYNC_TOKEN)")
	syncIconsCmd.Flags().Bool("no-history", false, "Do not record this run in the sync history")
}
