package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/iconsync/internal/model"
	"github.com/inovacc/iconsync/internal/params"
	"github.com/inovacc/iconsync/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent icon sync runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		env, err := params.LoadEnv()
		if err != nil {
			return err
		}

		ledger, err := openHistory(env)
		if err != nil {
			return err
		}

		defer func() { _ = ledger.Close() }()

		runs, err := ledger.ListRuns(limit)
		if err != nil {
			return err
		}

		printRuns(cmd.OutOrStdout(), runs)

		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the per-project details of one sync run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := params.LoadEnv()
		if err != nil {
			return err
		}

		ledger, err := openHistory(env)
		if err != nil {
			return err
		}

		defer func() { _ = ledger.Close() }()

		run, err := ledger.GetRun(args[0])
		if errors.Is(err, store.ErrRunNotFound) {
			return fmt.Errorf("sync run %s not found", args[0])
		}

		if err != nil {
			return err
		}

		printRunDetail(cmd.OutOrStdout(), run)

		return nil
	},
}

func runDuration(run *model.SyncRun) string {
	if run.FinishedAt.IsZero() {
		return "-"
	}

	return run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond).String()
}

func printRuns(w io.Writer, runs []model.SyncRun) {
	if len(runs) == 0 {
		_, _ = fmt.Fprintln(w, "No sync runs recorded.")
		return
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	addedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	_, _ = fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-20s  %-8s  %-8s  %-6s  %s", "STARTED", "DURATION", "PROJECTS", "ICONS", "RUN")))
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 72))

	for i := range runs {
		run := &runs[i]

		icons := fmt.Sprintf("%d", run.TotalIcons())
		if added := run.TotalAdded(); added > 0 {
			icons += addedStyle.Render(fmt.Sprintf(" +%d", added))
		}

		_, _ = fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
			padRight(run.StartedAt.Local().Format("2006-01-02 15:04:05"), 20),
			padRight(runDuration(run), 8),
			padRight(fmt.Sprintf("%d", len(run.Projects)), 8),
			padRight(icons, 6),
			idStyle.Render(run.ID),
		)
	}
}

func printRunDetail(w io.Writer, run *model.SyncRun) {
	labelStyle := lipgloss.NewStyle().Bold(true)

	_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Run:     "), run.ID)
	_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Started: "), run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	_, _ = fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Duration:"), runDuration(run))
	_, _ = fmt.Fprintln(w)

	if len(run.Projects) == 0 {
		_, _ = fmt.Fprintln(w, "No projects were synced.")
		return
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s  %s  %s\n",
		padRight("PROJECT ID", 24), padRight("NAME", 20), padRight("VERSION", 10), padRight("ICONS", 6), "NEW")

	for _, p := range run.Projects {
		_, _ = fmt.Fprintf(w, "%s  %s  %s  %s  %d\n",
			padRight(p.ProjectID, 24),
			padRight(p.ProjectName, 20),
			padRight(p.Version, 10),
			padRight(fmt.Sprintf("%d", p.Icons), 6),
			p.Added,
		)
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyCmd.Flags().IntP("limit", "n", 10, "Number of runs to show (0 for all)")
}
