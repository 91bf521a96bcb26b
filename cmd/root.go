package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/inovacc/iconsync/internal/application"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Sync icon assets from design projects into your source tree",
	Long: `Iconsync fetches the generated icon components of one or more remote
design projects and writes them into the local source tree, tracking every
icon in iconsync.json so later syncs update files in place.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to iconsync.json (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
}
