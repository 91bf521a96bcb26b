package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/inovacc/iconsync/internal/core"
	"github.com/inovacc/iconsync/internal/params"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create iconsync.json",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration and tracked projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := params.LoadEnv()
		if err != nil {
			return err
		}

		f, cfg, err := loadProjectConfig(env)
		if err != nil {
			return err
		}

		return core.ShowConfig(cmd.OutOrStdout(), f, cfg)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default iconsync.json",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		path, err := core.InitConfig(dir)
		if errors.Is(err, os.ErrExist) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Config already exists: %s\n", path)
			return nil
		}

		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
