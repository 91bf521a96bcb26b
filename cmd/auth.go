package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inovacc/iconsync/internal/core"
	"github.com/inovacc/iconsync/internal/model"
	"github.com/inovacc/iconsync/internal/params"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Save API credentials",
	Long: `Save API credentials to the auth file.

The token is read without echo when stdin is a terminal, or from the first
line of stdin when piped. The file is written with owner-only permissions.

Examples:
  # Prompt for the token
  iconsync auth --user me@example.com

  # Non-interactive
  echo "$TOKEN" | iconsync auth --user me@example.com`,
	RunE: runAuth,
}

func runAuth(cmd *cobra.Command, _ []string) error {
	user, _ := cmd.Flags().GetString("user")
	host, _ := cmd.Flags().GetString("host")

	env, err := params.LoadEnv()
	if err != nil {
		return err
	}

	if host == "" {
		host = env.Host
	}

	token, err := readToken(cmd.InOrStdin(), cmd.ErrOrStderr(), "API token: ")
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}

	path, err := core.AuthFilePath(env)
	if err != nil {
		return err
	}

	auth := model.AuthConfig{Host: host, User: user, Token: token}
	if err := core.SaveCredentials(path, auth); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Credentials for %s saved to %s\n", user, path)

	return nil
}

// readToken reads a secret from in. Terminals get a no-echo prompt; anything
// else is read line-wise.
func readToken(in io.Reader, prompt io.Writer, label string) (string, error) {
	_, _ = fmt.Fprint(prompt, label)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		token, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(prompt)

		if err != nil {
			return "", err
		}

		return strings.TrimSpace(string(token)), nil
	}

	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		if token := strings.TrimSpace(scanner.Text()); token != "" {
			return token, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("no token provided")
}

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.Flags().String("user", "", "API user (email)")
	authCmd.Flags().String("host", "", "API host (default: ICONSYNC_HOST or "+params.DefaultHost+")")
	_ = authCmd.MarkFlagRequired("user")
}
