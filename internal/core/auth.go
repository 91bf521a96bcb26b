package core

import (
	"fmt"

	"github.com/inovacc/iconsync/internal/application"
	"github.com/inovacc/iconsync/internal/encoding"
	"github.com/inovacc/iconsync/internal/model"
	"github.com/inovacc/iconsync/internal/params"
)

// CredentialSource indicates where the credentials were found
type CredentialSource string

const (
	CredentialSourceFlag     CredentialSource = "flag"
	CredentialSourceEnv      CredentialSource = "env"
	CredentialSourceAuthFile CredentialSource = "auth-file"
	CredentialSourceNone     CredentialSource = "none"
)

// Credentials identify the caller to the remote API.
type Credentials struct {
	Host   string
	User   string
	Token  string
	Source CredentialSource
}

// ResolveCredentials finds API credentials.
// Priority order:
//  1. flagUser / flagToken (explicit --user / --token flags)
//  2. ICONSYNC_USER / ICONSYNC_TOKEN environment variables
//  3. the auth file (ICONSYNC_AUTH_FILE or the application directory)
func ResolveCredentials(flagUser, flagToken string, env params.Env) (Credentials, error) {
	creds := Credentials{Host: env.Host, Source: CredentialSourceNone}

	if flagToken != "" {
		creds.User, creds.Token, creds.Source = firstNonEmpty(flagUser, env.User), flagToken, CredentialSourceFlag
		return creds, nil
	}

	if env.Token != "" {
		creds.User, creds.Token, creds.Source = firstNonEmpty(flagUser, env.User), env.Token, CredentialSourceEnv
		return creds, nil
	}

	authPath, err := AuthFilePath(env)
	if err != nil {
		return creds, err
	}

	auth, err := LoadCredentials(authPath)
	if err != nil {
		return creds, err
	}

	if auth != nil && auth.Token != "" {
		creds.User, creds.Token, creds.Source = firstNonEmpty(flagUser, auth.User), auth.Token, CredentialSourceAuthFile

		if auth.Host != "" && env.Host == params.DefaultHost {
			creds.Host = auth.Host
		}

		return creds, nil
	}

	return creds, ErrCredentialsRequired
}

// LoadCredentials reads an auth file. A missing file yields nil, nil.
func LoadCredentials(path string) (*model.AuthConfig, error) {
	auth, err := encoding.LoadJSON[model.AuthConfig](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	return auth, nil
}

// SaveCredentials writes the auth file with owner-only permissions.
func SaveCredentials(path string, auth model.AuthConfig) error {
	if auth.User == "" || auth.Token == "" {
		return fmt.Errorf("user and token are required")
	}

	return encoding.SaveJSON(path, auth, 0600)
}

// AuthFilePath returns the auth file location for env.
func AuthFilePath(env params.Env) (string, error) {
	if env.AuthFile != "" {
		return env.AuthFile, nil
	}

	return application.DefaultAuthFile()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
