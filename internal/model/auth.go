package model

// AuthConfig holds the credentials used to call the remote API.
type AuthConfig struct {
	// Host is the API base URL
	Host string `json:"host,omitempty"`

	// User is the account email
	User string `json:"user"`

	// Token is the personal API token
	Token string `json:"token"`
}
