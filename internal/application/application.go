package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "iconsync"

	// AuthFileName holds API credentials inside the application directory
	AuthFileName = "auth.json"

	// HistoryFileName is the bbolt database holding the sync ledger
	HistoryFileName = "history.bolt"
)

// Version is overridden at build time with -ldflags.
var Version = "0.1.0-dev"

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the iconsync state directory path.
// Linux: ~/.config/iconsync (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\iconsync (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	return appDir, errDir
}

// DefaultAuthFile returns the default credentials file path.
func DefaultAuthFile() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, AuthFileName), nil
}

// DefaultHistoryFile returns the default sync ledger path.
func DefaultHistoryFile() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, HistoryFileName), nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
