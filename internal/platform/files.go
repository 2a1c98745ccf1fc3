package platform

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	WindowsCmdFlag = "/c"
	StartCommand   = "start"
)

// AppDataDirName is the directory created under the platform config location.
const AppDataDirName = "ShishLoto"

// HomeFallbackDirName is the dot-directory used when the platform config
// location is unavailable.
const HomeFallbackDirName = ".shish-loto"

// AppDataDir returns the per-user application data directory, creating it if
// needed. It prefers the platform config location and falls back to a
// dot-directory in the user's home.
func AppDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", fmt.Errorf("failed to resolve app data location: %w", homeErr)
		}
		dir := filepath.Join(home, HomeFallbackDirName)
		if err := CreateDirectoryIfNotExists(dir); err != nil {
			return "", err
		}
		return dir, nil
	}

	dir := filepath.Join(base, AppDataDirName)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// CopyFile copies src to dst, overwriting dst if it exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	return out.Close()
}

// OpenURL opens the URL in the system default browser.
func OpenURL(url string) error {
	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, url).Start()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", url).Start()
	case OSLinux:
		return exec.Command(XDGOpenCommand, url).Start()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
