package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates the word list and config files relative to the
// running binary, so both development checkouts and installed deployments
// work without flags.
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver anchored on the executable
// location.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	// Resolve symlinks so the real binary location anchors the search
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = "/tmp" // fallback
	}
	configDir := getConfigDir(homeDir)

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		homeDir:        homeDir,
		configDir:      configDir,
	}
	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "clueserve")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "clueserve")
		}
		return filepath.Join(homeDir, ".config", "clueserve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "clueserve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "clueserve")
	default:
		return filepath.Join(homeDir, ".clueserve")
	}
}

// GetWordListPath resolves the dictionary file. Candidates, in order: the
// user-specified path as-is, then relative to the executable, then the
// executable's data/ subdirectory, then the config directory.
func (pr *PathResolver) GetWordListPath(userPath string) (string, error) {
	candidates := []string{}
	if userPath != "" {
		candidates = append(candidates, userPath)
		if !filepath.IsAbs(userPath) {
			candidates = append(candidates,
				filepath.Join(pr.executableDir, userPath),
				filepath.Join(pr.executableDir, "data", userPath),
				filepath.Join(pr.configDir, userPath),
			)
		}
	}

	for _, candidate := range candidates {
		if FileExists(candidate) {
			log.Debugf("Word list found at: %s", candidate)
			return candidate, nil
		}
	}
	return "", fmt.Errorf("word list %q not found (searched %d locations)", userPath, len(candidates))
}

// GetConfigPath returns the path for the given config filename, creating the
// config directory when possible and falling back to the executable dir.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if result := CheckDirStatus(pr.configDir); result.Writable {
		return filepath.Join(pr.configDir, filename), nil
	}
	log.Warnf("Config dir %s not writable, falling back to executable dir", pr.configDir)
	if result := CheckDirStatus(pr.executableDir); result.Writable {
		return filepath.Join(pr.executableDir, filename), nil
	}
	return "", fmt.Errorf("no writable location for %s", filename)
}

// GetConfigDir returns the resolved config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
