// Package paths resolves the document path the operator asked for.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/dbmrq/skyset/internal/store"
)

// AppDir is the directory name used under the config home.
const AppDir = "skyset"

// Default returns <config home>/skyset/latest.yml.
func Default() string {
	return filepath.Join(xdg.ConfigHome, AppDir, store.DefaultFilename)
}

// Normalize maps input to a document path. An empty input, the home
// directory and the well-known config directories resolve to Default. A
// leading "~" is expanded. An existing directory resolves to the document
// inside it. Anything else is returned unchanged.
func Normalize(input string) string {
	if strings.TrimSpace(input) == "" {
		return Default()
	}

	home, _ := os.UserHomeDir()
	p := expandHome(input, home)

	if isCanonicalDir(p, home) {
		return Default()
	}

	if info, err := os.Stat(p); err == nil && info.IsDir() {
		return filepath.Join(p, store.DefaultFilename)
	}
	return p
}

func expandHome(p, home string) string {
	if home == "" {
		return p
	}
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}

func isCanonicalDir(p, home string) bool {
	clean := filepath.Clean(p)
	candidates := []string{
		xdg.ConfigHome,
		filepath.Join(xdg.ConfigHome, AppDir),
	}
	if home != "" {
		candidates = append(candidates,
			home,
			filepath.Join(home, ".config"),
			filepath.Join(home, ".config", AppDir),
		)
	}
	for _, c := range candidates {
		if clean == filepath.Clean(c) {
			return true
		}
	}
	return false
}
