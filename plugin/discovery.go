package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// binaryPrefix is the file name prefix that marks a rule plugin
const binaryPrefix = "relint-rule-"

// Discover scans the given directories for rule plugin executables.
// Results are returned in directory order, then lexical file order, so
// discovery is reproducible. Missing directories are an error since a
// configured rule directory that cannot be read indicates a broken
// configuration rather than an empty one.
func Discover(dirs []string) ([]string, error) {
	var found []string

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read rule directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !isPluginBinary(entry.Name()) {
				continue
			}
			found = append(found, filepath.Join(dir, entry.Name()))
		}
	}

	return found, nil
}

func isPluginBinary(name string) bool {
	if runtime.GOOS == "windows" {
		name = strings.TrimSuffix(name, ".exe")
	}
	return strings.HasPrefix(name, binaryPrefix)
}
