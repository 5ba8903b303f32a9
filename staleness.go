package twindex

import (
	"os"
	"path/filepath"
)

// NeedsRebuild decides whether the index in cacheDir is trustworthy for the
// given configuration file. Rebuild when either the class list or the name
// map is absent, or when the config file's modification time is strictly
// newer than the class list's. A coarse single-file heuristic: it does not
// hash config contents and does not notice changes to the project's sources
// or to the installed framework version.
func NeedsRebuild(configPath, cacheDir string) bool {
	listPath := filepath.Join(cacheDir, classListFile)
	listInfo, err := os.Stat(listPath)
	if err != nil {
		return true
	}
	if _, err := os.Stat(filepath.Join(cacheDir, nameMapFile)); err != nil {
		return true
	}

	configInfo, err := os.Stat(configPath)
	if err != nil {
		return true
	}
	return configInfo.ModTime().After(listInfo.ModTime())
}
