package project

import (
	"os"
	"path/filepath"
)

// DataDirName is the directory that marks where tracker data lives.
const DataDirName = ".uttrack"

// Info describes where the tracker keeps its data.
type Info struct {
	Root    string // directory containing DataDir
	DataDir string
	Local   bool // found by climbing from the start path, not the home fallback
	Files   []string
}

// FindDataDir searches for a .uttrack directory starting from the given
// path and climbing up the directory tree. When none is found the
// directory under the user's home is returned, whether or not it exists.
func FindDataDir(startPath string) (string, error) {
	info, err := Detect(startPath)
	if err != nil {
		return "", err
	}
	return info.DataDir, nil
}

// Detect locates the data directory and lists the stored keys in it.
func Detect(startPath string) (*Info, error) {
	if startPath == "" {
		startPath = "."
	}
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, err
	}

	currentDir := absPath
	for {
		if isDataRoot(currentDir) {
			return newInfo(currentDir, true), nil
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parent
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// No home either: keep the data next to the start path.
		return newInfo(absPath, false), nil
	}
	return newInfo(home, false), nil
}

func newInfo(root string, local bool) *Info {
	dataDir := filepath.Join(root, DataDirName)
	return &Info{
		Root:    root,
		DataDir: dataDir,
		Local:   local,
		Files:   findDataFiles(dataDir),
	}
}

// isDataRoot reports whether path holds a .uttrack directory.
func isDataRoot(path string) bool {
	fi, err := os.Stat(filepath.Join(path, DataDirName))
	return err == nil && fi.IsDir()
}

// findDataFiles lists the stored blobs in dataDir.
func findDataFiles(dataDir string) []string {
	matches, err := filepath.Glob(filepath.Join(dataDir, "*.json"))
	if err != nil {
		return nil
	}
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, filepath.Base(m))
	}
	return files
}
