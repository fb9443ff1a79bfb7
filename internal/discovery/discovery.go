package discovery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are used when an import names no pattern. Markdown notes
// are only picked up when a pattern names them.
var DefaultPatterns = []string{"**/*.json", "**/*.yaml", "**/*.yml"}

// FileType categorizes discovered files by encoding.
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeJSON
	FileTypeYAML
	FileTypeMarkdown
)

// String returns the human-readable name of the file type.
func (ft FileType) String() string {
	switch ft {
	case FileTypeJSON:
		return "json"
	case FileTypeYAML:
		return "yaml"
	case FileTypeMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// ParseFileType converts a string to a FileType.
func ParseFileType(s string) (FileType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FileTypeJSON, nil
	case "yaml", "yml":
		return FileTypeYAML, nil
	case "md", "markdown":
		return FileTypeMarkdown, nil
	default:
		return FileTypeUnknown, fmt.Errorf("invalid type %q: valid types are json, yaml, markdown", s)
	}
}

// DetectFileType determines the encoding of a file from its extension.
func DetectFileType(path string) (FileType, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FileTypeJSON, nil
	case ".yaml", ".yml":
		return FileTypeYAML, nil
	case ".md", ".markdown":
		return FileTypeMarkdown, nil
	case "":
		return FileTypeUnknown, fmt.Errorf("unsupported file: %s has no extension. uttrack imports .json, .yaml, .yml and .md files only", filepath.Base(path))
	default:
		return FileTypeUnknown, fmt.Errorf("unsupported file type: %s. uttrack imports .json, .yaml, .yml and .md files only", ext)
	}
}

// ValidateFilePath performs comprehensive validation of a file path before
// import.
//
// This function checks all preconditions required before reading a file:
//   - File exists
//   - Path is a file (not directory)
//   - File is not empty
//   - File is not binary
//
// Returns descriptive errors for each failure mode to guide user action.
func ValidateFilePath(path string) (absPath string, err error) {
	absPath, err = filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", absPath)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("permission denied: %s", absPath)
		}
		return "", fmt.Errorf("cannot access file: %s: %w", absPath, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", absPath)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("file is empty: %s", absPath)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	defer f.Close()

	// Read first 512 bytes for binary detection
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	if bytes.Contains(buf[:n], []byte{0}) {
		return "", fmt.Errorf("file appears to be binary, not text: %s", absPath)
	}

	return absPath, nil
}

// File represents a discovered file with its metadata
type File struct {
	Path     string
	RelPath  string
	Size     int64
	Type     FileType
	Contents []byte
}

// FileDiscovery manages file discovery operations
type FileDiscovery struct {
	rootPath string
}

// NewFileDiscovery creates a new FileDiscovery instance
func NewFileDiscovery(rootPath string) *FileDiscovery {
	return &FileDiscovery{rootPath: rootPath}
}

// DiscoverFiles finds every importable file matching patterns, relative to
// the root. Each file appears once, in path order, even when several
// patterns match it. No patterns means DefaultPatterns.
func (fd *FileDiscovery) DiscoverFiles(patterns ...string) ([]File, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	seen := make(map[string]bool)
	var files []File
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
		// Use doublestar for glob matching with ** patterns
		matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			f, ok := fd.processMatch(match)
			if !ok {
				continue
			}
			seen[match] = true
			files = append(files, f)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// processMatch converts a glob match into a File, returning false if the
// match should be skipped.
func (fd *FileDiscovery) processMatch(match string) (File, bool) {
	ft, err := DetectFileType(match)
	if err != nil {
		return File{}, false
	}

	fullPath := filepath.Join(fd.rootPath, filepath.FromSlash(match))
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return File{}, false
	}

	contents, err := os.ReadFile(fullPath)
	if err != nil {
		return File{}, false
	}

	return File{
		Path:     fullPath,
		RelPath:  match,
		Size:     info.Size(),
		Type:     ft,
		Contents: contents,
	}, true
}

// ReadFile loads a single named file for import.
func ReadFile(path string) (File, error) {
	absPath, err := ValidateFilePath(path)
	if err != nil {
		return File{}, err
	}
	ft, err := DetectFileType(absPath)
	if err != nil {
		return File{}, err
	}
	contents, err := os.ReadFile(absPath)
	if err != nil {
		return File{}, fmt.Errorf("cannot read file: %s: %w", absPath, err)
	}
	return File{
		Path:     absPath,
		RelPath:  filepath.Base(absPath),
		Size:     int64(len(contents)),
		Type:     ft,
		Contents: contents,
	}, nil
}
