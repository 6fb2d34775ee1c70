package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/speclint/speclint/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"dist":         true,
	"bin":          true,
	"__pycache__":  true,
	".venv":        true,
}

// skipFiles excludes files by name even when their extension is eligible.
// The validator's own pattern sources are listed so a self-scan does not
// trip over its fixtures.
var skipFiles = map[string]bool{
	"secrets.go":          true,
	"secrets_test.go":     true,
	"secret_scan_test.go": true,
}

var textExtensions = map[string]bool{
	".go":   true,
	".md":   true,
	".yml":  true,
	".yaml": true,
	".json": true,
	".sh":   true,
	".txt":  true,
	".toml": true,
	".env":  true,
}

// FileScanner implements domain.RepoScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks root top-down, pruning excluded directories before descending
// into them, and snapshots directory presence, file presence, and the content
// of readable UTF-8 text files. Unreadable or binary files are skipped
// silently; only a failure on the root itself is an error.
func (s *FileScanner) Scan(root string, extraSkipDirs, extraSkipFiles []string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	dirSkip := merge(skipDirs, extraSkipDirs)
	fileSkip := merge(skipFiles, extraSkipFiles)

	result := &domain.ScanResult{
		RootPath: absPath,
		Dirs:     make(map[string]bool),
		Files:    make(map[string]bool),
		Texts:    make(map[string]string),
	}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == absPath {
				return walkErr
			}
			// An unreadable subtree counts as absent.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, _ := filepath.Rel(absPath, path)
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if dirSkip[d.Name()] {
				return filepath.SkipDir
			}
			result.Dirs[rel] = true
			return nil
		}

		result.Files[rel] = true

		if fileSkip[d.Name()] {
			return nil
		}
		if !textExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil || !utf8.Valid(data) {
			return nil
		}

		result.Texts[rel] = string(data)
		result.TextOrder = append(result.TextOrder, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func merge(base map[string]bool, extra []string) map[string]bool {
	merged := make(map[string]bool, len(base)+len(extra))
	for name := range base {
		merged[name] = true
	}
	for _, name := range extra {
		merged[strings.TrimSuffix(name, "/")] = true
	}
	return merged
}
