package check_test

import (
	"sort"

	"github.com/speclint/speclint/internal/domain"
)

// newScan builds a snapshot from relative file paths and their content.
// Directories are derived from the file paths; extraDirs adds empty ones.
func newScan(files map[string]string, extraDirs ...string) *domain.ScanResult {
	scan := &domain.ScanResult{
		RootPath: "/repo",
		Dirs:     make(map[string]bool),
		Files:    make(map[string]bool),
		Texts:    make(map[string]string),
	}

	paths := make([]string, 0, len(files))
	for rel := range files {
		paths = append(paths, rel)
	}
	sort.Strings(paths)

	for _, rel := range paths {
		scan.Files[rel] = true
		scan.Texts[rel] = files[rel]
		scan.TextOrder = append(scan.TextOrder, rel)
		addParents(scan, rel)
	}

	for _, dir := range extraDirs {
		scan.Dirs[dir] = true
		addParents(scan, dir+"/x")
	}

	return scan
}

func addParents(scan *domain.ScanResult, rel string) {
	for i, r := range rel {
		if r == '/' {
			scan.Dirs[rel[:i]] = true
		}
	}
}
