package domain

// RepoScanner walks a repository root and returns a snapshot of its tree.
// Excluded directories are pruned before descent; excluded and non-text files
// are never read.
type RepoScanner interface {
	Scan(root string, extraSkipDirs, extraSkipFiles []string) (*ScanResult, error)
}

// ConfigLoader reads repository-level configuration.
type ConfigLoader interface {
	Load(root string) (RepoConfig, error)
}

// GitLog exposes the commit information the traceability check needs.
type GitLog interface {
	IsRepo(root string) bool
	HeadHash(root string) (string, error)
	RecentSubjects(root string, limit int) ([]string, error)
}

// ScanResult is an immutable snapshot of one repository walk. Checks operate
// on it instead of touching the filesystem, which keeps them pure.
type ScanResult struct {
	// RootPath is the absolute repository root.
	RootPath string

	// Dirs holds every surviving directory by slash-separated relative path.
	Dirs map[string]bool

	// Files holds every surviving file by slash-separated relative path.
	Files map[string]bool

	// Texts maps relative path to content for files that pass the text
	// extension allow-list, the file-name exclusion set, and UTF-8 decoding.
	Texts map[string]string

	// TextOrder lists the keys of Texts in walk order, so that iteration is
	// deterministic across runs.
	TextOrder []string
}
