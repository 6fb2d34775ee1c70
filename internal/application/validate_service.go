package application

import (
	"fmt"

	"github.com/speclint/speclint/internal/domain"
	"github.com/speclint/speclint/internal/domain/check"
)

// ValidateService runs the full check sequence against a repository root and
// aggregates the outcomes into a single run report.
type ValidateService struct {
	scanner      domain.RepoScanner
	configLoader domain.ConfigLoader
	git          domain.GitLog
}

// NewValidateService creates a ValidateService with all required dependencies.
func NewValidateService(scanner domain.RepoScanner, configLoader domain.ConfigLoader, git domain.GitLog) *ValidateService {
	return &ValidateService{scanner: scanner, configLoader: configLoader, git: git}
}

// Validate scans root once and runs every check in a fixed order. The overall
// status fails only on recorded errors; with strict (flag or config) a
// warnings-only run is downgraded to a failure. Re-running on an unchanged
// tree produces an identical report.
func (s *ValidateService) Validate(root string, strict bool) (*domain.RunReport, error) {
	cfg, err := s.configLoader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(root, cfg.ExcludeDirs, cfg.ExcludeFiles)
	if err != nil {
		return nil, fmt.Errorf("scanning repository: %w", err)
	}

	isRepo := s.git.IsRepo(root)
	var subjects []string
	var logErr error
	if isRepo {
		subjects, logErr = s.git.RecentSubjects(root, cfg.ResolvedCommitLimit())
	}

	outcomes := []domain.CheckOutcome{
		check.Directories(scan, cfg.ResolvedRequiredDirs()),
		check.Governance(scan),
		check.AgentContexts(scan),
		check.Specifications(scan, cfg.ResolvedSpecsDir()),
		check.Traceability(isRepo, subjects, logErr),
		check.Documentation(scan),
		check.Secrets(scan),
	}

	report := domain.BuildReport(outcomes)

	if isRepo {
		if hash, err := s.git.HeadHash(root); err == nil {
			report.CommitHash = hash
		}
	}

	if (strict || cfg.Strict) && report.Status == domain.StatusWarn {
		report.Status = domain.StatusFail
	}

	return report, nil
}
