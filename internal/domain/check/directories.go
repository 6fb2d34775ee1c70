// Package check implements the individual validation checks. Each check is a
// pure function over a scan snapshot: it returns its own verdict plus the
// findings it produced and never touches the filesystem itself.
package check

import "github.com/speclint/speclint/internal/domain"

// Directories verifies that every required directory exists under the
// repository root. A path the walk could not reach counts as missing.
func Directories(scan *domain.ScanResult, required []string) domain.CheckOutcome {
	out := domain.CheckOutcome{Name: "Directory Structure", Passed: true}

	missing := 0
	for _, dir := range required {
		if !scan.Dirs[dir] {
			out.Findings = append(out.Findings, domain.Errorf("Missing required directory: %s", dir))
			missing++
		}
	}

	if missing > 0 {
		out.Passed = false
		out.Findings = append(out.Findings,
			domain.Infof("Found %d/%d required directories", len(required)-missing, len(required)))
	} else {
		out.Findings = append(out.Findings, domain.Infof("All required directories present"))
	}

	return out
}
