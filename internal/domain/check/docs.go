package check

import "github.com/speclint/speclint/internal/domain"

var requiredDocs = []string{"README.md", "LICENSE", "CONTRIBUTING.md"}

// Documentation verifies the baseline project documents. Missing documents
// are warnings, which fail this check's own verdict without failing the run.
func Documentation(scan *domain.ScanResult) domain.CheckOutcome {
	out := domain.CheckOutcome{Name: "Documentation Standards", Passed: true}

	for _, doc := range requiredDocs {
		if !scan.Files[doc] {
			out.Findings = append(out.Findings, domain.Warnf("Missing documentation: %s", doc))
			out.Passed = false
		}
	}

	if !scan.Files["CHANGELOG.md"] {
		out.Findings = append(out.Findings, domain.Infof("CHANGELOG.md not found (will be created)"))
	}

	return out
}
