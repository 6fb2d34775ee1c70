package check

import (
	"strings"

	"github.com/speclint/speclint/internal/domain"
)

// governanceFile pairs a required document with the section markers it must
// contain verbatim. The slice keeps file order deterministic.
type governanceFile struct {
	path     string
	sections []string
}

var governanceFiles = []governanceFile{
	{"dev-docs/sdd/constitution.md", []string{"Core Principles", "Development Gates", "Version"}},
	{"dev-docs/sdd/constitution_update_checklist.md", []string{"Pre-Amendment", "Post-Amendment"}},
	{"dev-docs/sdd/lifecycle.md", []string{"Lifecycle Phases", "Enforcement", "Traceability"}},
}

// Governance verifies the governance documents exist and contain their
// required sections. A missing file is an error and skips the section checks
// for that file. A missing section is only a warning, yet still fails this
// check's own verdict; the overall run verdict is driven by errors alone.
func Governance(scan *domain.ScanResult) domain.CheckOutcome {
	out := domain.CheckOutcome{Name: "Governance Files", Passed: true}

	for _, gf := range governanceFiles {
		if !scan.Files[gf.path] {
			out.Findings = append(out.Findings, domain.Errorf("Missing governance file: %s", gf.path))
			out.Passed = false
			continue
		}

		content := scan.Texts[gf.path]
		for _, section := range gf.sections {
			if !strings.Contains(content, section) {
				out.Findings = append(out.Findings,
					domain.Warnf("Missing section '%s' in %s", section, gf.path))
				out.Passed = false
			}
		}
	}

	return out
}
