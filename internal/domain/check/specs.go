package check

import (
	"path"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/speclint/speclint/internal/domain"
)

var (
	clarificationPattern = regexp.MustCompile(`\[NEEDS CLARIFICATION[^\]]*\]`)
	placeholderPattern   = regexp.MustCompile(`\[PLACEHOLDER[^\]]*\]`)
)

// Specifications scans every markdown file under the specs root for
// unresolved clarification markers (errors) and placeholder markers
// (warnings). All matches in a file are reported together. An absent specs
// root passes trivially with an info note.
func Specifications(scan *domain.ScanResult, specsDir string) domain.CheckOutcome {
	out := domain.CheckOutcome{Name: "Specification Files", Passed: true}

	if !scan.Dirs[specsDir] {
		out.Findings = append(out.Findings, domain.Infof("No specs directory yet (expected for new repo)"))
		return out
	}

	prefix := specsDir + "/"
	for _, rel := range scan.TextOrder {
		if !strings.HasPrefix(rel, prefix) || !strings.HasSuffix(rel, ".md") {
			continue
		}

		content := scan.Texts[rel]

		if matches := clarificationPattern.FindAllString(content, -1); len(matches) > 0 {
			out.Findings = append(out.Findings,
				domain.Errorf("Unresolved clarifications in %s: %v", rel, matches))
			out.Passed = false
		}

		if matches := placeholderPattern.FindAllString(content, -1); len(matches) > 0 {
			out.Findings = append(out.Findings,
				domain.Warnf("Placeholders in %s: %v", rel, matches))
		}

		if base := strings.TrimSuffix(path.Base(rel), ".md"); isCamelCase(base) {
			out.Findings = append(out.Findings,
				domain.Warnf("Spec filename is not kebab-case: %s", rel))
		}
	}

	return out
}

// isCamelCase reports whether a bare filename mixes word case, e.g.
// "paymentFlow" or "OAuth2Spec". Single-word and kebab/snake names pass.
func isCamelCase(name string) bool {
	if strings.ContainsAny(name, "-_") {
		return false
	}
	return len(camelcase.Split(name)) > 1
}
