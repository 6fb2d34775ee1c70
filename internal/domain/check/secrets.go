package check

import "github.com/speclint/speclint/internal/domain"

// Secrets matches every readable text file in the snapshot against the fixed
// secret-pattern table. Each (file, pattern) hit is one error naming the file
// and the pattern label; the matched value is never reported, to keep it out
// of logs. Excluded directories and files never reach the snapshot, so a
// token inside node_modules is invisible here.
func Secrets(scan *domain.ScanResult) domain.CheckOutcome {
	out := domain.CheckOutcome{Name: "Secret Scan", Passed: true}

	for _, rel := range scan.TextOrder {
		content := scan.Texts[rel]
		for _, sp := range domain.SecretPatterns {
			if sp.Pattern.MatchString(content) {
				out.Findings = append(out.Findings, domain.Errorf("Potential %s in %s", sp.Label, rel))
				out.Passed = false
			}
		}
	}

	if out.Passed {
		out.Findings = append(out.Findings, domain.Infof("No hardcoded secrets detected"))
	}

	return out
}
