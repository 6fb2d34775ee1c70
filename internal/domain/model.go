package domain

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Run statuses. Any recorded error makes the run fail; warnings alone
// downgrade a pass to warn but never fail the run.
const (
	StatusPass = "pass"
	StatusWarn = "warn"
	StatusFail = "fail"
)

// Finding is a single observation produced by a check. The message always
// names the offending path (where one applies) and a human-readable reason.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// CheckOutcome is what a single check returns: its own pass/fail verdict plus
// the findings it produced, in discovery order. A check may emit warnings and
// still pass, or (governance) fail on warnings alone; emitting an error
// always means the check failed.
type CheckOutcome struct {
	Name     string
	Passed   bool
	Findings []Finding
}

// CheckResult is the per-check line in a run report.
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// RunReport aggregates one full validation run. Findings are grouped by
// severity, preserving check order and, within a check, discovery order.
type RunReport struct {
	Checks     []CheckResult `json:"checks"`
	Errors     []string      `json:"errors"`
	Warnings   []string      `json:"warnings"`
	Info       []string      `json:"info"`
	Status     string        `json:"status"`
	CommitHash string        `json:"commit_hash,omitempty"`
}

// BuildReport concatenates check outcomes into a run report and derives the
// overall status. Overall failure is governed solely by recorded errors, not
// by individual check verdicts.
func BuildReport(outcomes []CheckOutcome) *RunReport {
	report := &RunReport{
		Checks:   make([]CheckResult, 0, len(outcomes)),
		Errors:   []string{},
		Warnings: []string{},
		Info:     []string{},
	}

	for _, out := range outcomes {
		report.Checks = append(report.Checks, CheckResult{Name: out.Name, Passed: out.Passed})
		for _, f := range out.Findings {
			switch f.Severity {
			case SeverityError:
				report.Errors = append(report.Errors, f.Message)
			case SeverityWarning:
				report.Warnings = append(report.Warnings, f.Message)
			default:
				report.Info = append(report.Info, f.Message)
			}
		}
	}

	switch {
	case len(report.Errors) > 0:
		report.Status = StatusFail
	case len(report.Warnings) > 0:
		report.Status = StatusWarn
	default:
		report.Status = StatusPass
	}

	return report
}
