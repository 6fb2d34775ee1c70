package check

import (
	"regexp"

	"github.com/speclint/speclint/internal/domain"
)

var (
	commitSubjectPattern = regexp.MustCompile(`^(feat|fix|docs|style|refactor|test|chore)(\([^)]+\))?: .+`)
	taskIDPattern        = regexp.MustCompile(`(TASK-\d{3}|T\d{3})`)
)

// Traceability inspects recent commit subjects for conventional-commit format
// and task ID references. Nonconforming subjects are tolerated warnings, so
// the check itself always passes; outside a git repository, or when the log
// cannot be read, it degrades to an info note.
func Traceability(isRepo bool, subjects []string, logErr error) domain.CheckOutcome {
	out := domain.CheckOutcome{Name: "Task Traceability", Passed: true}

	if !isRepo {
		out.Findings = append(out.Findings, domain.Infof("Not a git repository - skipping commit checks"))
		return out
	}
	if logErr != nil {
		out.Findings = append(out.Findings, domain.Infof("Commit history unreadable - skipping commit checks"))
		return out
	}

	tagged := 0
	for _, subject := range subjects {
		if !commitSubjectPattern.MatchString(subject) {
			out.Findings = append(out.Findings,
				domain.Warnf("Commit subject does not follow conventional format: %s", subject))
		}
		if taskIDPattern.MatchString(subject) {
			tagged++
		}
	}

	if len(subjects) > 0 {
		out.Findings = append(out.Findings,
			domain.Infof("%d/%d recent commits reference a task ID", tagged, len(subjects)))
	}

	return out
}
