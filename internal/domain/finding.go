package domain

import "fmt"

// Errorf builds an error-severity finding.
func Errorf(format string, args ...any) Finding {
	return Finding{Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

// Warnf builds a warning-severity finding.
func Warnf(format string, args ...any) Finding {
	return Finding{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// Infof builds an info-severity finding.
func Infof(format string, args ...any) Finding {
	return Finding{Severity: SeverityInfo, Message: fmt.Sprintf(format, args...)}
}
