package checks

// Severity separates findings that fail a check from advisory ones.
type Severity string

const (
	// SeverityError marks a fatal finding.
	SeverityError Severity = "error"
	// SeverityWarning marks a finding that is reported but never fails a check.
	SeverityWarning Severity = "warning"
)
