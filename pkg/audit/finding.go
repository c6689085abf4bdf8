// Package audit provides the rule engine, findings, and registry for seolint.
package audit

// Severity classifies a finding. Findings are also bucketed by severity in
// CategoryResult; the explicit field exists so a finding's weight is never
// implied by its position alone.
type Severity string

const (
	SeverityGood    Severity = "good"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one observation emitted by a rule. Immutable once created.
type Finding struct {
	// Severity classifies the finding.
	Severity Severity `json:"-"`

	// Message is the human-readable observation.
	Message string `json:"message"`

	// Tip is an optional remediation suggestion.
	Tip string `json:"tip,omitempty"`
}

// Good builds a positive finding.
func Good(message string) Finding {
	return Finding{Severity: SeverityGood, Message: message}
}

// Warn builds a warning finding with a remediation tip.
func Warn(message, tip string) Finding {
	return Finding{Severity: SeverityWarning, Message: message, Tip: tip}
}

// Error builds an error finding with a remediation tip.
func Error(message, tip string) Finding {
	return Finding{Severity: SeverityError, Message: message, Tip: tip}
}

// CategoryResult buckets one category's findings by severity. It is created
// empty at the start of an analysis pass, populated during the pass, and
// replaced wholesale on the next run.
type CategoryResult struct {
	Good     []Finding `json:"good"`
	Warnings []Finding `json:"warnings"`
	Errors   []Finding `json:"errors"`
}

// NewCategoryResult returns an empty result with non-nil buckets so the
// serialized form always shows three arrays.
func NewCategoryResult() *CategoryResult {
	return &CategoryResult{
		Good:     []Finding{},
		Warnings: []Finding{},
		Errors:   []Finding{},
	}
}

// Add routes a finding into the bucket matching its severity.
func (cr *CategoryResult) Add(f Finding) {
	switch f.Severity {
	case SeverityGood:
		cr.Good = append(cr.Good, f)
	case SeverityError:
		cr.Errors = append(cr.Errors, f)
	default:
		cr.Warnings = append(cr.Warnings, f)
	}
}

// Counts holds bucket sizes. They always equal the bucket lengths of the
// CategoryResult they were derived from.
type Counts struct {
	Good     int `json:"good"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// Counts returns the current bucket sizes.
func (cr *CategoryResult) Counts() Counts {
	return Counts{
		Good:     len(cr.Good),
		Warnings: len(cr.Warnings),
		Errors:   len(cr.Errors),
	}
}

// Report maps each evaluated category to its findings. Disabled categories
// are absent, not empty. A report is immutable after the pass that built it.
type Report map[Category]*CategoryResult
