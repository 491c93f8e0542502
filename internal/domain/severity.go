package domain

import "fmt"

// Severity classifies how strongly a rule blocks a change.
// The order is total: NEVER > MUST > SHOULD > GUIDANCE.
type Severity int

const (
	SeverityGuidance Severity = iota
	SeverityShould
	SeverityMust
	SeverityNever
)

// severityNames maps severities to their document representation.
var severityNames = map[Severity]string{
	SeverityNever:    "NEVER",
	SeverityMust:     "MUST",
	SeverityShould:   "SHOULD",
	SeverityGuidance: "GUIDANCE",
}

// String returns the upper-case document form of the severity.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Blocking reports whether the severity fails a run (NEVER and MUST do).
func (s Severity) Blocking() bool {
	return s >= SeverityMust
}

// AtLeast reports whether s is at least as severe as min.
// Both the --severity output filter and the exit-code gate use this
// ordering, so the two can never diverge.
func (s Severity) AtLeast(min Severity) bool {
	return s >= min
}

// ParseSeverity parses the document form of a severity.
func ParseSeverity(value string) (Severity, error) {
	switch value {
	case "NEVER":
		return SeverityNever, nil
	case "MUST":
		return SeverityMust, nil
	case "SHOULD":
		return SeverityShould, nil
	case "GUIDANCE":
		return SeverityGuidance, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", value)
	}
}

// MarshalJSON encodes the severity as its document string.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes the document string form of a severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("severity must be a string")
	}
	parsed, err := ParseSeverity(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// HasBlocking reports whether any result carries a blocking severity.
// It is the single source of the CI pass/fail decision.
func HasBlocking(results []Result) bool {
	for _, r := range results {
		if r.Severity.Blocking() {
			return true
		}
	}
	return false
}

// FilterBySeverity returns the results at least as severe as min,
// preserving order.
func FilterBySeverity(results []Result, min Severity) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Severity.AtLeast(min) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
