package model

// Severity tags a display status for presentation emphasis.
type Severity string

const (
	SeverityNeutral Severity = "neutral"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// DisplayStatus is the single human-facing status derived by collapsing all
// five axes of an order. It is never persisted.
type DisplayStatus struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}
