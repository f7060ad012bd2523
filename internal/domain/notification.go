package domain

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a human-readable outcome summary delivered to the
// configured sinks. Delivery is fire-and-forget.
type Notification struct {
	Title    string
	Body     string
	Severity Severity
}
