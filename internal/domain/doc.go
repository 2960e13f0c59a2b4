// Package domain holds the error taxonomy shared by the gateway and the dashboard client.
// Per-domain payload records live in sub-packages (domain/maintenance, domain/qa,
// domain/report, domain/serviceclient). This root package owns the closed ErrorCode set,
// the structured *Error type, and the classifier that turns raw outcomes into it.
package domain
