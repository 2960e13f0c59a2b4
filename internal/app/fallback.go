package app

import (
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/httpclient"
)

// FallbackPolicy decides whether a failed upstream call may be answered with
// a substitute payload instead of an error.
type FallbackPolicy struct {
	Name    string
	Applies func(err error) bool
}

// DegradeToSampleOnAuthFailure serves bundled sample data when the upstream
// explicitly rejects the credential (401/403) or cannot be reached at all.
// A call the circuit breaker refused never reached the upstream, so it
// counts as unreachable. Every other outcome, a 404 or a real 5xx included,
// propagates. Only the daily report route uses it.
var DegradeToSampleOnAuthFailure = FallbackPolicy{
	Name: "degradeToSampleOnAuthFailure",
	Applies: func(err error) bool {
		if httpclient.IsBreakerRejection(err) {
			return true
		}
		switch domain.CodeOf(err) {
		case domain.CodeUnauthorized, domain.CodeForbidden, domain.CodeNetwork, domain.CodeTimeout:
			return true
		default:
			return false
		}
	},
}
