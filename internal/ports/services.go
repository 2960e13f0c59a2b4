package ports

import (
	"context"
	"encoding/json"

	"github.com/jsamuelsen11/storeops-gateway/internal/domain/qa"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/serviceclient"
)

// DataSource tells the caller where a payload came from.
type DataSource string

// Data sources reported in the X-Data-Source response header.
const (
	SourceUpstream DataSource = "upstream"
	SourceSample   DataSource = "sample"
)

// Payload is a successful gateway result, forwarded to the caller verbatim.
type Payload struct {
	Status int
	Body   json.RawMessage
	Source DataSource
}

// MaintenanceQuery selects one page of a store's maintenance tickets.
// Zero Page or Limit means the upstream default.
type MaintenanceQuery struct {
	StoreID string
	Page    int
	Limit   int
}

// ReportQuery selects one store's daily sales report. Date is YYYY-MM-DD.
type ReportQuery struct {
	StoreID string
	Date    string
}

// GatewayService defines the service port for the proxy routes.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method takes the caller's bearer token; the service decides which
// credential is actually sent upstream. Errors are *domain.Error values.
type GatewayService interface {
	// ListMaintenanceTickets returns one page of tickets for a store.
	ListMaintenanceTickets(ctx context.Context, callerToken string, q MaintenanceQuery) (*Payload, error)

	// ListQAAudits returns one page of QA audits. Zero page means the first.
	ListQAAudits(ctx context.Context, callerToken string, page int) (*Payload, error)

	// CreateQACategory creates an audit category. Never retried.
	CreateQACategory(ctx context.Context, callerToken string, c *qa.Category) (*Payload, error)

	// CreateQAEntity creates an audit checklist entity. Never retried.
	CreateQAEntity(ctx context.Context, callerToken string, e *qa.Entity) (*Payload, error)

	// GetDailyReport returns a store's daily sales report. When upstream
	// authentication is not provisioned or the upstream is unreachable, it
	// serves the bundled sample with Source set to SourceSample.
	GetDailyReport(ctx context.Context, callerToken string, q ReportQuery) (*Payload, error)

	// CurrentUser returns the profile behind the caller's token.
	CurrentUser(ctx context.Context, callerToken string) (*Payload, error)

	// ListServiceClients returns one page of registered service clients.
	ListServiceClients(ctx context.Context, callerToken string, page int) (*Payload, error)

	// CreateServiceClient registers a service client and returns its first credential.
	CreateServiceClient(ctx context.Context, callerToken string, r *serviceclient.Registration) (*Payload, error)

	// RotateServiceClientToken issues a new credential for an existing client.
	RotateServiceClientToken(ctx context.Context, callerToken, id string) (*Payload, error)

	// RevokeServiceClient invalidates a client's credentials without deleting it.
	RevokeServiceClient(ctx context.Context, callerToken, id string) (*Payload, error)

	// DeleteServiceClient removes a client.
	DeleteServiceClient(ctx context.Context, callerToken, id string) (*Payload, error)
}
