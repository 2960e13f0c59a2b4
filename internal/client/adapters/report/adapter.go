// Package report is the client-side adapter for the daily sales report route.
package report

import (
	"context"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/gateway"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/session"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/report"
)

// Domain tags every error this adapter returns.
const Domain = "report"

// sourceSample is the X-Data-Source value of the gateway's bundled fallback.
const sourceSample = "sample"

// Params selects the business date. A zero Date means today, local time.
type Params struct {
	Date time.Time
}

// Result is a daily report plus whether the gateway served its bundled
// sample instead of upstream data.
type Result struct {
	Daily  report.Daily
	Sample bool
}

// Adapter fetches the daily report of the selected store.
type Adapter struct {
	gw  adapters.Gateway
	src session.Source
	now func() time.Time
}

// New creates an Adapter.
func New(gw adapters.Gateway, src session.Source) *Adapter {
	return &Adapter{gw: gw, src: src, now: time.Now}
}

// Daily fetches the report for the session's store on p.Date.
func (a *Adapter) Daily(ctx context.Context, p Params) (Result, error) {
	creds, err := adapters.Resolve(a.src, true)
	if err != nil {
		return Result{}, adapters.Tag(err, Domain)
	}

	date := p.Date
	if date.IsZero() {
		date = a.now()
	}

	resp, err := a.gw.Get(ctx, gateway.Path("report", creds.StoreID, date.Format(time.DateOnly)), nil, creds.Token)
	if err != nil {
		return Result{}, adapters.Tag(err, Domain)
	}

	dto, err := adapters.Decode[dailyDTO](resp)
	if err != nil {
		return Result{}, adapters.Tag(err, Domain)
	}
	if dto.StoreID == "" {
		return Result{}, adapters.Tag(domain.New(domain.CodeUpstream, "report has no store_id"), Domain)
	}
	return Result{Daily: toDomainDaily(&dto), Sample: resp.Source == sourceSample}, nil
}
