// Package maintenance is the client-side adapter for the maintenance ticket
// routes of the gateway.
package maintenance

import (
	"context"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/gateway"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/session"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/maintenance"
)

// Domain tags every error this adapter returns.
const Domain = "maintenance"

// Params selects one page of tickets. Zero values leave the choice to the upstream.
type Params struct {
	Page  int
	Limit int
}

// PageNumber returns the requested page.
func (p Params) PageNumber() int { return p.Page }

// Adapter lists the tickets of the selected store.
type Adapter struct {
	gw  adapters.Gateway
	src session.Source
}

// New creates an Adapter.
func New(gw adapters.Gateway, src session.Source) *Adapter {
	return &Adapter{gw: gw, src: src}
}

// List fetches one page of tickets for the store selected in the session.
func (a *Adapter) List(ctx context.Context, p Params) (maintenance.Page, error) {
	creds, err := adapters.Resolve(a.src, true)
	if err != nil {
		return maintenance.Page{}, adapters.Tag(err, Domain)
	}

	resp, err := a.gw.Get(ctx, gateway.Path("maintenance", creds.StoreID), adapters.PageQuery(p.Page, p.Limit), creds.Token)
	if err != nil {
		return maintenance.Page{}, adapters.Tag(err, Domain)
	}

	dto, err := adapters.Decode[pageDTO](resp)
	if err != nil {
		return maintenance.Page{}, adapters.Tag(err, Domain)
	}
	return toDomainPage(&dto), nil
}
