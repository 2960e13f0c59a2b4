// Package qa is the client-side adapter for the quality-assurance routes:
// listing audits and creating checklist categories and entities.
package qa

import (
	"context"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/gateway"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/session"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/qa"
)

// Domain tags every error this adapter returns.
const Domain = "qa"

// Params selects one page of audits.
type Params struct {
	Page int
}

// PageNumber returns the requested page.
func (p Params) PageNumber() int { return p.Page }

// Adapter calls the QA routes. None of them are scoped to a store.
type Adapter struct {
	gw  adapters.Gateway
	src session.Source
}

// New creates an Adapter.
func New(gw adapters.Gateway, src session.Source) *Adapter {
	return &Adapter{gw: gw, src: src}
}

// ListAudits fetches one page of audits.
func (a *Adapter) ListAudits(ctx context.Context, p Params) (qa.Page, error) {
	creds, err := adapters.Resolve(a.src, false)
	if err != nil {
		return qa.Page{}, adapters.Tag(err, Domain)
	}

	resp, err := a.gw.Get(ctx, gateway.Path("qa", "audits"), adapters.PageQuery(p.Page, 0), creds.Token)
	if err != nil {
		return qa.Page{}, adapters.Tag(err, Domain)
	}

	dto, err := adapters.Decode[pageDTO](resp)
	if err != nil {
		return qa.Page{}, adapters.Tag(err, Domain)
	}
	return toDomainPage(&dto), nil
}

// CreateCategory creates a checklist category and returns it as stored.
func (a *Adapter) CreateCategory(ctx context.Context, c qa.Category) (qa.Category, error) {
	out, err := create(ctx, a, "categories", fromDomainCategory(&c))
	if err != nil {
		return qa.Category{}, err
	}
	return toDomainCategory(&out), nil
}

// CreateEntity creates a checklist entity and returns it as stored.
func (a *Adapter) CreateEntity(ctx context.Context, e qa.Entity) (qa.Entity, error) {
	out, err := create(ctx, a, "entities", fromDomainEntity(&e))
	if err != nil {
		return qa.Entity{}, err
	}
	return toDomainEntity(&out), nil
}

func create[T any](ctx context.Context, a *Adapter, resource string, body T) (T, error) {
	var zero T
	creds, err := adapters.Resolve(a.src, false)
	if err != nil {
		return zero, adapters.Tag(err, Domain)
	}

	resp, err := a.gw.Post(ctx, gateway.Path("qa", resource), creds.Token, body)
	if err != nil {
		return zero, adapters.Tag(err, Domain)
	}

	out, err := adapters.Decode[T](resp)
	if err != nil {
		return zero, adapters.Tag(err, Domain)
	}
	return out, nil
}
