// Package serviceclient is the client-side adapter for service-client
// credential management. Issued tokens are returned to the caller once and
// never logged.
package serviceclient

import (
	"context"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/gateway"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/session"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/serviceclient"
)

// Domain tags every error this adapter returns.
const Domain = "service_clients"

// Params selects one page of clients.
type Params struct {
	Page int
}

// PageNumber returns the requested page.
func (p Params) PageNumber() int { return p.Page }

// Adapter calls the /proxy/service-clients routes.
type Adapter struct {
	gw  adapters.Gateway
	src session.Source
}

// New creates an Adapter.
func New(gw adapters.Gateway, src session.Source) *Adapter {
	return &Adapter{gw: gw, src: src}
}

// List fetches one page of registered clients.
func (a *Adapter) List(ctx context.Context, p Params) (serviceclient.Page, error) {
	token, err := a.token()
	if err != nil {
		return serviceclient.Page{}, err
	}

	resp, err := a.gw.Get(ctx, gateway.Path("service-clients"), adapters.PageQuery(p.Page, 0), token)
	if err != nil {
		return serviceclient.Page{}, adapters.Tag(err, Domain)
	}

	dto, err := adapters.Decode[pageDTO](resp)
	if err != nil {
		return serviceclient.Page{}, adapters.Tag(err, Domain)
	}
	return toDomainPage(&dto), nil
}

// Create registers a client and returns its first credential.
func (a *Adapter) Create(ctx context.Context, reg serviceclient.Registration) (serviceclient.Credential, error) {
	return a.credential(ctx, gateway.Path("service-clients"), registrationDTO{Name: reg.Name, Scopes: reg.Scopes})
}

// Rotate replaces the client's token and returns the new credential.
func (a *Adapter) Rotate(ctx context.Context, id string) (serviceclient.Credential, error) {
	return a.credential(ctx, gateway.Path("service-clients", id, "rotate"), nil)
}

// Revoke disables the client and returns its updated record.
func (a *Adapter) Revoke(ctx context.Context, id string) (serviceclient.Client, error) {
	token, err := a.token()
	if err != nil {
		return serviceclient.Client{}, err
	}

	resp, err := a.gw.Post(ctx, gateway.Path("service-clients", id, "revoke"), token, nil)
	if err != nil {
		return serviceclient.Client{}, adapters.Tag(err, Domain)
	}

	dto, err := adapters.Decode[clientDTO](resp)
	if err != nil {
		return serviceclient.Client{}, adapters.Tag(err, Domain)
	}
	return toDomainClient(&dto), nil
}

// Delete removes the client.
func (a *Adapter) Delete(ctx context.Context, id string) error {
	token, err := a.token()
	if err != nil {
		return err
	}
	if _, err := a.gw.Delete(ctx, gateway.Path("service-clients", id), token); err != nil {
		return adapters.Tag(err, Domain)
	}
	return nil
}

func (a *Adapter) credential(ctx context.Context, path string, body any) (serviceclient.Credential, error) {
	token, err := a.token()
	if err != nil {
		return serviceclient.Credential{}, err
	}

	resp, err := a.gw.Post(ctx, path, token, body)
	if err != nil {
		return serviceclient.Credential{}, adapters.Tag(err, Domain)
	}

	dto, err := adapters.Decode[credentialDTO](resp)
	if err != nil {
		return serviceclient.Credential{}, adapters.Tag(err, Domain)
	}
	return toDomainCredential(&dto), nil
}

func (a *Adapter) token() (string, error) {
	creds, err := adapters.Resolve(a.src, false)
	if err != nil {
		return "", adapters.Tag(err, Domain)
	}
	return creds.Token, nil
}
