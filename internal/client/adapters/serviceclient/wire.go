package serviceclient

import (
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/serviceclient"
)

type clientDTO struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Scopes     []string   `json:"scopes"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
	Revoked    bool       `json:"revoked"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *clientDTO) UnmarshalJSON(b []byte) error {
	type plain clientDTO
	return adapters.UnmarshalOpen(b, (*plain)(d), &d.Extra)
}

func (d clientDTO) MarshalJSON() ([]byte, error) {
	type plain clientDTO
	return adapters.MarshalOpen(plain(d), d.Extra)
}

type pageDTO struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []clientDTO `json:"results"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *pageDTO) UnmarshalJSON(b []byte) error {
	type plain pageDTO
	return adapters.UnmarshalOpen(b, (*plain)(d), &d.Extra)
}

func (d pageDTO) MarshalJSON() ([]byte, error) {
	type plain pageDTO
	return adapters.MarshalOpen(plain(d), d.Extra)
}

type credentialDTO struct {
	ClientID  string     `json:"client_id"`
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *credentialDTO) UnmarshalJSON(b []byte) error {
	type plain credentialDTO
	return adapters.UnmarshalOpen(b, (*plain)(d), &d.Extra)
}

func (d credentialDTO) MarshalJSON() ([]byte, error) {
	type plain credentialDTO
	return adapters.MarshalOpen(plain(d), d.Extra)
}

type registrationDTO struct {
	Name   string   `json:"name"`
	Scopes []string `json:"scopes"`
}

func toDomainClient(dto *clientDTO) serviceclient.Client {
	return serviceclient.Client{
		ID:         dto.ID,
		Name:       dto.Name,
		Scopes:     dto.Scopes,
		CreatedAt:  dto.CreatedAt,
		LastUsedAt: dto.LastUsedAt,
		Revoked:    dto.Revoked,
		Extra:      dto.Extra,
	}
}

func fromDomainClient(c *serviceclient.Client) clientDTO {
	return clientDTO{
		ID:         c.ID,
		Name:       c.Name,
		Scopes:     c.Scopes,
		CreatedAt:  c.CreatedAt,
		LastUsedAt: c.LastUsedAt,
		Revoked:    c.Revoked,
		Extra:      c.Extra,
	}
}

func toDomainPage(dto *pageDTO) serviceclient.Page {
	page := serviceclient.Page{
		Count:    dto.Count,
		Next:     dto.Next,
		Previous: dto.Previous,
		Extra:    dto.Extra,
	}
	if dto.Results != nil {
		page.Results = make([]serviceclient.Client, len(dto.Results))
	}
	for i := range dto.Results {
		page.Results[i] = toDomainClient(&dto.Results[i])
	}
	return page
}

func fromDomainPage(p *serviceclient.Page) pageDTO {
	dto := pageDTO{
		Count:    p.Count,
		Next:     p.Next,
		Previous: p.Previous,
		Extra:    p.Extra,
	}
	if p.Results != nil {
		dto.Results = make([]clientDTO, len(p.Results))
	}
	for i := range p.Results {
		dto.Results[i] = fromDomainClient(&p.Results[i])
	}
	return dto
}

func toDomainCredential(dto *credentialDTO) serviceclient.Credential {
	return serviceclient.Credential{
		ClientID:  dto.ClientID,
		Token:     dto.Token,
		ExpiresAt: dto.ExpiresAt,
		Extra:     dto.Extra,
	}
}

func fromDomainCredential(c *serviceclient.Credential) credentialDTO {
	return credentialDTO{
		ClientID:  c.ClientID,
		Token:     c.Token,
		ExpiresAt: c.ExpiresAt,
		Extra:     c.Extra,
	}
}
