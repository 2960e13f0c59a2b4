package maintenance

import (
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/maintenance"
)

// ticketDTO is a ticket as the maintenance API serializes it.
type ticketDTO struct {
	ID          string     `json:"id"`
	StoreID     string     `json:"store_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	ReportedBy  string     `json:"reported_by"`
	AssignedTo  string     `json:"assigned_to"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *ticketDTO) UnmarshalJSON(b []byte) error {
	type plain ticketDTO
	return adapters.UnmarshalOpen(b, (*plain)(d), &d.Extra)
}

func (d ticketDTO) MarshalJSON() ([]byte, error) {
	type plain ticketDTO
	return adapters.MarshalOpen(plain(d), d.Extra)
}

// pageDTO is one paginated list response.
type pageDTO struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []ticketDTO `json:"results"`

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

func toDomainTicket(dto *ticketDTO) maintenance.Ticket {
	return maintenance.Ticket{
		ID:          dto.ID,
		StoreID:     dto.StoreID,
		Title:       dto.Title,
		Description: dto.Description,
		Status:      dto.Status,
		Priority:    dto.Priority,
		Category:    dto.Category,
		ReportedBy:  dto.ReportedBy,
		AssignedTo:  dto.AssignedTo,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
		ResolvedAt:  dto.ResolvedAt,
		Extra:       dto.Extra,
	}
}

func toDomainPage(dto *pageDTO) maintenance.Page {
	page := maintenance.Page{
		Count:    dto.Count,
		Next:     dto.Next,
		Previous: dto.Previous,
		Extra:    dto.Extra,
	}
	if dto.Results != nil {
		page.Results = make([]maintenance.Ticket, len(dto.Results))
	}
	for i := range dto.Results {
		page.Results[i] = toDomainTicket(&dto.Results[i])
	}
	return page
}

// fromDomainTicket is the inverse of toDomainTicket.
func fromDomainTicket(t *maintenance.Ticket) ticketDTO {
	return ticketDTO{
		ID:          t.ID,
		StoreID:     t.StoreID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		Category:    t.Category,
		ReportedBy:  t.ReportedBy,
		AssignedTo:  t.AssignedTo,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		ResolvedAt:  t.ResolvedAt,
		Extra:       t.Extra,
	}
}

// fromDomainPage is the inverse of toDomainPage.
func fromDomainPage(p *maintenance.Page) pageDTO {
	dto := pageDTO{
		Count:    p.Count,
		Next:     p.Next,
		Previous: p.Previous,
		Extra:    p.Extra,
	}
	if p.Results != nil {
		dto.Results = make([]ticketDTO, len(p.Results))
	}
	for i := range p.Results {
		dto.Results[i] = fromDomainTicket(&p.Results[i])
	}
	return dto
}
