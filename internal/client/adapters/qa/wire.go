package qa

import (
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/qa"
)

type auditDTO struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	StoreName   string    `json:"store_name"`
	AuditorName string    `json:"auditor_name"`
	Score       float64   `json:"score"`
	MaxScore    float64   `json:"max_score"`
	Status      string    `json:"status"`
	AuditedAt   time.Time `json:"audited_at"`
	Notes       string    `json:"notes"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *auditDTO) UnmarshalJSON(b []byte) error {
	type plain auditDTO
	return adapters.UnmarshalOpen(b, (*plain)(d), &d.Extra)
}

func (d auditDTO) MarshalJSON() ([]byte, error) {
	type plain auditDTO
	return adapters.MarshalOpen(plain(d), d.Extra)
}

type pageDTO struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []auditDTO `json:"results"`

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

type categoryDTO struct {
	ID          string  `json:"id,omitempty"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	AuditType   string  `json:"audit_type,omitempty"`
	Weight      float64 `json:"weight,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *categoryDTO) UnmarshalJSON(b []byte) error {
	type plain categoryDTO
	return adapters.UnmarshalOpen(b, (*plain)(d), &d.Extra)
}

func (d categoryDTO) MarshalJSON() ([]byte, error) {
	type plain categoryDTO
	return adapters.MarshalOpen(plain(d), d.Extra)
}

type entityDTO struct {
	ID          string `json:"id,omitempty"`
	EntityLabel string `json:"entity_label"`
	CategoryID  string `json:"category_id"`
	Severity    string `json:"severity,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *entityDTO) UnmarshalJSON(b []byte) error {
	type plain entityDTO
	return adapters.UnmarshalOpen(b, (*plain)(d), &d.Extra)
}

func (d entityDTO) MarshalJSON() ([]byte, error) {
	type plain entityDTO
	return adapters.MarshalOpen(plain(d), d.Extra)
}

func toDomainAudit(dto *auditDTO) qa.Audit {
	return qa.Audit{
		ID:          dto.ID,
		StoreID:     dto.StoreID,
		StoreName:   dto.StoreName,
		AuditorName: dto.AuditorName,
		Score:       dto.Score,
		MaxScore:    dto.MaxScore,
		Status:      dto.Status,
		AuditedAt:   dto.AuditedAt,
		Notes:       dto.Notes,
		Extra:       dto.Extra,
	}
}

func fromDomainAudit(a *qa.Audit) auditDTO {
	return auditDTO{
		ID:          a.ID,
		StoreID:     a.StoreID,
		StoreName:   a.StoreName,
		AuditorName: a.AuditorName,
		Score:       a.Score,
		MaxScore:    a.MaxScore,
		Status:      a.Status,
		AuditedAt:   a.AuditedAt,
		Notes:       a.Notes,
		Extra:       a.Extra,
	}
}

func toDomainPage(dto *pageDTO) qa.Page {
	page := qa.Page{
		Count:    dto.Count,
		Next:     dto.Next,
		Previous: dto.Previous,
		Extra:    dto.Extra,
	}
	if dto.Results != nil {
		page.Results = make([]qa.Audit, len(dto.Results))
	}
	for i := range dto.Results {
		page.Results[i] = toDomainAudit(&dto.Results[i])
	}
	return page
}

func fromDomainPage(p *qa.Page) pageDTO {
	dto := pageDTO{
		Count:    p.Count,
		Next:     p.Next,
		Previous: p.Previous,
		Extra:    p.Extra,
	}
	if p.Results != nil {
		dto.Results = make([]auditDTO, len(p.Results))
	}
	for i := range p.Results {
		dto.Results[i] = fromDomainAudit(&p.Results[i])
	}
	return dto
}

func toDomainCategory(dto *categoryDTO) qa.Category {
	return qa.Category{
		ID:          dto.ID,
		Label:       dto.Label,
		Description: dto.Description,
		AuditType:   dto.AuditType,
		Weight:      dto.Weight,
		Extra:       dto.Extra,
	}
}

func fromDomainCategory(c *qa.Category) categoryDTO {
	return categoryDTO{
		ID:          c.ID,
		Label:       c.Label,
		Description: c.Description,
		AuditType:   c.AuditType,
		Weight:      c.Weight,
		Extra:       c.Extra,
	}
}

func toDomainEntity(dto *entityDTO) qa.Entity {
	return qa.Entity{
		ID:          dto.ID,
		EntityLabel: dto.EntityLabel,
		CategoryID:  dto.CategoryID,
		Severity:    dto.Severity,
		Extra:       dto.Extra,
	}
}

func fromDomainEntity(e *qa.Entity) entityDTO {
	return entityDTO{
		ID:          e.ID,
		EntityLabel: e.EntityLabel,
		CategoryID:  e.CategoryID,
		Severity:    e.Severity,
		Extra:       e.Extra,
	}
}
