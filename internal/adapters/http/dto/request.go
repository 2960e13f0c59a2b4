package dto

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/qa"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/serviceclient"
)

const (
	maxBodyBytes = 1 << 20 // 1 MB
	maxLabelLen  = 255

	msgRequired = "is required"
	msgTooLong  = "must be at most 255 characters"
)

// DecodeJSON reads a JSON request body into v. An unreadable, oversized or
// malformed body is an INVALID_PARAM error; field checks are left to Validate.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return domain.InvalidParam("body", "request body too large")
		case errors.Is(err, io.EOF):
			return domain.InvalidParam("body", "request body is empty")
		default:
			return domain.InvalidParam("body", "malformed JSON")
		}
	}
	if dec.More() {
		return domain.InvalidParam("body", "unexpected data after JSON object")
	}
	return nil
}

// checkLabel records a failure for a required, bounded text field.
func checkLabel(fields map[string]string, name, value string) {
	switch {
	case strings.TrimSpace(value) == "":
		fields[name] = msgRequired
	case utf8.RuneCountInString(value) > maxLabelLen:
		fields[name] = msgTooLong
	}
}

// checkEnum records a failure when a non-empty value is outside allowed.
func checkEnum(fields map[string]string, name, value string, allowed []string) {
	if value != "" && !slices.Contains(allowed, value) {
		fields[name] = "must be one of " + strings.Join(allowed, ", ")
	}
}

func validationResult(fields map[string]string) error {
	if len(fields) > 0 {
		return domain.ValidationError(fields)
	}
	return nil
}

// CreateCategoryRequest is the body of POST /proxy/qa/categories.
type CreateCategoryRequest struct {
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	AuditType   string  `json:"audit_type,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
}

// Validate checks required fields and enumerations.
// Returns a VALIDATION_ERROR *domain.Error if any checks fail.
func (r *CreateCategoryRequest) Validate() error {
	fields := make(map[string]string)

	checkLabel(fields, "label", r.Label)
	checkEnum(fields, "audit_type", r.AuditType, qa.AuditTypes)
	if r.Weight < 0 {
		fields["weight"] = "must not be negative"
	}

	return validationResult(fields)
}

// ToDomain converts the request to a domain category.
func (r *CreateCategoryRequest) ToDomain() *qa.Category {
	return &qa.Category{
		Label:       strings.TrimSpace(r.Label),
		Description: r.Description,
		AuditType:   r.AuditType,
		Weight:      r.Weight,
	}
}

// CreateEntityRequest is the body of POST /proxy/qa/entities.
type CreateEntityRequest struct {
	EntityLabel string `json:"entity_label"`
	CategoryID  string `json:"category_id"`
	Severity    string `json:"severity,omitempty"`
}

// Validate checks required fields and enumerations.
func (r *CreateEntityRequest) Validate() error {
	fields := make(map[string]string)

	checkLabel(fields, "entity_label", r.EntityLabel)
	if strings.TrimSpace(r.CategoryID) == "" {
		fields["category_id"] = msgRequired
	}
	checkEnum(fields, "severity", r.Severity, qa.Severities)

	return validationResult(fields)
}

// ToDomain converts the request to a domain entity.
func (r *CreateEntityRequest) ToDomain() *qa.Entity {
	return &qa.Entity{
		EntityLabel: strings.TrimSpace(r.EntityLabel),
		CategoryID:  strings.TrimSpace(r.CategoryID),
		Severity:    r.Severity,
	}
}

// CreateServiceClientRequest is the body of POST /proxy/service-clients.
type CreateServiceClientRequest struct {
	Name   string   `json:"name"`
	Scopes []string `json:"scopes"`
}

// Validate checks the name and that every scope is known.
func (r *CreateServiceClientRequest) Validate() error {
	fields := make(map[string]string)

	checkLabel(fields, "name", r.Name)
	for _, s := range r.Scopes {
		if !slices.Contains(serviceclient.Scopes, s) {
			fields["scopes"] = "must be a subset of " + strings.Join(serviceclient.Scopes, ", ")
			break
		}
	}

	return validationResult(fields)
}

// ToDomain converts the request to a domain registration.
func (r *CreateServiceClientRequest) ToDomain() *serviceclient.Registration {
	return &serviceclient.Registration{
		Name:   strings.TrimSpace(r.Name),
		Scopes: r.Scopes,
	}
}
