package dto_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"label":"Fryers"}`, false},
		{"malformed", `{"label":`, true},
		{"empty", ``, true},
		{"trailing data", `{"label":"a"} {"label":"b"}`, true},
		{"too large", `{"label":"` + strings.Repeat("a", 2<<20) + `"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/proxy/qa/categories", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var body dto.CreateCategoryRequest
			err := dto.DecodeJSON(rec, req, &body)

			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && domain.CodeOf(err) != domain.CodeInvalidParam {
				t.Errorf("code = %s, want INVALID_PARAM", domain.CodeOf(err))
			}
		})
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want VALIDATION_ERROR", err)
	}
	e, _ := domain.AsError(err)
	fields, _ := e.Details["fields"].(map[string]string)
	return fields
}

func TestCreateCategoryRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.CreateCategoryRequest
		wantFields []string
	}{
		{"valid", dto.CreateCategoryRequest{Label: "Fryers", AuditType: "food_safety"}, nil},
		{"valid without audit type", dto.CreateCategoryRequest{Label: "Lobby"}, nil},
		{"missing label", dto.CreateCategoryRequest{AuditType: "service"}, []string{"label"}},
		{"blank label", dto.CreateCategoryRequest{Label: "   "}, []string{"label"}},
		{"label too long", dto.CreateCategoryRequest{Label: strings.Repeat("x", 256)}, []string{"label"}},
		{"label at limit", dto.CreateCategoryRequest{Label: strings.Repeat("é", 255)}, nil},
		{"unknown audit type", dto.CreateCategoryRequest{Label: "x", AuditType: "vibes"}, []string{"audit_type"}},
		{"negative weight", dto.CreateCategoryRequest{Label: "x", Weight: -1}, []string{"weight"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields := fieldsOf(t, tt.req.Validate())
			if len(fields) != len(tt.wantFields) {
				t.Fatalf("fields = %v, want %v", fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := fields[f]; !ok {
					t.Errorf("fields missing %q: %v", f, fields)
				}
			}
		})
	}
}

func TestCreateEntityRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.CreateEntityRequest
		wantFields []string
	}{
		{"valid", dto.CreateEntityRequest{EntityLabel: "Oil temp", CategoryID: "c1", Severity: "critical"}, nil},
		{"missing everything", dto.CreateEntityRequest{}, []string{"entity_label", "category_id"}},
		{"bad severity", dto.CreateEntityRequest{EntityLabel: "x", CategoryID: "c1", Severity: "urgent"}, []string{"severity"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields := fieldsOf(t, tt.req.Validate())
			if len(fields) != len(tt.wantFields) {
				t.Fatalf("fields = %v, want %v", fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := fields[f]; !ok {
					t.Errorf("fields missing %q: %v", f, fields)
				}
			}
		})
	}
}

func TestCreateServiceClientRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.CreateServiceClientRequest
		wantFields []string
	}{
		{"valid", dto.CreateServiceClientRequest{Name: "pos-sync", Scopes: []string{"reports:read", "qa:write"}}, nil},
		{"no scopes", dto.CreateServiceClientRequest{Name: "pos-sync"}, nil},
		{"missing name", dto.CreateServiceClientRequest{Scopes: []string{"qa:read"}}, []string{"name"}},
		{"unknown scope", dto.CreateServiceClientRequest{Name: "x", Scopes: []string{"qa:read", "admin:*"}}, []string{"scopes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fields := fieldsOf(t, tt.req.Validate())
			if len(fields) != len(tt.wantFields) {
				t.Fatalf("fields = %v, want %v", fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := fields[f]; !ok {
					t.Errorf("fields missing %q: %v", f, fields)
				}
			}
		})
	}
}

func TestToDomain_TrimsLabels(t *testing.T) {
	t.Parallel()

	c := (&dto.CreateCategoryRequest{Label: "  Fryers  ", AuditType: "food_safety"}).ToDomain()
	if c.Label != "Fryers" || c.AuditType != "food_safety" {
		t.Errorf("category = %+v", c)
	}

	e := (&dto.CreateEntityRequest{EntityLabel: " Oil ", CategoryID: " c1 "}).ToDomain()
	if e.EntityLabel != "Oil" || e.CategoryID != "c1" {
		t.Errorf("entity = %+v", e)
	}

	r := (&dto.CreateServiceClientRequest{Name: " pos ", Scopes: []string{"qa:read"}}).ToDomain()
	if r.Name != "pos" || len(r.Scopes) != 1 {
		t.Errorf("registration = %+v", r)
	}
}
