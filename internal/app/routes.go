package app

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/storeops-gateway/internal/domain/qa"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/serviceclient"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

// Route binds an upstream domain to the credential policy used for it.
type Route struct {
	Upstream ports.Upstream
	// ServiceToken, when set, replaces the caller's bearer token on every
	// outbound call to this upstream.
	ServiceToken string
}

// credential returns the token sent upstream: the dedicated service token if
// one is configured, otherwise the caller's own bearer token.
func (r Route) credential(callerToken string) string {
	if r.ServiceToken != "" {
		return r.ServiceToken
	}
	return callerToken
}

// Routes holds one Route per upstream domain.
type Routes struct {
	Maintenance    Route
	QA             Route
	Report         Route
	Auth           Route
	ServiceClients Route
}

// Upstream paths. Identifiers are validated by the handlers and escaped again here.
func maintenanceTicketsPath(storeID string) string {
	return "/api/maintenance/stores/" + url.PathEscape(storeID) + "/tickets/"
}

func dailyReportPath(storeID, date string) string {
	return "/api/reports/daily/" + url.PathEscape(storeID) + "/" + url.PathEscape(date) + "/"
}

func serviceClientPath(id, action string) string {
	p := "/api/service-clients/" + url.PathEscape(id) + "/"
	if action != "" {
		p += action + "/"
	}
	return p
}

const (
	qaAuditsPath       = "/api/qa/audits/"
	qaCategoriesPath   = "/api/qa/categories/"
	qaEntitiesPath     = "/api/qa/entities/"
	authMePath         = "/api/auth/me/"
	serviceClientsPath = "/api/service-clients/"
)

// pageQuery encodes positive paging values; zero values are left to the upstream default.
func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func get(path string, query url.Values) ports.UpstreamRequest {
	return ports.UpstreamRequest{Method: http.MethodGet, Path: path, Query: query}
}

// Upstream request bodies.

type categoryBody struct {
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	AuditType   string  `json:"audit_type,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
}

func toCategoryBody(c *qa.Category) categoryBody {
	return categoryBody{
		Label:       c.Label,
		Description: c.Description,
		AuditType:   c.AuditType,
		Weight:      c.Weight,
	}
}

type entityBody struct {
	EntityLabel string `json:"entity_label"`
	CategoryID  string `json:"category_id"`
	Severity    string `json:"severity,omitempty"`
}

func toEntityBody(e *qa.Entity) entityBody {
	return entityBody{
		EntityLabel: e.EntityLabel,
		CategoryID:  e.CategoryID,
		Severity:    e.Severity,
	}
}

type registrationBody struct {
	Name   string   `json:"name"`
	Scopes []string `json:"scopes"`
}

func toRegistrationBody(r *serviceclient.Registration) registrationBody {
	scopes := r.Scopes
	if scopes == nil {
		scopes = []string{}
	}
	return registrationBody{Name: r.Name, Scopes: scopes}
}
