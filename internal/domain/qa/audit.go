// Package qa holds quality-assurance audit records.
package qa

import (
	"encoding/json"
	"time"
)

// Audit is a completed QA audit of a store.
type Audit struct {
	ID          string
	StoreID     string
	StoreName   string
	AuditorName string
	Score       float64
	MaxScore    float64
	Status      string
	AuditedAt   time.Time
	Notes       string

	// Extra holds upstream fields this record does not model, unchanged.
	Extra map[string]json.RawMessage
}

// Page is one page of audits. Next and Previous are nil at either end.
type Page struct {
	Count    int
	Next     *string
	Previous *string
	Results  []Audit

	// Extra holds upstream fields this record does not model, unchanged.
	Extra map[string]json.RawMessage
}

// AuditTypes enumerates the kinds of category an audit can score.
var AuditTypes = []string{"food_safety", "cleanliness", "service", "operations"}

// Severities enumerates how serious a failed audit entity is.
var Severities = []string{"low", "medium", "high", "critical"}

// Category groups audit entities under a label.
type Category struct {
	ID          string
	Label       string
	Description string
	AuditType   string
	Weight      float64

	// Extra holds upstream fields this record does not model, unchanged.
	Extra map[string]json.RawMessage
}

// Entity is a single checklist item within a category.
type Entity struct {
	ID          string
	EntityLabel string
	CategoryID  string
	Severity    string

	// Extra holds upstream fields this record does not model, unchanged.
	Extra map[string]json.RawMessage
}
