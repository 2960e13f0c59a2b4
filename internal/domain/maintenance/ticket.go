// Package maintenance holds the maintenance ticket records shown on the store dashboard.
package maintenance

import (
	"encoding/json"
	"time"
)

// Ticket is one maintenance request raised for a store.
type Ticket struct {
	ID          string
	StoreID     string
	Title       string
	Description string
	Status      string
	Priority    string
	Category    string
	ReportedBy  string
	AssignedTo  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time

	// Extra holds upstream fields this record does not model, unchanged.
	Extra map[string]json.RawMessage
}

// Page is one page of tickets. Next and Previous are opaque cursors (URLs),
// nil when there is no such page.
type Page struct {
	Count    int
	Next     *string
	Previous *string
	Results  []Ticket

	// Extra holds upstream fields this record does not model, unchanged.
	Extra map[string]json.RawMessage
}
