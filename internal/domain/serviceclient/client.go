// Package serviceclient holds the machine credentials (service clients) managed from the dashboard.
package serviceclient

import (
	"encoding/json"
	"time"
)

// Scopes is the fixed set of permissions a service client can be granted.
var Scopes = []string{"reports:read", "maintenance:read", "qa:read", "qa:write"}

// Client is a registered service client. The secret itself is never part of it.
type Client struct {
	ID         string
	Name       string
	Scopes     []string
	CreatedAt  time.Time
	LastUsedAt *time.Time
	Revoked    bool

	// Extra holds upstream fields this record does not model, unchanged.
	Extra map[string]json.RawMessage
}

// Credential is the one-time view of a freshly issued or rotated token.
type Credential struct {
	ClientID  string
	Token     string
	ExpiresAt *time.Time

	// Extra holds upstream fields this record does not model, unchanged.
	Extra map[string]json.RawMessage
}

// Registration is the request to create a new service client.
type Registration struct {
	Name   string
	Scopes []string
}

// Page is one page of registered clients. Next and Previous are nil at either end.
type Page struct {
	Count    int
	Next     *string
	Previous *string
	Results  []Client

	// Extra holds upstream fields this record does not model, unchanged.
	Extra map[string]json.RawMessage
}
