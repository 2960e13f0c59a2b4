// Package adapters holds what the per-domain service adapters share: the
// gateway calls they make, credential resolution and payload decoding.
// Each domain lives in its own subpackage and maps the gateway's wire
// payload onto the records in internal/domain.
package adapters

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/gateway"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/session"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
)

// Compile-time interface check.
var _ Gateway = (*gateway.Client)(nil)

// Gateway is the subset of *gateway.Client the adapters call.
type Gateway interface {
	Get(ctx context.Context, path string, query url.Values, token string) (*gateway.Response, error)
	Post(ctx context.Context, path, token string, body any) (*gateway.Response, error)
	Delete(ctx context.Context, path, token string) (*gateway.Response, error)
}

// Credentials is the ambient context an adapter call runs with.
type Credentials struct {
	Token   string
	StoreID string
}

// Resolve reads the bearer token and, when withStore is set, the selected
// store from src. Nothing is sent to the gateway when either is missing.
func Resolve(src session.Source, withStore bool) (Credentials, error) {
	token, err := src.BearerToken()
	if err != nil {
		return Credentials{}, err
	}
	creds := Credentials{Token: token}
	if withStore {
		storeID, err := src.StoreID()
		if err != nil {
			return Credentials{}, err
		}
		creds.StoreID = storeID
	}
	return creds, nil
}

// Decode unmarshals a gateway reply into a wire DTO.
func Decode[T any](resp *gateway.Response) (T, error) {
	var v T
	if len(resp.Body) == 0 {
		return v, domain.New(domain.CodeUpstream, "empty response body")
	}
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return v, domain.Wrap(err, domain.CodeUpstream, "response body does not match the expected shape")
	}
	return v, nil
}

// Tag returns a copy of err stamped with the domain it was raised for, so
// shared sentinels are never mutated. Errors that are not *domain.Error are
// classified as UNKNOWN first.
func Tag(err error, name string) error {
	if err == nil {
		return nil
	}
	e, ok := domain.AsError(err)
	if !ok {
		return domain.Wrap(err, domain.CodeUnknown, err.Error()).WithDomain(name)
	}
	tagged := *e
	return tagged.WithDomain(name)
}

// PageQuery encodes the optional page and limit parameters. Zero omits them.
func PageQuery(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
