package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/logging"
)

// bearerTokenKey is the context key for the caller's bearer token.
type bearerTokenKey struct{}

// WithBearerToken returns a new context carrying the caller's bearer token.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey{}, token)
}

// BearerToken returns the caller's bearer token, or "" if none was stored.
func BearerToken(ctx context.Context) string {
	if t, ok := ctx.Value(bearerTokenKey{}).(string); ok {
		return t
	}
	return ""
}

// RequireBearer returns middleware that rejects requests without an
// "Authorization: Bearer <token>" header with NOT_AUTHENTICATED (401) before
// any upstream call is made. The gateway does not verify the token; the
// upstream does. When the token is a JWT its subject is added to the
// request logger and the access record as "subject".
func RequireBearer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := parseBearer(r.Header.Get("Authorization"))
			if !ok {
				dto.WriteError(w, r, domain.New(domain.CodeNotAuthenticated, "missing bearer token"))
				return
			}

			ctx := WithBearerToken(r.Context(), token)
			if sub := tokenSubject(token); sub != "" {
				attr := slog.String("subject", sub)
				ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(attr))
				logging.Annotate(ctx, attr)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseBearer extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func parseBearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// tokenSubject reads the "sub" claim without verifying the signature.
// Opaque tokens yield "".
func tokenSubject(token string) string {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return ""
	}
	return claims.Subject
}
