package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, in lower case, the HTTP headers that carry
// credentials. The request logger prints them as [REDACTED] and the
// redactor masks attributes with the same names.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// sensitiveFields are attribute and struct field names masked at any depth,
// so slog.Any of an UpstreamConfig hides its ServiceToken.
var sensitiveFields = []string{
	"password", "secret", "credential", "Credential",
	"token", "service_token", "ServiceToken",
}

// sensitivePrefixes catch variants such as token_hint or secret_key.
var sensitivePrefixes = []string{"secret_", "api_key", "token_"}

// sensitiveValues match credentials that turn up inside free text.
var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// Three dot-separated base64url segments of 10+ characters, so version
	// strings like 1.2.3 survive.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// redactor returns the masq ReplaceAttr hook New installs on every handler.
func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
