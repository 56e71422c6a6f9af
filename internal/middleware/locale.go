package middleware

import (
	"context"
	"net/http"
	"strings"
)

type localeContextKey struct{}

// LocaleKey stores the detected UI locale on the request context.
var LocaleKey = localeContextKey{}

// Locale resolves the locale for user-facing messages from X-Locale or
// Accept-Language. The editor audience is Korean-first, so unrecognized
// values fall through to the configured default.
func Locale(defaultLocale string) func(http.Handler) http.Handler {
	if defaultLocale == "" {
		defaultLocale = "ko"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := detectLocale(r, defaultLocale)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLocale(r *http.Request, fallback string) string {
	if v := r.Header.Get("X-Locale"); v != "" {
		return normalizeLocale(v, fallback)
	}
	for _, part := range strings.Split(r.Header.Get("Accept-Language"), ",") {
		token := strings.TrimSpace(strings.Split(part, ";")[0])
		if token == "" {
			continue
		}
		return normalizeLocale(token, fallback)
	}
	return fallback
}

func normalizeLocale(locale, fallback string) string {
	locale = strings.ToLower(locale)
	switch {
	case strings.HasPrefix(locale, "ko"):
		return "ko"
	case strings.HasPrefix(locale, "en"):
		return "en"
	}
	return fallback
}

// LocaleFromContext returns the locale stored by Locale, defaulting to ko.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return "ko"
}
