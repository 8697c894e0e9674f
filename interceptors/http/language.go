package http

import (
	"net/http"

	"github.com/pitabwire/localize"
)

// LanguageMiddleware extracts the request's language preferences and sets
// them in the request context for handlers to translate against.
func LanguageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := localize.ExtractLanguageFromHTTPRequest(r)

		ctx := localize.ToContext(r.Context(), l)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}
