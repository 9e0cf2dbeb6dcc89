package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware for a public, credential-less API: any origin may
// call it, with the verbs this service actually serves. Link is exposed so
// browsers can read pagination links, X-Request-Id so dashboards can
// correlate failed calls with server logs.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-Id",
		},
		ExposedHeaders: []string{"Link", "X-Request-Id"},
		MaxAge:         300,
	})
}
