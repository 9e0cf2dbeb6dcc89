// Package health serves the liveness probe.
package health

import "net/http"

// body is fixed so the endpoint needs no encoder and no content negotiation.
const body = `{"status":"healthy"}`

// Handler reports liveness. It stays outside the API framework so probes
// and curl get the same plain JSON regardless of Accept headers.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
