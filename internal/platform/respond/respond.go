package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/forgefolio/forgefolio/internal/platform/logging"
)

const (
	msgNotFound          = "resource not found"
	msgMethodNotAllowed  = "method not allowed"
	msgInternalServerErr = "internal server error"
)

// ErrorModel is the wire shape of every error response.
type ErrorModel struct {
	Message string   `json:"error" doc:"Human-readable error message"`
	Details []string `json:"details,omitempty" doc:"Optional list of specific problems"`
}

type statusError struct {
	ErrorModel
	status int
}

func (e *statusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.status)
}

func (e *statusError) GetStatus() int {
	return e.status
}

var installOnce sync.Once

// Install replaces Huma's error constructors so every error response uses
// the shared envelope and is logged with the request context.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return newError(context.Background(), status, msg, errs...)
		}

		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			goCtx := context.Background()
			if hctx != nil {
				goCtx = hctx.Context()
			}
			return newError(goCtx, status, msg, errs...)
		}
	})
}

func newError(ctx context.Context, status int, msg string, errs ...error) huma.StatusError {
	msg = messageOrDefault(status, msg)
	details := detailsFromErrors(errs)

	fields := []zap.Field{zap.Int("status", status)}
	if len(details) > 0 {
		fields = append(fields, zap.Strings("details", details))
	}
	logWithStatus(ctx, status, msg, joinErrors(errs), fields...)

	return &statusError{
		ErrorModel: ErrorModel{Message: msg, Details: details},
		status:     status,
	}
}

// NotFoundHandler renders the shared envelope for unmatched routes.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, msgNotFound)
	}
}

// MethodNotAllowedHandler renders the shared envelope for known routes hit
// with an unsupported method, including the Allow header.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		writeError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}
}

// Recoverer converts panics into envelope 500 responses. http.ErrAbortHandler
// propagates so the server can abort the connection as documented. If the
// handler already wrote a header, the partial response is left untouched.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				var err error
				switch v := rec.(type) {
				case error:
					err = v
				default:
					err = fmt.Errorf("%v", v)
				}
				logging.LogError(r.Context(), "panic recovered", err, zap.ByteString("stack", debug.Stack()))
				if !ww.wroteHeader {
					writeError(ww, r, http.StatusInternalServerError, msgInternalServerErr)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// writeError renders the envelope in whichever of JSON or CBOR the client
// prefers. These paths bypass Huma, so negotiation happens here.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	ensureVary(w.Header(), "Origin", "Accept")

	body := ErrorModel{Message: msg}
	if selectFormat(r.Header.Get("Accept")) {
		data, err := cbor.Marshal(body)
		if err != nil {
			logging.LogError(r.Context(), "failed to encode error response", err)
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/cbor")
		w.WriteHeader(status)
		if _, err := w.Write(data); err != nil {
			logging.LogError(r.Context(), "failed to write error response", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		logging.LogError(r.Context(), "failed to write error response", err)
	}
}

// allowedMethods probes the chi routing tree for every method the path answers.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		} else {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

func detailsFromErrors(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		msg := err.Error()
		if detailer, ok := err.(huma.ErrorDetailer); ok {
			if detail := detailer.ErrorDetail(); detail != nil {
				msg = detail.Message
				if detail.Location != "" {
					msg = detail.Location + ": " + msg
				}
			}
		}
		details = append(details, msg)
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

func messageOrDefault(status int, msg string) string {
	if strings.TrimSpace(msg) != "" {
		return msg
	}
	if text := http.StatusText(status); strings.TrimSpace(text) != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

func logWithStatus(ctx context.Context, status int, msg string, err error, fields ...zap.Field) {
	if ctx == nil {
		ctx = context.Background()
	}
	if msg == "" {
		msg = "request failed"
	}
	switch {
	case status >= 500:
		logging.LogError(ctx, msg, err, fields...)
	case status >= 400:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logging.LogWarn(ctx, msg, fields...)
	default:
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logging.LogInfo(ctx, msg, fields...)
	}
}

// ensureVary merges the given header names into Vary without duplicates.
func ensureVary(h http.Header, values ...string) {
	if len(values) == 0 {
		return
	}
	seen := make(map[string]struct{})
	var merged []string
	for _, existing := range h.Values("Vary") {
		for part := range strings.SplitSeq(existing, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			key := http.CanonicalHeaderKey(part)
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				merged = append(merged, part)
			}
		}
	}
	for _, v := range values {
		key := http.CanonicalHeaderKey(v)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			merged = append(merged, v)
		}
	}
	h.Set("Vary", strings.Join(merged, ", "))
}

type acceptRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges with q-values.
// Malformed or out-of-range q-values fall back to 1.0 per RFC 9110.
func parseAccept(header string) []acceptRange {
	var ranges []acceptRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		params := strings.Split(part, ";")
		mediaType := strings.ToLower(strings.TrimSpace(params[0]))
		q := 1.0
		for _, p := range params[1:] {
			p = strings.TrimSpace(p)
			if v, ok := strings.CutPrefix(p, "q="); ok {
				f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
				if err != nil || f < 0 || f > 1 {
					q = 1.0
				} else {
					q = f
				}
			}
		}
		typ, subtype, found := strings.Cut(mediaType, "/")
		if !found {
			subtype = "*"
		}
		ranges = append(ranges, acceptRange{
			typ:     strings.TrimSpace(typ),
			subtype: strings.TrimSpace(subtype),
			q:       q,
		})
	}
	return ranges
}

// matchSpecificity reports how specifically an accept range matches the given
// format subtype ("json" or "cbor"). Higher wins; ok is false on no match.
func matchSpecificity(ar acceptRange, format string) (int, bool) {
	if ar.typ != "*" && ar.typ != "application" {
		return 0, false
	}
	switch {
	case strings.HasSuffix(ar.subtype, "+"+format):
		return 3, true
	case ar.subtype == format:
		return 2, true
	case ar.subtype == "*" && ar.typ == "application":
		return 1, true
	case ar.subtype == "*" && ar.typ == "*":
		return 0, true
	}
	return 0, false
}

// formatQuality finds the most specific accept range matching the format and
// returns its q-value, per RFC 9110's precedence rules.
func formatQuality(ranges []acceptRange, format string) (float64, int, bool) {
	var (
		q       float64
		spec    int
		matched bool
	)
	for _, ar := range ranges {
		s, ok := matchSpecificity(ar, format)
		if !ok {
			continue
		}
		if !matched || s > spec {
			matched = true
			spec = s
			q = ar.q
		}
	}
	return q, spec, matched
}

// selectFormat reports whether the Accept header prefers CBOR over JSON.
// JSON is the default whenever the two are tied or nothing matches.
func selectFormat(accept string) bool {
	ranges := parseAccept(accept)

	cborQ, cborSpec, cborOK := formatQuality(ranges, "cbor")
	jsonQ, jsonSpec, jsonOK := formatQuality(ranges, "json")

	if !cborOK || cborQ == 0 {
		return false
	}
	if !jsonOK || jsonQ == 0 {
		return true
	}
	if cborQ != jsonQ {
		return cborQ > jsonQ
	}
	return cborSpec > jsonSpec
}
