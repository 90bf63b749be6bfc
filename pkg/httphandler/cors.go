package httphandler

import (
	"net/http"

	// Packages
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Cors returns middleware which allows credentialed cross-origin requests.
// With origin "*" the request Origin is echoed back, otherwise only the given
// origin is allowed. An empty origin adds no headers. Preflight requests are
// answered with 204 and do not reach the handler.
func Cors(origin string) httprouter.HTTPMiddlewareFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			requestOrigin := r.Header.Get("Origin")
			if origin == "" || requestOrigin == "" {
				next(w, r)
				return
			}

			header := w.Header()
			header.Add("Vary", "Origin")
			if origin == "*" || origin == requestOrigin {
				header.Set("Access-Control-Allow-Origin", requestOrigin)
				header.Set("Access-Control-Allow-Credentials", "true")
			}

			// Preflight
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				header.Set("Access-Control-Allow-Methods", r.Header.Get("Access-Control-Request-Method"))
				if headers := r.Header.Get("Access-Control-Request-Headers"); headers != "" {
					header.Set("Access-Control-Allow-Headers", headers)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next(w, r)
		}
	}
}
