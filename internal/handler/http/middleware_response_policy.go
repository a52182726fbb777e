// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/unrolled/secure"
)

const (
	corsMaxAge = 3600

	hstsSeconds = 31556926
	hstsValue   = "max-age=31556926; includeSubDomains"
)

var corsAllowedMethods = []string{
	http.MethodHead,
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
}

// securityHeaders returns the fixed header set written on every response.
func securityHeaders() *secure.Secure {
	return secure.New(secure.Options{
		CustomFrameOptionsValue: "SAMEORIGIN",
		BrowserXssFilter:        true,
		ContentTypeNosniff:      true,
		ContentSecurityPolicy:   "default-src 'self'; object-src 'none'",
		ReferrerPolicy:          "strict-origin-when-cross-origin",
	})
}

// strictTransport adds HSTS. It is only mounted on requests already known to
// arrive over TLS.
func strictTransport() *secure.Secure {
	return secure.New(secure.Options{
		STSSeconds:           hstsSeconds,
		STSIncludeSubdomains: true,
		ForceSTSHeader:       true,
	})
}

func corsPolicy() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     corsAllowedMethods,
		AllowedHeaders:     []string{"Content-Type", traceIDHeader},
		ExposedHeaders:     []string{"Location", traceIDHeader},
		MaxAge:             corsMaxAge,
		OptionsPassthrough: true,
	})
}

// withResponsePolicy decorates every response with the security headers and
// CORS headers, answers CORS preflight requests and, when ForceHTTPS is on,
// redirects plain HTTP requests to HTTPS.
func (h *Handler) withResponsePolicy(next http.Handler) http.Handler {
	headers := securityHeaders()
	chain := corsPolicy().Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPreflight(r) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	}))
	tlsChain := strictTransport().Handler(chain)

	return headers.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if !h.cfg.ForceHTTPS {
			chain.ServeHTTP(w, r)
			return
		}
		if !isHTTPS(r) {
			http.Redirect(w, r, httpsURL(r), http.StatusFound)
			return
		}
		tlsChain.ServeHTTP(w, r)
	}))
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}

func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

func httpsURL(r *http.Request) string {
	return "https://" + r.Host + r.URL.RequestURI()
}
