package server

import (
	"net/http"
	"strings"

	"github.com/DANNY1169/resume-role-classifier/internal/observability"
)

// setupRoutes configures all HTTP routes with their middleware chains
func (s *Server) setupRoutes(om *observability.ObservabilityManager) *http.ServeMux {
	mux := http.NewServeMux()

	// Health and stats endpoints are always open
	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/stats", s.statsHandler)

	rateLimitHandler := s.createRateLimitMiddleware(om)
	requestLimitHandler := s.requestSizeLimitMiddleware()

	// Analysis endpoints require authentication when API keys are configured
	mux.HandleFunc("/analyze", rateLimitHandler(s.authMiddleware(requestLimitHandler(s.createAnalyzeHandler(om)))))
	mux.HandleFunc("/roles", rateLimitHandler(s.authMiddleware(s.createRolesHandler(om))))

	return mux
}

// authMiddleware validates API keys for protected endpoints
func (s *Server) authMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Skip authentication if no API keys are configured
		if len(s.APIKeys) == 0 {
			next(w, r)
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			authHeader := r.Header.Get("Authorization")
			if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				apiKey = after
			}
		}

		if apiKey == "" {
			s.Logger.Warn("API request without authentication",
				"endpoint", r.URL.Path,
				"client_ip", getClientIP(r))
			writeErrorResponse(w, "Authentication required",
				"Provide an API key via the X-API-Key header or Authorization: Bearer token", http.StatusUnauthorized)
			return
		}

		if !s.APIKeys[apiKey] {
			s.Logger.Warn("API request with invalid key",
				"endpoint", r.URL.Path,
				"client_ip", getClientIP(r),
				"key_prefix", maskAPIKey(apiKey))
			writeErrorResponse(w, "Invalid API key", "The provided API key is not valid", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

// requestSizeLimitMiddleware limits the size of request bodies
func (s *Server) requestSizeLimitMiddleware() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if s.MaxRequestSize > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, s.MaxRequestSize)
			}
			next(w, r)
		}
	}
}

// maskAPIKey returns a safe prefix of an API key for logging
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "********"
	}
	return key[:8] + "..."
}
