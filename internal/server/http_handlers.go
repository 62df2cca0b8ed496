package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// writeJSON encodes v with the given status. Encode failures after the
// header is written can only be logged.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// healthHandler reports service health, degrading to 503 when the
// pipeline is missing or a provider circuit breaker is open.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	providers := s.checkProviderHealth()
	response := map[string]any{
		"status":    "healthy",
		"service":   "rolecolor",
		"version":   s.Version,
		"providers": providers,
	}

	status := http.StatusOK
	if !providersHealthy(providers) {
		response["status"] = "degraded"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, response)
}

func (s *Server) checkProviderHealth() map[string]any {
	if s.Pipeline == nil {
		return map[string]any{
			"available": false,
			"error":     "analysis pipeline not initialized",
		}
	}

	providers := s.Pipeline.Stats()
	providers["available"] = true
	return providers
}

// providersHealthy is false when the pipeline is unavailable or any
// provider stats map reports an open circuit breaker.
func providersHealthy(providers map[string]any) bool {
	if available, ok := providers["available"].(bool); ok && !available {
		return false
	}

	for _, value := range providers {
		stats, ok := value.(map[string]any)
		if !ok {
			continue
		}
		if state, ok := stats["state"].(string); ok && state == "open" {
			return false
		}
	}
	return true
}

// statsHandler exposes provider stats, rate limiter state and the
// effective limits.
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "rolecolor",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
	}

	if s.Pipeline != nil {
		response["providers"] = s.Pipeline.Stats()
	}

	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{"enabled": false}
	}

	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// parseJSONRequest decodes the request body into v. The size cap set
// by the request-limit middleware surfaces here as MaxBytesError.
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}

func writeErrorResponse(w http.ResponseWriter, errText, message string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{Error: errText, Message: message})
}
