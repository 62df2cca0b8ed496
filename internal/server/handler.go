package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/DANNY1169/resume-role-classifier/internal/errors"
	"github.com/DANNY1169/resume-role-classifier/internal/observability"
	"github.com/DANNY1169/resume-role-classifier/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createAnalyzeHandler wraps the analyze handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("rolecolor.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		if s.MaxRequestSize > 0 && len(req.ResumeText) > int(s.MaxRequestSize) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large",
				fmt.Sprintf("resumeText exceeds size limit of %d characters", s.MaxRequestSize), http.StatusBadRequest)
			return
		}

		if req.EvidenceCount < 0 {
			err := fmt.Errorf("negative evidence count: %d", req.EvidenceCount)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid evidence count", "evidenceCount must not be negative", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "analyze"),
		)

		input := types.AnalyzeResumeInput{
			ResumeText:    req.ResumeText,
			EvidenceCount: req.EvidenceCount,
			UseLLM:        req.UseLLM,
		}

		metrics := om.GetMetrics()
		var result *types.RoleAnalysis
		err := metrics.TrackAIOperationWithTokens(ctx, "analyze", func(ctx context.Context) *observability.AIOperationResult {
			output, analyzeErr := s.Pipeline.Analyze(ctx, input)
			result = output
			return &observability.AIOperationResult{Error: analyzeErr}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			metrics.RecordBusinessMetric(ctx, "resume_analyzed", false, om,
				attribute.String("error", err.Error()))
			writeAnalyzeError(w, err)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_analyzed", true, om,
			attribute.String("dominant_role", string(result.DominantRole)),
			attribute.Float64("confidence", result.Distribution[result.DominantRole]))
		metrics.RecordBusinessMetric(ctx, "summary_generated", true, om,
			attribute.String("source", result.Summary.Source))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("response.dominant_role", string(result.DominantRole)),
			attribute.Float64("response.confidence", result.Distribution[result.DominantRole]),
			attribute.Int("response.sentence_count", result.SentenceCount),
			attribute.String("response.summary_source", result.Summary.Source),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// writeAnalyzeError maps analysis errors onto HTTP status codes
func writeAnalyzeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			writeErrorResponse(w, "Invalid resume text", appErr.Message, http.StatusBadRequest)
			return
		case apperrors.ErrorTypeAI, apperrors.ErrorTypeNetwork:
			writeErrorResponse(w, "Analysis provider unavailable", appErr.Message, http.StatusBadGateway)
			return
		}
	}
	writeErrorResponse(w, "Failed to analyze resume", err.Error(), http.StatusInternalServerError)
}

// createRolesHandler wraps the roles catalog handler with observability
func (s *Server) createRolesHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("rolecolor.api")
		_, span := tracer.Start(r.Context(), "api.roles")
		defer span.End()

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		catalog := s.Pipeline.Roles()
		span.SetAttributes(attribute.Int("response.role_count", len(catalog.Roles)))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(catalog); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
