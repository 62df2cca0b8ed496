package server

import (
	"time"

	"github.com/DANNY1169/resume-role-classifier/internal/config"
	apperrors "github.com/DANNY1169/resume-role-classifier/internal/errors"
	"github.com/DANNY1169/resume-role-classifier/internal/pipeline"
)

// AnalyzeRequest is the body accepted by POST /analyze.
type AnalyzeRequest struct {
	ResumeText    string `json:"resumeText"`
	EvidenceCount int    `json:"evidenceCount,omitempty"`
	UseLLM        *bool  `json:"useLLM,omitempty"`
}

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server is the HTTP front end for the classification pipeline.
type Server struct {
	Host    string
	Port    string
	Version string

	AppConfig *config.Config
	TLSConfig config.TLSConfig

	// APIKeys is keyed by the raw key value for O(1) auth checks.
	APIKeys map[string]bool

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	MaxRequestSize int64

	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Pipeline is shared by all request handlers. Start builds it;
	// tests inject one directly.
	Pipeline *pipeline.Pipeline

	Logger *apperrors.Logger
}

// ServerConfig collects the settings NewServer needs.
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer builds a Server, indexing the API keys and starting the
// rate limiter when enabled.
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *apperrors.Logger) *Server {
	s := &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        make(map[string]bool, len(cfg.APIKeys)),
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		Logger:         logger,
	}

	for _, key := range cfg.APIKeys {
		if key != "" {
			s.APIKeys[key] = true
		}
	}

	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		s.RateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return s
}
