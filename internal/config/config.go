package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
// API Key Precedence Order:
// 1. Vault (if configured) - Highest priority
// 2. Config File values
// 3. Environment Variables (ROLECOLOR_AI_APIKEY, etc.)
// 4. Default values - Lowest priority
type Config struct {
	AI            AIConfig            `mapstructure:"ai"`
	Scoring       ScoringConfig       `mapstructure:"scoring"`
	Roles         RolesConfig         `mapstructure:"roles"`
	Server        ServerConfig        `mapstructure:"server"`
	App           AppConfig           `mapstructure:"app"`
	Vault         VaultConfig         `mapstructure:"vault"`
	Observability ObservabilityConfig `mapstructure:"observability"`

	viper *viper.Viper `mapstructure:"-"`
}

// AIConfig holds AI service configuration
type AIConfig struct {
	// Global/fallback configuration
	Provider   string        `mapstructure:"provider"`
	APIKey     string        `mapstructure:"apiKey"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"maxRetries"`

	// Operation-specific configurations
	Embedding OperationAIConfig `mapstructure:"embedding"`
	Summary   OperationAIConfig `mapstructure:"summary"`
}

// CircuitBreakerConfig represents circuit breaker configuration
type CircuitBreakerConfig struct {
	Enabled          bool          `mapstructure:"enabled"`          // Whether circuit breaker is enabled
	MaxRequests      uint32        `mapstructure:"maxRequests"`      // Max requests allowed when half-open
	Interval         time.Duration `mapstructure:"interval"`         // Interval to clear counts
	Timeout          time.Duration `mapstructure:"timeout"`          // Timeout for half-open to open
	MinRequests      uint32        `mapstructure:"minRequests"`      // Minimum requests before tripping
	FailureThreshold float64       `mapstructure:"failureThreshold"` // Failure ratio threshold (0.0-1.0)
}

// OperationAIConfig holds AI configuration for a specific operation
type OperationAIConfig struct {
	Provider       string               `mapstructure:"provider"`
	Model          string               `mapstructure:"model"`
	Timeout        *time.Duration       `mapstructure:"timeout"`
	APIKey         string               `mapstructure:"apiKey"`
	MaxRetries     *int                 `mapstructure:"maxRetries"`
	Temperature    *float32             `mapstructure:"temperature"`
	Enabled        *bool                `mapstructure:"enabled"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuitBreaker"`

	// Summary generation only
	MinConfidence   float64 `mapstructure:"minConfidence"`   // Dominant-role confidence below which the LLM is skipped
	ExtractMaxWords int     `mapstructure:"extractMaxWords"` // Word cap for the resume extract sent to the LLM
}

// ScoringConfig holds the classification policy knobs.
// These defaults define the published behavior of the classifier; change
// them only together with the documented scoring semantics.
type ScoringConfig struct {
	MinSentenceWords   int     `mapstructure:"minSentenceWords"`   // Minimum words for a sentence to be scored
	MinAlphaRatio      float64 `mapstructure:"minAlphaRatio"`      // Minimum alphabetic character ratio
	RecencyFraction    float64 `mapstructure:"recencyFraction"`    // Trailing fraction of sentences that get boosted
	RecencyBoost       float64 `mapstructure:"recencyBoost"`       // Weight multiplier for recent sentences
	SoftmaxTemperature float64 `mapstructure:"softmaxTemperature"` // Temperature for score-to-probability conversion
	EvidenceCount      int     `mapstructure:"evidenceCount"`      // Default number of evidence sentences
}

// RoleConfig holds the reference description for one role.
type RoleConfig struct {
	Description string `mapstructure:"description"`
}

// RolesConfig holds the reference descriptions the role vectors are built from.
type RolesConfig struct {
	Builder   RoleConfig `mapstructure:"builder"`
	Enabler   RoleConfig `mapstructure:"enabler"`
	Thriver   RoleConfig `mapstructure:"thriver"`
	Supportee RoleConfig `mapstructure:"supportee"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout  time.Duration `mapstructure:"idleTimeout"`

	// TLS Configuration
	TLS TLSConfig `mapstructure:"tls"`

	// API Authentication
	APIKeys []string `mapstructure:"apiKeys"` // Valid API keys for authentication

	// Rate Limiting Configuration
	RateLimit RateLimitConfig `mapstructure:"rateLimit"`
}

// TLSConfig holds TLS configuration
type TLSConfig struct {
	Mode       string `mapstructure:"mode"`       // TLS mode: "disabled", "server"
	CertFile   string `mapstructure:"certFile"`   // Server certificate file (PEM)
	KeyFile    string `mapstructure:"keyFile"`    // Server private key file (PEM)
	MinVersion string `mapstructure:"minVersion"` // Minimum TLS version: "1.2", "1.3"
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled        bool          `mapstructure:"enabled"`        // Enable/disable rate limiting
	RequestsPerMin int           `mapstructure:"requestsPerMin"` // Requests allowed per minute
	BurstCapacity  int           `mapstructure:"burstCapacity"`  // Burst capacity for token bucket
	ByIP           bool          `mapstructure:"byIP"`           // Enable per-IP rate limiting
	ByAPIKey       bool          `mapstructure:"byAPIKey"`       // Enable per-API-key rate limiting
	Window         time.Duration `mapstructure:"window"`         // Rate limiting window duration
}

// AppConfig holds general application configuration
type AppConfig struct {
	LogLevel         string   `mapstructure:"logLevel"`
	DefaultFormat    string   `mapstructure:"defaultFormat"`
	SupportedFormats []string `mapstructure:"supportedFormats"`
	MaxFileSize      int64    `mapstructure:"maxFileSize"`
}

// LoadConfig loads configuration from environment variables and a config file
func LoadConfig() (*Config, error) {
	log.Println("[CONFIG] Starting configuration loading process")

	v := viper.New()

	// Set default values
	setDefaults(v)
	log.Println("[CONFIG] Applied default configuration values")

	// Set up environment variable handling
	v.SetEnvPrefix("ROLECOLOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	log.Println("[CONFIG] Configured environment variable handling with prefix 'ROLECOLOR'")

	// Set up config file handling
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/rolecolor/")
	v.AddConfigPath("$HOME/.rolecolor")
	v.AddConfigPath(".")
	log.Println("[CONFIG] Configured config file search paths: /etc/rolecolor/, $HOME/.rolecolor, .")

	// Read the config file
	configFileUsed := ""
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		log.Println("[CONFIG] No config file found, using defaults and environment variables")
	} else {
		configFileUsed = v.ConfigFileUsed()
		log.Printf("[CONFIG] Successfully loaded config file: %s", configFileUsed)
	}

	// Unmarshal the configuration into the Config struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	log.Println("[CONFIG] Successfully unmarshaled configuration")

	// Apply fallback logic
	config.applyFallbacks()
	log.Println("[CONFIG] Applied configuration fallbacks and environment variable overrides")

	// Log configuration sources summary
	config.logConfigurationSources(configFileUsed)

	// Validate the configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	config.viper = v

	log.Println("[CONFIG] Configuration loading completed successfully")
	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("AI timeout must be positive")
	}

	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring configuration error: %w", err)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	validFormats := make(map[string]bool)
	for _, format := range c.App.SupportedFormats {
		validFormats[format] = true
	}
	if !validFormats[c.App.DefaultFormat] {
		return fmt.Errorf("invalid default format: %s", c.App.DefaultFormat)
	}

	// Validate TLS configuration
	if err := c.ValidateTLSConfig(); err != nil {
		return fmt.Errorf("TLS configuration error: %w", err)
	}

	return nil
}

// Validate checks the scoring policy for internally consistent values
func (s *ScoringConfig) Validate() error {
	if s.MinSentenceWords < 1 {
		return fmt.Errorf("minSentenceWords must be at least 1")
	}
	if s.MinAlphaRatio < 0 || s.MinAlphaRatio > 1 {
		return fmt.Errorf("minAlphaRatio must be between 0 and 1")
	}
	if s.RecencyFraction < 0 || s.RecencyFraction > 1 {
		return fmt.Errorf("recencyFraction must be between 0 and 1")
	}
	if s.RecencyBoost <= 0 {
		return fmt.Errorf("recencyBoost must be positive")
	}
	if s.SoftmaxTemperature <= 0 {
		return fmt.Errorf("softmaxTemperature must be positive")
	}
	if s.EvidenceCount < 0 {
		return fmt.Errorf("evidenceCount must not be negative")
	}
	return nil
}

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
}

// GetEmbeddingConfig returns the AI configuration for embedding operations with fallback to global config
func (c *Config) GetEmbeddingConfig() OperationAIConfig {
	config := c.AI.Embedding
	c.applyOperationDefaults(&config)
	return config
}

// GetSummaryConfig returns the AI configuration for summary generation with fallback to global config
func (c *Config) GetSummaryConfig() OperationAIConfig {
	config := c.AI.Summary
	c.applyOperationDefaults(&config)
	return config
}

// SummaryLLMEnabled reports whether LLM summary generation should be attempted.
// Disabled explicitly, or implicitly when no API key is available: the
// template generator covers both cases.
func (c *Config) SummaryLLMEnabled() bool {
	cfg := c.GetSummaryConfig()
	if cfg.Enabled != nil && !*cfg.Enabled {
		return false
	}
	return cfg.APIKey != ""
}

// ValidateTLSConfig validates the TLS configuration
func (c *Config) ValidateTLSConfig() error {
	tls := c.Server.TLS

	switch tls.Mode {
	case "disabled":
		// No validation needed for disabled mode
	case "server":
		if tls.CertFile == "" || tls.KeyFile == "" {
			return fmt.Errorf("TLS certificate and key files are required for server mode")
		}
	default:
		return fmt.Errorf("invalid TLS mode: %s (must be 'disabled' or 'server')", tls.Mode)
	}

	// Validate TLS version
	switch tls.MinVersion {
	case "", "1.2", "1.3":
		// Valid versions (empty defaults to 1.2)
	default:
		return fmt.Errorf("invalid TLS minVersion: %s (must be '1.2' or '1.3')", tls.MinVersion)
	}

	return nil
}

// applyFallbacks applies environment variable fallbacks
func (c *Config) applyFallbacks() {
	// Parse API keys from environment variable if not set in config
	if len(c.Server.APIKeys) == 0 {
		if apiKeysEnv := os.Getenv("ROLECOLOR_SERVER_APIKEYS"); apiKeysEnv != "" {
			c.Server.APIKeys = strings.Split(apiKeysEnv, ",")
			// Trim whitespace from each key
			for i, key := range c.Server.APIKeys {
				c.Server.APIKeys[i] = strings.TrimSpace(key)
			}
		}
	}

	// Legacy Gemini key support
	if c.AI.APIKey == "" {
		if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
			c.AI.APIKey = geminiKey
		}
	}

	// Set default TLS version if not specified
	if c.Server.TLS.MinVersion == "" && c.Server.TLS.Mode != "disabled" {
		c.Server.TLS.MinVersion = "1.2"
	}

	// Roles with no configured description fall back to the built-in catalog
	applyRoleDescriptionDefaults(&c.Roles)

	// Set dynamic service instance ID if not specified
	if c.Observability.ServiceInstance == "" {
		// Try to get hostname, fallback to default
		if hostname, err := os.Hostname(); err == nil {
			c.Observability.ServiceInstance = fmt.Sprintf("%s-%s", c.Observability.ServiceName, hostname)
		} else {
			c.Observability.ServiceInstance = fmt.Sprintf("%s-1", c.Observability.ServiceName)
		}
	}

	// Set console output based on log level if not explicitly configured
	if c.App.LogLevel == "debug" && !c.Observability.ConsoleOutput {
		c.Observability.ConsoleOutput = true
	}
}

// logConfigurationSources logs a summary of configuration sources being used
func (c *Config) logConfigurationSources(configFileUsed string) {
	log.Println("[CONFIG] === Configuration Sources Summary ===")

	// Log config file source
	if configFileUsed != "" {
		log.Printf("[CONFIG] Config file: %s", configFileUsed)
	} else {
		log.Println("[CONFIG] Config file: None (using defaults)")
	}

	// Log environment variables that are set
	envVars := []string{
		"ROLECOLOR_AI_APIKEY",
		"ROLECOLOR_AI_PROVIDER",
		"ROLECOLOR_AI_EMBEDDING_MODEL",
		"ROLECOLOR_AI_SUMMARY_MODEL",
		"ROLECOLOR_SERVER_PORT",
		"ROLECOLOR_SERVER_HOST",
		"ROLECOLOR_APP_LOGLEVEL",
		"ROLECOLOR_VAULT_ENABLED",
		"GEMINI_API_KEY", // Legacy support
	}

	log.Println("[CONFIG] Environment variables:")
	hasEnvVars := false
	for _, envVar := range envVars {
		if value := os.Getenv(envVar); value != "" {
			// Mask sensitive values
			if strings.Contains(strings.ToLower(envVar), "apikey") || strings.Contains(strings.ToLower(envVar), "key") {
				log.Printf("[CONFIG]   %s=***MASKED***", envVar)
			} else {
				log.Printf("[CONFIG]   %s=%s", envVar, value)
			}
			hasEnvVars = true
		}
	}
	if !hasEnvVars {
		log.Println("[CONFIG]   None set")
	}

	// Log key configuration values (with sensitive data masked)
	log.Println("[CONFIG] === Key Configuration Values ===")
	log.Printf("[CONFIG] AI Provider: %s", c.AI.Provider)
	log.Printf("[CONFIG] Embedding Model: %s", c.AI.Embedding.Model)
	log.Printf("[CONFIG] Summary Model: %s", c.AI.Summary.Model)
	if c.AI.APIKey != "" {
		log.Println("[CONFIG] AI API Key: ***CONFIGURED***")
	} else {
		log.Println("[CONFIG] AI API Key: ***NOT SET***")
	}
	log.Printf("[CONFIG] Server Host: %s", c.Server.Host)
	log.Printf("[CONFIG] Server Port: %s", c.Server.Port)
	log.Printf("[CONFIG] Log Level: %s", c.App.LogLevel)
	log.Printf("[CONFIG] TLS Mode: %s", c.Server.TLS.Mode)
	log.Printf("[CONFIG] Vault Enabled: %t", c.Vault.Enabled)
	log.Printf("[CONFIG] Observability Enabled: %t", c.Observability.Enabled)

	// Log scoring policy
	log.Println("[CONFIG] === Scoring Policy ===")
	log.Printf("[CONFIG] Min sentence words: %d, min alpha ratio: %.2f", c.Scoring.MinSentenceWords, c.Scoring.MinAlphaRatio)
	log.Printf("[CONFIG] Recency fraction: %.2f, boost: %.1f", c.Scoring.RecencyFraction, c.Scoring.RecencyBoost)
	log.Printf("[CONFIG] Softmax temperature: %.2f, evidence count: %d", c.Scoring.SoftmaxTemperature, c.Scoring.EvidenceCount)

	log.Println("[CONFIG] =====================================")
}
