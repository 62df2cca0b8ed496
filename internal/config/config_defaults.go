package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// AI Configuration - Global defaults
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.maxRetries", 3)

	// AI Configuration - Embedding operation defaults
	v.SetDefault("ai.embedding.provider", "gemini")
	v.SetDefault("ai.embedding.model", "gemini-embedding-001")
	v.SetDefault("ai.embedding.timeout", 30*time.Second)
	v.SetDefault("ai.embedding.apiKey", "")
	v.SetDefault("ai.embedding.maxRetries", 3)

	// AI Configuration - Summary operation defaults
	v.SetDefault("ai.summary.provider", "gemini")
	v.SetDefault("ai.summary.model", "gemini-2.0-flash")
	v.SetDefault("ai.summary.timeout", 60*time.Second)
	v.SetDefault("ai.summary.apiKey", "")
	v.SetDefault("ai.summary.maxRetries", 2)
	v.SetDefault("ai.summary.temperature", 0.7)
	v.SetDefault("ai.summary.enabled", true)
	v.SetDefault("ai.summary.minConfidence", 0.3)
	v.SetDefault("ai.summary.extractMaxWords", 400)

	// Circuit Breaker Configuration defaults for all operations
	v.SetDefault("ai.embedding.circuitBreaker.enabled", true)
	v.SetDefault("ai.embedding.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.embedding.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.embedding.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.embedding.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.embedding.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.summary.circuitBreaker.enabled", true)
	v.SetDefault("ai.summary.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.summary.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.summary.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.summary.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.summary.circuitBreaker.failureThreshold", 0.6)

	// Scoring policy defaults
	v.SetDefault("scoring.minSentenceWords", 10)
	v.SetDefault("scoring.minAlphaRatio", 0.5)
	v.SetDefault("scoring.recencyFraction", 0.3)
	v.SetDefault("scoring.recencyBoost", 2.0)
	v.SetDefault("scoring.softmaxTemperature", 1.2)
	v.SetDefault("scoring.evidenceCount", 3)

	// Role reference descriptions (empty means use the built-in catalog)
	v.SetDefault("roles.builder.description", "")
	v.SetDefault("roles.enabler.description", "")
	v.SetDefault("roles.thriver.description", "")
	v.SetDefault("roles.supportee.description", "")

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	// TLS Configuration defaults
	v.SetDefault("server.tls.mode", "disabled") // disabled, server
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	v.SetDefault("server.tls.minVersion", "1.2")
	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})
	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 1024*1024) // 1MB

	// Vault Configuration
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")
	v.SetDefault("vault.namespace", "")
	v.SetDefault("vault.secrets.apiKeys", "")
	v.SetDefault("vault.secrets.geminiKey", "")

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "rolecolor")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Custom Metrics Configuration
	v.SetDefault("observability.customMetrics.aiOperations.enabled", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackDuration", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackTokenUsage", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackModelInfo", true)
	v.SetDefault("observability.customMetrics.businessMetrics.enabled", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackSuccessRates", true)
	v.SetDefault("observability.customMetrics.businessMetrics.trackContentSizes", true)
	v.SetDefault("observability.customMetrics.infrastructure.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackRateLimits", true)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})

	// Health Check Configuration
	v.SetDefault("observability.healthCheck.timeout", 15*time.Second)
	v.SetDefault("observability.healthCheck.aiModelCheckTimeout", 10*time.Second)
}
