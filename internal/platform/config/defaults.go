package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultBatchMaxWorkers = 4
	defaultBatchMaxItems   = 100
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"catalog.base_url":                        "http://localhost:8081",
		"catalog.timeout":                         "30s",
		"catalog.retry.max_attempts":              defaultRetryMaxAttempts,
		"catalog.retry.initial_interval":          "100ms",
		"catalog.retry.max_interval":              "10s",
		"catalog.retry.multiplier":                defaultRetryMultiplier,
		"catalog.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"catalog.circuit_breaker.timeout":         "30s",
		"catalog.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		// Rate limiting is off unless a profile opts in.
		"catalog.rate_limit.requests_per_second": 0,
		"catalog.rate_limit.burst_size":          0,

		"dosing.batch_max_workers": defaultBatchMaxWorkers,
		"dosing.batch_max_items":   defaultBatchMaxItems,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "dosecalc-service",
	}
}
