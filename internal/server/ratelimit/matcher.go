package ratelimit

import "strings"

// unlimited is the sentinel config for endpoints exempt from limiting.
var unlimited = EndpointConfig{}

// MatchEndpoint resolves the endpoint configuration for a request path and
// method. Exact matches win; configs whose Path ends in "/" act as prefix
// patterns (so "/attempts/" covers "/attempts/{id}" and its sub-paths).
// Returns nil when no config applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health probes are never limited
	if path == "/health" && method == "GET" {
		return &unlimited
	}

	var prefixMatch *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if prefixMatch == nil && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			prefixMatch = cfg
		}
	}
	return prefixMatch
}
