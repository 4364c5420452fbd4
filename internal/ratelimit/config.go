package ratelimit

import "github.com/danielgtaylor/huma/v2"

// MetadataKey is the key used to store rate limit config in operation
// metadata.
const MetadataKey = "rateLimit"

// EndpointConfig defines per-endpoint rate limit configuration, attached to
// Huma operations via the Metadata field. Endpoints without a config are not
// rate limited.
type EndpointConfig struct {
	// Limits defines the windows enforced for this endpoint. Every limit
	// must hold for a request to pass.
	Limits []LimitConfig

	// AnonymousOnly restricts enforcement to requests without an
	// authenticated identity.
	AnonymousOnly bool
}

// GetEndpointConfig extracts the EndpointConfig from operation metadata, if
// present.
func GetEndpointConfig(ctx huma.Context) *EndpointConfig {
	op := ctx.Operation()
	if op == nil || op.Metadata == nil {
		return nil
	}

	cfg, ok := op.Metadata[MetadataKey].(EndpointConfig)
	if !ok {
		return nil
	}

	return &cfg
}
