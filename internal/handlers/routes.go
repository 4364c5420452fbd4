package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/khushikhattar/ShortSecure/internal/middleware"
	"github.com/khushikhattar/ShortSecure/internal/ratelimit"
)

// anonymousShortenLimit throttles unauthenticated shorten requests per
// source address.
var anonymousShortenLimit = ratelimit.EndpointConfig{
	Limits:        []ratelimit.LimitConfig{{Window: 10 * time.Minute, Max: 5}},
	AnonymousOnly: true,
}

// RegisterRoutes registers every route with its auth requirement and rate
// limit configuration.
func RegisterRoutes(api huma.API, auth *AuthHandler, urls *URLHandler, users *UserHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Summary:       "Register account",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, auth.Register)

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in",
		Description: "Issues an access/refresh pair, set as httpOnly cookies.",
		Tags:        []string{"Auth"},
	}, auth.Login)

	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/auth/logout",
		Summary:     "Log out current device",
		Tags:        []string{"Auth"},
		Metadata: map[string]any{
			middleware.AuthMetadataKey: middleware.AuthRequired,
		},
	}, auth.Logout)

	huma.Register(api, huma.Operation{
		OperationID: "logout-all",
		Method:      http.MethodPost,
		Path:        "/auth/logout-all",
		Summary:     "Log out all devices",
		Tags:        []string{"Auth"},
		Metadata: map[string]any{
			middleware.AuthMetadataKey: middleware.AuthRequired,
		},
	}, auth.LogoutAll)

	huma.Register(api, huma.Operation{
		OperationID: "refresh",
		Method:      http.MethodPost,
		Path:        "/auth/refresh",
		Summary:     "Rotate credential pair",
		Description: "Exchanges the refresh cookie for a new access/refresh pair; the old refresh token becomes invalid.",
		Tags:        []string{"Auth"},
	}, auth.Refresh)

	huma.Register(api, huma.Operation{
		OperationID: "me",
		Method:      http.MethodGet,
		Path:        "/auth/me",
		Summary:     "Current identity",
		Tags:        []string{"Auth"},
		Metadata: map[string]any{
			middleware.AuthMetadataKey: middleware.AuthRequired,
		},
	}, auth.Me)

	huma.Register(api, huma.Operation{
		OperationID:   "shorten",
		Method:        http.MethodPost,
		Path:          "/url/shorten",
		Summary:       "Create short URL",
		Description:   "Creates an alias for the given URL; anonymous callers are rate limited.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusCreated,
		Metadata: map[string]any{
			middleware.AuthMetadataKey: middleware.AuthOptional,
			ratelimit.MetadataKey:      anonymousShortenLimit,
		},
	}, urls.Shorten)

	huma.Register(api, huma.Operation{
		OperationID: "redirect",
		Method:      http.MethodGet,
		Path:        "/url/s/{shortUrl}",
		Summary:     "Resolve and redirect",
		Description: "Redirects to the destination URL, incrementing the click counter.",
		Tags:        []string{"URLs"},
	}, urls.Redirect)

	huma.Register(api, huma.Operation{
		OperationID: "stats",
		Method:      http.MethodGet,
		Path:        "/url/stats/{slug}",
		Summary:     "Short URL statistics",
		Tags:        []string{"URLs"},
	}, urls.Stats)

	huma.Register(api, huma.Operation{
		OperationID: "my-urls",
		Method:      http.MethodGet,
		Path:        "/url/my",
		Summary:     "List caller's aliases",
		Tags:        []string{"URLs"},
		Metadata: map[string]any{
			middleware.AuthMetadataKey: middleware.AuthRequired,
		},
	}, urls.My)

	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPatch,
		Path:        "/user/update",
		Summary:     "Update profile",
		Tags:        []string{"Users"},
		Metadata: map[string]any{
			middleware.AuthMetadataKey: middleware.AuthRequired,
		},
	}, users.UpdateProfile)

	huma.Register(api, huma.Operation{
		OperationID: "update-password",
		Method:      http.MethodPatch,
		Path:        "/user/update-password",
		Summary:     "Change password",
		Description: "Replaces the password after verifying the current one; all sessions are revoked.",
		Tags:        []string{"Users"},
		Metadata: map[string]any{
			middleware.AuthMetadataKey: middleware.AuthRequired,
		},
	}, users.UpdatePassword)

	huma.Register(api, huma.Operation{
		OperationID: "user-urls",
		Method:      http.MethodGet,
		Path:        "/user/urls",
		Summary:     "List caller's aliases",
		Tags:        []string{"Users"},
		Metadata: map[string]any{
			middleware.AuthMetadataKey: middleware.AuthRequired,
		},
	}, users.ListURLs)
}
