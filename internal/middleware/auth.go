package middleware

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

// AuthMetadataKey is the operation metadata key declaring the endpoint's
// authentication requirement.
const AuthMetadataKey = "auth"

// Authentication requirement values for AuthMetadataKey.
const (
	// AuthRequired rejects requests without a valid access token.
	AuthRequired = "required"
	// AuthOptional resolves an identity when a valid token is present and
	// passes anonymous requests through.
	AuthOptional = "optional"
)

// AccessTokenCookie is the cookie carrying the access token for browser
// flows.
const AccessTokenCookie = "accessToken"

// AccessVerifier statelessly validates an access token and returns the
// account it identifies.
type AccessVerifier interface {
	Verify(accessToken string) (uuid.UUID, error)
}

// Authenticator returns a Huma middleware that resolves the caller identity
// from the access token (httpOnly cookie or Authorization bearer header) and
// stores it in the request context. Operations opt in via AuthMetadataKey;
// AuthRequired operations are rejected with 401 when no valid token is
// presented.
func Authenticator(api huma.API, verifier AccessVerifier) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		requirement := authRequirement(ctx)

		token := extractAccessToken(ctx)
		if token == "" {
			if requirement == AuthRequired {
				_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "unauthorized: no token provided")

				return
			}

			next(ctx)

			return
		}

		accountID, err := verifier.Verify(token)
		if err != nil {
			if requirement == AuthRequired {
				_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid token or session expired")

				return
			}

			next(ctx)

			return
		}

		ctx = huma.WithContext(ctx, ContextWithAccountID(ctx.Context(), accountID))

		next(ctx)
	}
}

func authRequirement(ctx huma.Context) string {
	op := ctx.Operation()
	if op == nil || op.Metadata == nil {
		return ""
	}

	requirement, _ := op.Metadata[AuthMetadataKey].(string)

	return requirement
}

func extractAccessToken(ctx huma.Context) string {
	for _, cookie := range huma.ReadCookies(ctx) {
		if cookie.Name == AccessTokenCookie {
			return cookie.Value
		}
	}

	if auth := ctx.Header("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return ""
}
