package handlers

import (
	"net/http"

	"github.com/khushikhattar/ShortSecure/internal/identity"
	"github.com/khushikhattar/ShortSecure/internal/middleware"
)

// RefreshTokenCookie is the cookie carrying the refresh token for browser
// flows.
const RefreshTokenCookie = "refreshToken"

func authCookie(name, value string, maxAge int) http.Cookie {
	return http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

// credentialCookies returns the httpOnly+secure cookie pair for a freshly
// minted credential pair.
func credentialCookies(pair identity.CredentialPair) []http.Cookie {
	return []http.Cookie{
		authCookie(middleware.AccessTokenCookie, pair.AccessToken, 0),
		authCookie(RefreshTokenCookie, pair.RefreshToken, 0),
	}
}

// clearedCredentialCookies expires both credential cookies. Always sent on
// logout paths, even when the token lookup fails, so a stale client cookie
// cannot wedge the client.
func clearedCredentialCookies() []http.Cookie {
	return []http.Cookie{
		authCookie(middleware.AccessTokenCookie, "", -1),
		authCookie(RefreshTokenCookie, "", -1),
	}
}
