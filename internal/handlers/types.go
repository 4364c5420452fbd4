package handlers

import (
	"net/http"
	"time"
)

// AccountPayload is the public projection of an account. Password hashes and
// refresh tokens never appear in responses.
type AccountPayload struct {
	ID       string  `doc:"Account identifier"  json:"id"`
	Name     string  `doc:"Display name"        json:"name"`
	Username string  `doc:"Unique username"     json:"username"`
	Email    string  `doc:"Unique email"        json:"email"`
	Avatar   *string `doc:"Avatar reference"    json:"avatar,omitempty"`
}

// URLPayload is the public projection of a shortened URL.
type URLPayload struct {
	ShortURL  string    `doc:"The short code"          json:"short_url"`
	LongURL   string    `doc:"The destination URL"     json:"long_url"`
	Clicks    int64     `doc:"Resolution count"        json:"clicks"`
	CreatedAt time.Time `doc:"Creation timestamp"      json:"createdAt"`
}

// RegisterRequest is the request body for creating an account.
type RegisterRequest struct {
	Body struct {
		Name            string `doc:"Display name"              json:"name"            minLength:"1"`
		Email           string `doc:"Unique email"              format:"email"         json:"email"`
		Address         string `doc:"Postal address"            json:"address"`
		Username        string `doc:"Unique username"           json:"username"        maxLength:"12"   minLength:"6" pattern:"^[a-zA-Z0-9#@_]+$"`
		Password        string `doc:"Password"                  json:"password"        minLength:"6"`
		ConfirmPassword string `doc:"Password confirmation"     json:"confirmpassword" minLength:"6"`
		Avatar          string `doc:"Optional avatar reference" json:"avatar,omitempty" required:"false"`
	}
}

// RegisterResponse is the response for a successful registration.
type RegisterResponse struct {
	Body struct {
		Message string         `json:"message"`
		User    AccountPayload `json:"user"`
	}
}

// LoginRequest is the request body for issuing a credential pair. Either
// username or email must be present.
type LoginRequest struct {
	Body struct {
		Username string `doc:"Username"         json:"username,omitempty" required:"false"`
		Email    string `doc:"Email"            json:"email,omitempty"    required:"false"`
		Password string `doc:"Password"         json:"password"           minLength:"1"`
	}
}

// LoginResponse sets the credential cookies and returns the access token in
// the body.
type LoginResponse struct {
	SetCookies []http.Cookie `header:"Set-Cookie"`
	Body       struct {
		Message string         `json:"message"`
		User    AccountPayload `json:"user"`
		Token   string         `json:"token"`
	}
}

// RefreshRequest carries the refresh token cookie.
type RefreshRequest struct {
	RefreshToken string `cookie:"refreshToken" doc:"Current refresh token" required:"false"`
}

// RefreshResponse rotates the credential cookies and returns the new access
// token.
type RefreshResponse struct {
	SetCookies []http.Cookie `header:"Set-Cookie"`
	Body       struct {
		Message     string `json:"message"`
		AccessToken string `json:"accessToken"`
	}
}

// LogoutRequest carries the refresh token cookie to revoke.
type LogoutRequest struct {
	RefreshToken string `cookie:"refreshToken" doc:"Refresh token to revoke" required:"false"`
}

// LogoutResponse clears the credential cookies.
type LogoutResponse struct {
	SetCookies []http.Cookie `header:"Set-Cookie"`
	Body       struct {
		Message string `json:"message"`
	}
}

// MeResponse returns the caller identity.
type MeResponse struct {
	Body struct {
		User AccountPayload `json:"user"`
	}
}

// ShortenRequest is the request body for creating a short URL.
type ShortenRequest struct {
	Body struct {
		LongURL string `doc:"The URL to shorten"                example:"https://example.com/very/long/path" json:"long_url"`
		Slug    string `doc:"Optional caller-chosen short code" example:"my-link"                            json:"slug,omitempty" required:"false"`
	}
}

// ShortenResponse is the response for a successfully created short URL.
type ShortenResponse struct {
	Body struct {
		Message  string `json:"message"`
		ShortURL string `doc:"The short code"      json:"short_url"`
		LongURL  string `doc:"The destination URL" json:"long_url"`
		Clicks   int64  `doc:"Resolution count"    json:"clicks"`
	}
}

// RedirectRequest is the request for resolving a short URL.
type RedirectRequest struct {
	ShortURL string `doc:"The short code" example:"abc123" maxLength:"15" minLength:"5" path:"shortUrl"`
}

// RedirectResponse redirects to the destination URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The destination URL" header:"Location"`
	}
}

// StatsRequest is the request for short URL statistics.
type StatsRequest struct {
	Slug string `doc:"The short code" maxLength:"15" minLength:"5" path:"slug"`
}

// StatsResponse returns the stored record without incrementing clicks.
type StatsResponse struct {
	Body URLPayload
}

// ListURLsResponse returns the caller's aliases.
type ListURLsResponse struct {
	Body struct {
		URLs []URLPayload `json:"urls"`
	}
}

// UpdateProfileRequest is the request body for a partial profile update.
type UpdateProfileRequest struct {
	Body struct {
		NewName     string `doc:"New display name" json:"newname,omitempty"     required:"false"`
		NewUsername string `doc:"New username"     json:"newusername,omitempty" maxLength:"12" minLength:"6" required:"false"`
		NewEmail    string `doc:"New email"        format:"email"               json:"newemail,omitempty"    required:"false"`
		NewAvatar   string `doc:"New avatar"       json:"newavatar,omitempty"   required:"false"`
	}
}

// UpdateProfileResponse returns the updated account.
type UpdateProfileResponse struct {
	Body struct {
		Message string         `json:"message"`
		User    AccountPayload `json:"user"`
	}
}

// UpdatePasswordRequest is the request body for a password change.
type UpdatePasswordRequest struct {
	Body struct {
		OldPassword string `doc:"Current password" json:"oldpassword" minLength:"6"`
		NewPassword string `doc:"New password"     json:"newpassword" minLength:"6"`
	}
}

// MessageResponse is a bare acknowledgment.
type MessageResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}
