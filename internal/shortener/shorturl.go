package shortener

import (
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Code represents a short URL code.
type Code string

// ShortURL represents a shortened URL entity.
type ShortURL struct {
	Code      Code
	LongURL   string
	Clicks    int64
	OwnerID   *uuid.UUID // nil for anonymous creations
	CreatedAt time.Time
}

// slugPattern bounds caller-chosen slugs: 5-15 chars from the code alphabet
// plus '-' and '_'.
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{5,15}$`)

// ValidSlug reports whether s is acceptable as a caller-chosen alias.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// ValidLongURL reports whether raw is an absolute http(s) URL.
func ValidLongURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
