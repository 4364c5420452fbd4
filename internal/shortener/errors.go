package shortener

import "errors"

var (
	// ErrNotFound indicates the requested code has no stored mapping.
	ErrNotFound = errors.New("short url not found")

	// ErrAliasTaken indicates the code already maps to another URL. For
	// caller-chosen slugs this is surfaced as a conflict; for generated
	// codes it triggers a bounded regenerate-and-retry.
	ErrAliasTaken = errors.New("alias already in use")

	// ErrExhausted indicates the generation retry budget was spent without
	// finding a free code.
	ErrExhausted = errors.New("could not allocate a unique alias")

	// ErrInvalidURL indicates the destination is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid url")

	// ErrInvalidSlug indicates the requested slug violates length or charset
	// bounds.
	ErrInvalidSlug = errors.New("invalid slug format")
)
