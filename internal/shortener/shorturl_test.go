package shortener_test

import (
	"testing"

	"github.com/khushikhattar/ShortSecure/internal/shortener"
	"github.com/stretchr/testify/assert"
)

func TestValidSlug(t *testing.T) {
	valid := []string{"mylink", "my-link", "my_link_2", "ABCDE", "abcdefghijklmno"}
	for _, slug := range valid {
		assert.True(t, shortener.ValidSlug(slug), "expected %q to be valid", slug)
	}

	invalid := []string{"", "abcd", "abcdefghijklmnop", "my link", "my/link", "dész"}
	for _, slug := range invalid {
		assert.False(t, shortener.ValidSlug(slug), "expected %q to be invalid", slug)
	}
}

func TestValidLongURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://example.com/a/b?c=d#e",
		"https://sub.example.com:8443/path",
	}
	for _, raw := range valid {
		assert.True(t, shortener.ValidLongURL(raw), "expected %q to be valid", raw)
	}

	invalid := []string{
		"",
		"example.com",
		"ftp://example.com/file",
		"https://",
		"/relative/path",
		"://bad",
	}
	for _, raw := range invalid {
		assert.False(t, shortener.ValidLongURL(raw), "expected %q to be invalid", raw)
	}
}
