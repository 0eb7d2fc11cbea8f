package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ada@example.com",
		"a@b.co",
		"first.last+tag@sub.example.org",
		"ADA@EXAMPLE.COM",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"ada",
		"ada@example",
		"@example.com",
		"ada@",
		"ada @example.com",
		"ada@exa mple.com",
		"ada@example.com ",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}
