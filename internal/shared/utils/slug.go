package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe slug from a title: lowercase, strip
// everything that is not a letter, digit, whitespace or hyphen, turn
// whitespace runs into single hyphens and collapse hyphen runs.
// A title made entirely of stripped characters yields "".
func GenerateSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// FallbackSlug produces a slug for titles that normalize to nothing,
// e.g. titles consisting only of symbols or emoji.
func FallbackSlug() string {
	return "post-" + uuid.NewString()[:8]
}
