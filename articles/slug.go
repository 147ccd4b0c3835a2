package articles

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugSpaces  = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives the URL slug from a Portuguese title: decompose and strip
// diacritics, lowercase, drop everything but letters, digits, spaces and
// hyphens, then collapse runs into single hyphens. The result must stay
// byte-identical to the site's historical slugs, so the transform chain is
// fixed.
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, title)

	result = strings.ToLower(result)
	result = slugInvalid.ReplaceAllString(result, "")
	result = slugSpaces.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// FallbackSlug generates a unique placeholder when the title yields an empty
// slug (e.g. a title of only punctuation or non-Latin script).
func FallbackSlug(now time.Time, random string) string {
	return fmt.Sprintf("artigo-%d-%s", now.UnixMilli(), random)
}
