package images

import (
	"fmt"
	"math/rand"
	"net/url"
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// KeywordFallback turns a dish title into a resolvable stock-photo URI.
// Construction is deterministic apart from the cache-busting token; it
// never fails, so a draft always has a publishable image available.
func KeywordFallback(query string) string {
	cleaned := whitespace.ReplaceAllString(strings.TrimSpace(query), ",")
	encoded := url.QueryEscape(cleaned)
	return fmt.Sprintf(
		"https://loremflickr.com/800/800/food,%s/all?sig=%d",
		encoded,
		rand.Intn(1000),
	)
}
