package classifier

import (
	"regexp"
	"strings"
)

var disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\-?!.]`)

// Preprocess collapses whitespace, lowercases and strips everything except
// word characters, whitespace, hyphens, question marks, exclamation marks and
// periods. The result may be empty.
func Preprocess(query string) string {
	query = strings.Join(strings.Fields(query), " ")
	query = strings.ToLower(query)
	return disallowedChars.ReplaceAllString(query, "")
}
