package templates

import (
	"fmt"
	"regexp"
)

var (
	placeholder = regexp.MustCompile(`\$([a-zA-Z][a-zA-Z0-9_]*)`)
	marker      = regexp.MustCompile(`^<!-- TEMPLATE: [a-z]+ -->(?:\r?\n){1,2}`)
)

// Render replaces $identifier tokens with their values. Tokens without a
// value are left as they are.
func Render(text string, values map[string]any) string {
	return placeholder.ReplaceAllStringFunc(text, func(tok string) string {
		if v, ok := values[tok[1:]]; ok {
			return fmt.Sprint(v)
		}
		return tok
	})
}

// HasUnreplaced reports whether text still contains a $identifier token.
func HasUnreplaced(text string) bool {
	return placeholder.MatchString(text)
}

// Unreplaced lists the distinct tokens left in text.
func Unreplaced(text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, tok := range placeholder.FindAllString(text, -1) {
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}

// StripMarker drops the leading "<!-- TEMPLATE: name -->" line and the
// blank line after it.
func StripMarker(text string) string {
	return marker.ReplaceAllString(text, "")
}
