package slug

import (
	"strings"

	gslug "github.com/gosimple/slug"
)

// Make lowercases and hyphenates input. Empty results collapse to "untitled"
// so the value is always usable as a file name or element id.
func Make(input string) string {
	s := gslug.Make(strings.TrimSpace(input))
	if s == "" {
		return "untitled"
	}
	return s
}

// Join slugs each part and joins them with sep, skipping empty parts.
func Join(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, Make(p))
	}
	return strings.Join(out, sep)
}
