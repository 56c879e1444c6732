package sanitize

import (
	"html"
	"strings"
)

// MaxLength bounds every sanitized value. Escape sequences count against it,
// so a stored name is never longer than this even after escaping.
const MaxLength = 50

// DisplayName normalizes free-form user input before it is stored or broadcast.
// Surrounding whitespace is dropped and HTML-special characters are escaped.
// The result is truncated to MaxLength without ever splitting an escape
// sequence in half.
func DisplayName(s string) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	for _, r := range s {
		esc := html.EscapeString(string(r))
		if b.Len()+len(esc) > MaxLength {
			break
		}
		b.WriteString(esc)
	}

	return strings.TrimSpace(b.String())
}
