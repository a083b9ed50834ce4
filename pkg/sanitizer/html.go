package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

// StripHTML removes all markup from s and returns plain text. Script and
// style contents are dropped entirely; entities are decoded.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// PlainText is StripHTML followed by SingleLine, the usual treatment for
// free-text form fields such as names.
func PlainText(s string) string {
	return Apply(s, StripHTML, SingleLine)
}
