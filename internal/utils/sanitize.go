package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// PlainText strips any HTML markup from user-submitted text. The policy
// entity-escapes its output, so the escaping is undone afterwards: plain
// text round-trips unchanged, only tags are lost.
func PlainText(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
