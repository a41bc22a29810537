// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe markup from user-generated content
// before it is persisted. Forum posts may carry light formatting; comments
// and titles are plain text.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// Sanitize keeps user-generated-content-safe HTML (paragraphs, emphasis,
// safe links) and removes scripts, event handlers, and javascript: URLs.
func Sanitize(s string) string {
	return ugcPolicy.Sanitize(s)
}

// SanitizeText strips all markup, leaving plain text. Used for fields that
// are never rendered as HTML (titles, comments, tags).
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
