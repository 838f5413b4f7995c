package pages

import (
	"regexp"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// CleanText strips any markup from user-authored copy and escapes the rest.
func CleanText(value string) string {
	return templ.EscapeString(textPolicy.Sanitize(value))
}

// SafeColor accepts a hex color and falls back otherwise, so user-supplied
// values never break out of a style attribute.
func SafeColor(value, fallback string) string {
	value = strings.TrimSpace(value)
	if hexColorPattern.MatchString(value) {
		return value
	}
	return fallback
}

// SafeLink restricts hrefs to same-document anchors, site paths, and http(s).
func SafeLink(value string) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return "#"
	case strings.HasPrefix(value, "#"), strings.HasPrefix(value, "/"):
		return templ.EscapeString(value)
	case strings.HasPrefix(value, "http://"), strings.HasPrefix(value, "https://"):
		return templ.EscapeString(value)
	default:
		return "#"
	}
}

// SafeImage allows http(s) image URLs and site-relative paths.
func SafeImage(value string) string {
	value = strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(value, "/"), strings.HasPrefix(value, "http://"), strings.HasPrefix(value, "https://"):
		return templ.EscapeString(value)
	default:
		return ""
	}
}

// DefaultDash returns an em dash when the provided value is empty or whitespace.
func DefaultDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}
