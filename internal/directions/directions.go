// Package directions builds map-service deep links between two named places.
package directions

import (
	"net/url"
	"strings"

	"tabi/internal/model"
)

const baseURL = "https://www.google.com/maps/dir/"

// Link returns a directions URL from origin to destination. Both names are
// free text and are escaped independently, so commas, slashes and spaces in
// a place name never split or merge path segments.
func Link(origin, destination string) string {
	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteString(url.PathEscape(origin))
	b.WriteByte('/')
	b.WriteString(url.PathEscape(destination))
	return b.String()
}

// ForActivity returns the link for travelling to an activity from wherever
// the group was before it. No link is offered when either end is unknown.
func ForActivity(a model.Activity) (string, bool) {
	from := strings.TrimSpace(a.PreviousLocation)
	to := strings.TrimSpace(a.Location)
	if from == "" || to == "" {
		return "", false
	}
	return Link(from, to), true
}
