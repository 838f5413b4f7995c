package handlers

import "net/http"

// isHTMX reports whether the request came from an htmx swap, either a
// direct hx-request or a boosted navigation. Those requests get partial
// markup; everything else gets the full document shell.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}
