// ABOUTME: Owner resolution for API handlers
// ABOUTME: Maps the X-User-ID header to a library owner

package handlers

// defaultOwner is used when no X-User-ID header is supplied.
// Authentication is out of scope; single-user deployments run as "local".
const defaultOwner = "local"

// resolveOwner returns the library owner for a request
func resolveOwner(headerValue string) string {
	if headerValue == "" {
		return defaultOwner
	}
	return headerValue
}
