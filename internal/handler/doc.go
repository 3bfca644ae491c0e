// Package handler provides the HTTP endpoints of the ClubSphere API.
//
// Each handler struct wraps one service and follows the same pattern:
// the auth middleware establishes identity, the handler parses the
// request, and the service decides access against the freshly loaded
// club. Successful responses use the {"data": ...} envelope; errors use
// RFC 9457 Problem Details.
package handler
