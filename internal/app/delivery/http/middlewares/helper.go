package middlewares

import (
	"clinic-booking-service/internal/pkg/constvars"
	"net/http"
	"strings"
)

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if len(header) <= len(constvars.BearerPrefix) || !strings.EqualFold(header[:len(constvars.BearerPrefix)], constvars.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(constvars.BearerPrefix):])
}
