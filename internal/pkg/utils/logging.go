package utils

import (
	"clinic-booking-service/internal/pkg/constvars"
	"context"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

// GetRequesterEmail returns the verified identity placed by the authentication middleware.
func GetRequesterEmail(ctx context.Context) string {
	if email, ok := ctx.Value(constvars.CONTEXT_REQUESTER_EMAIL_KEY).(string); ok {
		return email
	}
	return ""
}
