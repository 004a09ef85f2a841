package utils

import (
	"clinic-booking-service/internal/pkg/constvars"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateLockValue() string {
	return uuid.New().String()
}

func GenerateIdempotencyKey(scope string) string {
	return fmt.Sprintf("%s-%s", scope, uuid.New().String())
}

// BuildReceiptObjectKey builds the MinIO key of a payment receipt.
func BuildReceiptObjectKey(bookingID, transactionID string) string {
	safeTransactionID := strings.NewReplacer("/", "_", " ", "_").Replace(transactionID)
	return fmt.Sprintf(constvars.ReceiptObjectKeyFormat, bookingID, safeTransactionID)
}
