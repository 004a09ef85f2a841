package utils

import (
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"fmt"
	"html"
)

// BuildNotificationEmailPayload renders the patient email for a notification kind.
func BuildNotificationEmailPayload(fromEmail, fromName string, kind constvars.NotificationKind, booking models.Booking) (*requests.EmailPayload, error) {
	greetingName := booking.PatientName
	if greetingName == "" {
		greetingName = booking.Patient
	}

	var subject, body string
	switch kind {
	case constvars.NotificationKindBookingCreated:
		subject = fmt.Sprintf(constvars.EmailBookingCreatedSubjectFormat, booking.Treatment, booking.Date, booking.Slot)
		body = fmt.Sprintf(constvars.EmailBookingCreatedBodyFormat,
			html.EscapeString(greetingName),
			html.EscapeString(booking.Treatment),
			html.EscapeString(booking.Date),
			html.EscapeString(booking.Slot),
		)
	case constvars.NotificationKindPaymentConfirmed:
		subject = fmt.Sprintf(constvars.EmailPaymentConfirmedSubjectFormat, booking.Treatment, booking.Date, booking.Slot)
		body = BuildReceiptHTML(booking)
	default:
		return nil, fmt.Errorf("unknown notification kind %q", kind)
	}

	return &requests.EmailPayload{
		Subject:   subject,
		From:      fromEmail,
		FromName:  fromName,
		To:        []string{booking.Patient},
		HTMLCode:  body,
		PlainText: subject,
	}, nil
}

// BuildReceiptHTML renders the receipt archived for a paid booking.
func BuildReceiptHTML(booking models.Booking) string {
	greetingName := booking.PatientName
	if greetingName == "" {
		greetingName = booking.Patient
	}
	return fmt.Sprintf(constvars.EmailPaymentConfirmedBodyFormat,
		html.EscapeString(greetingName),
		html.EscapeString(booking.Treatment),
		html.EscapeString(booking.Date),
		html.EscapeString(booking.Slot),
		html.EscapeString(booking.TransactionID),
	)
}
