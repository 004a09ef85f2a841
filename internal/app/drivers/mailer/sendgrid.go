package mailer

import (
	"clinic-booking-service/internal/app/config"
	"log"

	"github.com/sendgrid/sendgrid-go"
)

// NewSendGridClient returns nil when no API key is configured.
func NewSendGridClient(driverConfig *config.DriverConfig) *sendgrid.Client {
	if driverConfig.SendGrid.ApiKey == "" {
		log.Println("SendGrid API key not set, falling back to SMTP")
		return nil
	}
	log.Println("Successfully initialized sendgrid client")
	return sendgrid.NewSendClient(driverConfig.SendGrid.ApiKey)
}
