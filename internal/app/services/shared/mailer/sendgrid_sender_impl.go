package mailer

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type sendGridClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type sendGridSender struct {
	client sendGridClient
	Log    *zap.Logger
}

func NewSendGridSender(client sendGridClient, logger *zap.Logger) contracts.EmailSender {
	return &sendGridSender{
		client: client,
		Log:    logger,
	}
}

func (s *sendGridSender) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	requestID := utils.GetRequestID(ctx)

	fromName := request.FromName
	if fromName == "" {
		fromName = constvars.EmailDefaultSenderName
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(fromName, request.From))
	message.Subject = request.Subject

	personalization := mail.NewPersonalization()
	for _, to := range request.To {
		personalization.AddTos(mail.NewEmail("", to))
	}
	for _, cc := range request.Cc {
		personalization.AddCCs(mail.NewEmail("", cc))
	}
	for _, bcc := range request.Bcc {
		personalization.AddBCCs(mail.NewEmail("", bcc))
	}
	message.AddPersonalizations(personalization)

	plainText := request.PlainText
	if plainText == "" {
		plainText = request.Subject
	}
	message.AddContent(
		mail.NewContent("text/plain", plainText),
		mail.NewContent("text/html", request.HTMLCode),
	)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return exceptions.ErrSendGridSendEmail(err)
	}
	if response.StatusCode >= 400 {
		return exceptions.ErrSendGridSendEmail(fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body))
	}

	s.Log.Info("sendGridSender.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingEmailKey, request.To),
		zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
	)
	return nil
}
