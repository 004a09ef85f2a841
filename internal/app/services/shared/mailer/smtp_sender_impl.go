package mailer

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/app/drivers/mailer"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpSender struct {
	Client   *mailer.SMTPClient
	Log      *zap.Logger
	sendMail sendMailFunc
}

func NewSMTPSender(client *mailer.SMTPClient, logger *zap.Logger) contracts.EmailSender {
	return &smtpSender{
		Client:   client,
		Log:      logger,
		sendMail: smtp.SendMail,
	}
}

func (s *smtpSender) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	from := request.From
	if from == "" {
		from = s.Client.EmailSender
	}

	fromHeader := from
	if request.FromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", request.FromName, from)
	}

	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat,
		fromHeader,
		strings.Join(request.To, ", "),
		request.Subject,
		request.HTMLCode,
	))
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)

	recipients := append(append(append([]string{}, request.To...), request.Cc...), request.Bcc...)
	err := s.sendMail(addr, s.Client.Auth, from, recipients, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}

	s.Log.Info("smtpSender.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Strings(constvars.LoggingEmailKey, request.To),
	)
	return nil
}
