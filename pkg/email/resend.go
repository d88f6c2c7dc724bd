package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type ResendService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewResendService(apiKey, from, fromName string, logger *zap.Logger) *ResendService {
	return &ResendService{
		client:   resend.NewClient(apiKey),
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

func (s *ResendService) SendBookingConfirmation(to, meetingURL, displayTime, timezone string) error {
	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: confirmationSubject,
		Text:    confirmationBody(meetingURL, displayTime, timezone),
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send booking confirmation",
			zap.String("to", to), zap.Error(err))
		return fmt.Errorf("resend: %w", err)
	}

	s.logger.Info("booking confirmation sent",
		zap.String("to", to), zap.String("email_id", resp.Id))
	return nil
}
