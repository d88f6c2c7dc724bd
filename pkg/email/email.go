package email

import "strings"

// Sender rezervasyon onay e-postasını gönderen sağlayıcı yüzüdür.
// Resend ve SES implementasyonları aynı düz metin gövdeyi üretir.
type Sender interface {
	SendBookingConfirmation(to, meetingURL, displayTime, timezone string) error
}

const confirmationSubject = "Your Zoom session is confirmed"

func confirmationBody(meetingURL, displayTime, timezone string) string {
	lines := []string{
		"Your Zoom session is confirmed.",
		"",
		"Time: " + displayTime + " (" + timezone + ")",
		"Join link: " + meetingURL,
		"",
		"See you soon!",
	}
	return strings.Join(lines, "\n")
}
