package notifications

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// NotificationServiceImpl implements domain.NotificationService with SMTP
// email delivery and Twilio SMS delivery
type NotificationServiceImpl struct {
	dialer       *gomail.Dialer
	sender       string
	twilioClient *twilio.RestClient
	fromNumber   string
}

// NewNotificationService creates a notification service. Either channel may
// be left unconfigured; sends on an unconfigured channel are logged instead.
func NewNotificationService(smtpHost string, smtpPort int, smtpUser, smtpPass, sender, twilioSID, twilioToken, fromNumber string) domain.NotificationService {
	svc := &NotificationServiceImpl{
		sender:     sender,
		fromNumber: fromNumber,
	}

	if smtpHost != "" {
		svc.dialer = gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	}

	if twilioSID != "" {
		svc.twilioClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: twilioSID,
			Password: twilioToken,
		})
	}

	return svc
}

// SendEmail implements domain.NotificationService
func (n *NotificationServiceImpl) SendEmail(to, subject, htmlBody string) error {
	if n.dialer == nil {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, htmlBody)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendSMS implements domain.NotificationService
func (n *NotificationServiceImpl) SendSMS(to, message string) error {
	if n.twilioClient == nil || n.fromNumber == "" {
		fmt.Printf("[MOCK SMS] To: %s, Message: %s\n", to, message)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.fromNumber)
	params.SetBody(message)

	_, err := n.twilioClient.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}
