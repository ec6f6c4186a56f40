package mocks

import (
	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// SentEmail records one email delivered through the mock
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// SentSMS records one SMS delivered through the mock
type SentSMS struct {
	To      string
	Message string
}

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendEmailFunc func(to, subject, htmlBody string) error
	SendSMSFunc   func(to, message string) error

	// Recorded deliveries when the default behavior runs
	Emails []SentEmail
	SMS    []SentSMS
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail sends an email notification
func (m *MockNotificationService) SendEmail(to, subject, htmlBody string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, htmlBody)
	}
	// Default behavior: record and succeed
	m.Emails = append(m.Emails, SentEmail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// SendSMS sends an SMS notification
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	// Default behavior: record and succeed
	m.SMS = append(m.SMS, SentSMS{To: to, Message: message})
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
