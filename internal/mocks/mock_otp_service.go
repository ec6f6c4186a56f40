package mocks

import (
	"context"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueVerifyFunc func(ctx context.Context, user *domain.User) error
	VerifyEmailFunc func(ctx context.Context, user *domain.User, code string) error
	IssueResetFunc  func(ctx context.Context, user *domain.User) error
	VerifyResetFunc func(ctx context.Context, user *domain.User, code string) error
	CanResendFunc   func(ctx context.Context, email, purpose string) (bool, int64, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// IssueVerify issues a verification OTP for the user
func (m *MockOTPService) IssueVerify(ctx context.Context, user *domain.User) error {
	if m.IssueVerifyFunc != nil {
		return m.IssueVerifyFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// VerifyEmail checks a verification code against the user's pending OTP
func (m *MockOTPService) VerifyEmail(ctx context.Context, user *domain.User, code string) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, user, code)
	}
	// Default behavior: accept "123456" as valid OTP
	if code == "123456" {
		return nil
	}
	return domain.ErrOTPInvalid
}

// IssueReset issues a password reset OTP for the user
func (m *MockOTPService) IssueReset(ctx context.Context, user *domain.User) error {
	if m.IssueResetFunc != nil {
		return m.IssueResetFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// VerifyReset checks a reset code against the user's pending OTP
func (m *MockOTPService) VerifyReset(ctx context.Context, user *domain.User, code string) error {
	if m.VerifyResetFunc != nil {
		return m.VerifyResetFunc(ctx, user, code)
	}
	// Default behavior: accept "123456" as valid OTP
	if code == "123456" {
		return nil
	}
	return domain.ErrOTPInvalid
}

// CanResend checks if an OTP of the given purpose can be resent
func (m *MockOTPService) CanResend(ctx context.Context, email, purpose string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, email, purpose)
	}
	// Default behavior: allow resend with no wait time
	return true, 0, nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
