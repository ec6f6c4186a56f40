package mocks

import (
	"context"
	"time"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, in domain.RegisterInput) (*domain.User, error)
	LoginFunc          func(ctx context.Context, req domain.AuthRequest) (*domain.AuthResult, error)
	RefreshTokenFunc   func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc         func(ctx context.Context, userID string) error
	VerifyEmailOTPFunc func(ctx context.Context, email, code string) (domain.VerificationStatus, error)
	ResendEmailOTPFunc func(ctx context.Context, email string) error
	ForgotPasswordFunc func(ctx context.Context, email string) error
	VerifyResetOTPFunc func(ctx context.Context, email, code string) error
	ResetPasswordFunc  func(ctx context.Context, email, code, newPassword string) error
	GetUserProfileFunc func(ctx context.Context, userID string) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	// Default behavior: return a mock user
	return &domain.User{
		ID:           "user123",
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: "hashed_" + in.Password,
		AvatarURL:    in.AvatarURL,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// Login authenticates a user and returns auth result
func (m *MockAuthService) Login(ctx context.Context, req domain.AuthRequest) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	// Default behavior: return successful auth result
	return &domain.AuthResult{
		User: &domain.User{
			ID:                "user123",
			Username:          "wasif",
			Email:             "wasif@example.com",
			IsAccountVerified: true,
		},
		AccessToken:  "mock_access_token",
		RefreshToken: "mock_refresh_token",
		ExpiresIn:    900,
	}, nil
}

// RefreshToken rotates a refresh token
func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	// Default behavior: return rotated tokens
	return &domain.AuthResult{
		User: &domain.User{
			ID:                "user123",
			Username:          "wasif",
			Email:             "wasif@example.com",
			IsAccountVerified: true,
		},
		AccessToken:  "rotated_access_token",
		RefreshToken: "rotated_refresh_token",
		ExpiresIn:    900,
	}, nil
}

// Logout clears the user's session state
func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}

// VerifyEmailOTP verifies an email OTP code
func (m *MockAuthService) VerifyEmailOTP(ctx context.Context, email, code string) (domain.VerificationStatus, error) {
	if m.VerifyEmailOTPFunc != nil {
		return m.VerifyEmailOTPFunc(ctx, email, code)
	}
	// Default behavior: verified
	return domain.VerificationVerified, nil
}

// ResendEmailOTP re-issues a verification OTP
func (m *MockAuthService) ResendEmailOTP(ctx context.Context, email string) error {
	if m.ResendEmailOTPFunc != nil {
		return m.ResendEmailOTPFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// ForgotPassword issues a password reset OTP
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// VerifyResetOTP checks a password reset OTP without consuming it
func (m *MockAuthService) VerifyResetOTP(ctx context.Context, email, code string) error {
	if m.VerifyResetOTPFunc != nil {
		return m.VerifyResetOTPFunc(ctx, email, code)
	}
	// Default behavior: success
	return nil
}

// ResetPassword sets a new password after OTP verification
func (m *MockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, code, newPassword)
	}
	// Default behavior: success
	return nil
}

// GetUserProfile fetches a user by ID
func (m *MockAuthService) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	// Default behavior: return a mock user
	return &domain.User{
		ID:                userID,
		Username:          "wasif",
		Email:             "wasif@example.com",
		IsAccountVerified: true,
	}, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
