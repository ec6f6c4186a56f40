package mocks

import (
	"context"
	"time"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc                func(ctx context.Context, user *domain.User) error
	FindByIDFunc              func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc           func(ctx context.Context, email string) (*domain.User, error)
	FindByUsernameOrEmailFunc func(ctx context.Context, username, email string) (*domain.User, error)
	SetVerifyOTPFunc          func(ctx context.Context, id, otpHash string, expiresAt time.Time) error
	ClearVerifyOTPFunc        func(ctx context.Context, id string) error
	MarkVerifiedFunc          func(ctx context.Context, id string) error
	SetResetOTPFunc           func(ctx context.Context, id, otpHash string, expiresAt time.Time) error
	ClearResetOTPFunc         func(ctx context.Context, id string) error
	UpdatePasswordFunc        func(ctx context.Context, id, passwordHash string) error
	SetRefreshTokenFunc       func(ctx context.Context, id, token string) error
	ClearRefreshTokenFunc     func(ctx context.Context, id string) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByUsernameOrEmail finds a user matching either identifier
func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	if m.FindByUsernameOrEmailFunc != nil {
		return m.FindByUsernameOrEmailFunc(ctx, username, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// SetVerifyOTP stores the verification OTP hash and expiry
func (m *MockUserRepository) SetVerifyOTP(ctx context.Context, id, otpHash string, expiresAt time.Time) error {
	if m.SetVerifyOTPFunc != nil {
		return m.SetVerifyOTPFunc(ctx, id, otpHash, expiresAt)
	}
	// Default behavior: success
	return nil
}

// ClearVerifyOTP clears the verification OTP fields
func (m *MockUserRepository) ClearVerifyOTP(ctx context.Context, id string) error {
	if m.ClearVerifyOTPFunc != nil {
		return m.ClearVerifyOTPFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// MarkVerified marks the account verified and clears OTP state
func (m *MockUserRepository) MarkVerified(ctx context.Context, id string) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// SetResetOTP stores the reset OTP hash and expiry
func (m *MockUserRepository) SetResetOTP(ctx context.Context, id, otpHash string, expiresAt time.Time) error {
	if m.SetResetOTPFunc != nil {
		return m.SetResetOTPFunc(ctx, id, otpHash, expiresAt)
	}
	// Default behavior: success
	return nil
}

// ClearResetOTP clears the reset OTP fields
func (m *MockUserRepository) ClearResetOTP(ctx context.Context, id string) error {
	if m.ClearResetOTPFunc != nil {
		return m.ClearResetOTPFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// UpdatePassword replaces the password hash and clears reset state
func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	// Default behavior: success
	return nil
}

// SetRefreshToken stores the current refresh token
func (m *MockUserRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	if m.SetRefreshTokenFunc != nil {
		return m.SetRefreshTokenFunc(ctx, id, token)
	}
	// Default behavior: success
	return nil
}

// ClearRefreshToken clears the stored refresh token
func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, id string) error {
	if m.ClearRefreshTokenFunc != nil {
		return m.ClearRefreshTokenFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
