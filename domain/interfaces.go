package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations. Every mutation is a
// single-document atomic update on the store; read-modify-write across two
// calls is never required for OTP or refresh-token state.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*User, error)
	SetVerifyOTP(ctx context.Context, id, otpHash string, expiresAt time.Time) error
	ClearVerifyOTP(ctx context.Context, id string) error
	MarkVerified(ctx context.Context, id string) error
	SetResetOTP(ctx context.Context, id, otpHash string, expiresAt time.Time) error
	ClearResetOTP(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetRefreshToken(ctx context.Context, id, token string) error
	ClearRefreshToken(ctx context.Context, id string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Login(ctx context.Context, req AuthRequest) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, userID string) error
	VerifyEmailOTP(ctx context.Context, email, code string) (VerificationStatus, error)
	ResendEmailOTP(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	GetUserProfile(ctx context.Context, userID string) (*User, error)
}

// OTP purposes scope throttle and attempt state per flow, so a pending
// verification code never blocks a password reset.
const (
	OTPPurposeVerify = "verify"
	OTPPurposeReset  = "reset"
)

// OTPService defines one-time passcode operations
type OTPService interface {
	IssueVerify(ctx context.Context, user *User) error
	VerifyEmail(ctx context.Context, user *User, code string) error
	IssueReset(ctx context.Context, user *User) error
	VerifyReset(ctx context.Context, user *User, code string) error
	CanResend(ctx context.Context, email, purpose string) (bool, int64, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations. Access and refresh tokens are
// signed with distinct secrets and carry distinct TTLs.
type TokenService interface {
	GenerateAccessToken(user *User) (string, error)
	GenerateRefreshToken(user *User) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendEmail(to, subject, htmlBody string) error
	SendSMS(to, message string) error
}

// AvatarUploader accepts a locally staged file and returns its hosted URL
type AvatarUploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
