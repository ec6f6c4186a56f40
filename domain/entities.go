package domain

import "time"

// User represents a registered account in the booking system
type User struct {
	ID                 string
	Username           string
	Email              string
	Phone              string
	PasswordHash       string
	AvatarURL          string
	IsAccountVerified  bool
	VerifyOTPHash      string
	VerifyOTPExpiresAt time.Time
	ResetOTPHash       string
	ResetOTPExpiresAt  time.Time
	RefreshToken       string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasPendingVerifyOTP reports whether a verification code is outstanding
func (u *User) HasPendingVerifyOTP() bool {
	return u.VerifyOTPHash != "" && !u.VerifyOTPExpiresAt.IsZero()
}

// RegisterInput carries the fields required to create an account
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Phone     string
	AvatarURL string
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	UsernameOrEmail string
	Password        string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// VerificationStatus is the tagged outcome of an email verification attempt.
// "Already verified" is a terminal non-error state, not a failure.
type VerificationStatus int

const (
	VerificationVerified VerificationStatus = iota + 1
	VerificationAlreadyVerified
)

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
