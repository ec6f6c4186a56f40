package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrAccountNotVerified = errors.New("account email not verified")
	ErrAlreadyVerified    = errors.New("account already verified")
)

// OTP errors
var (
	ErrOTPExpired         = errors.New("otp has expired")
	ErrOTPInvalid         = errors.New("invalid otp code")
	ErrOTPNotFound        = errors.New("no otp pending")
	ErrOTPMaxAttempts     = errors.New("maximum otp attempts exceeded")
	ErrOTPResendThrottled = errors.New("otp resend throttled")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenReused    = errors.New("refresh token is expired or already used")
)
