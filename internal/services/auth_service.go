package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MuhammadWasif123/hotel-backend/domain"
	"github.com/MuhammadWasif123/hotel-backend/internal/infrastructure/notifications"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	otpSvc          domain.OTPService
	notificationSvc domain.NotificationService
	accessTTL       time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	notificationSvc domain.NotificationService,
	accessTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		otpSvc:          otpSvc,
		notificationSvc: notificationSvc,
		accessTTL:       accessTTL,
	}
}

// Register implements domain.AuthService. The avatar has already been
// uploaded by the time this runs; in.AvatarURL points at the hosted copy.
func (s *AuthServiceImpl) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	username := strings.ToLower(in.Username)

	existingUser, err := s.userRepo.FindByUsernameOrEmail(ctx, username, in.Email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hashedPassword,
		AvatarURL:    in.AvatarURL,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == domain.ErrUserAlreadyExists {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	welcome := notifications.WelcomeEmailBody(user.Email)
	if err := s.notificationSvc.SendEmail(user.Email, notifications.WelcomeSubject, welcome); err != nil {
		return nil, fmt.Errorf("failed to send welcome email: %w", err)
	}

	if err := s.otpSvc.IssueVerify(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to issue verification OTP: %w", err)
	}

	return user, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, req domain.AuthRequest) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByUsernameOrEmail(ctx, strings.ToLower(req.UsernameOrEmail), req.UsernameOrEmail)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if !user.IsAccountVerified {
		return nil, domain.ErrAccountNotVerified
	}

	if !s.passwordSvc.Verify(user.PasswordHash, req.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, user)
}

// RefreshToken implements domain.AuthService. The incoming token must match
// the single stored slot; anything else is treated as reuse of a superseded
// token and rejected.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, domain.ErrTokenReused
	}

	return s.issueTokenPair(ctx, user)
}

// issueTokenPair mints a fresh access+refresh pair and rotates the stored
// refresh-token slot
func (s *AuthServiceImpl) issueTokenPair(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	accessToken, err := s.tokenSvc.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	user.RefreshToken = refreshToken

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

// VerifyEmailOTP implements domain.AuthService. An already-verified account
// is a terminal success, not an error.
func (s *AuthServiceImpl) VerifyEmailOTP(ctx context.Context, email, code string) (domain.VerificationStatus, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return 0, domain.ErrUserNotFound
	}

	if user.IsAccountVerified {
		return domain.VerificationAlreadyVerified, nil
	}

	if err := s.otpSvc.VerifyEmail(ctx, user, code); err != nil {
		return 0, err
	}

	return domain.VerificationVerified, nil
}

// ResendEmailOTP implements domain.AuthService
func (s *AuthServiceImpl) ResendEmailOTP(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if user.IsAccountVerified {
		return domain.ErrAlreadyVerified
	}

	return s.otpSvc.IssueVerify(ctx, user)
}

// ForgotPassword implements domain.AuthService
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	return s.otpSvc.IssueReset(ctx, user)
}

// VerifyResetOTP implements domain.AuthService
func (s *AuthServiceImpl) VerifyResetOTP(ctx context.Context, email, code string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	return s.otpSvc.VerifyReset(ctx, user, code)
}

// ResetPassword implements domain.AuthService. Re-checks the reset code, then
// swaps the password hash; the repository clears the reset OTP and the
// refresh-token slot in the same update.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if err := s.otpSvc.VerifyReset(ctx, user, code); err != nil {
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
