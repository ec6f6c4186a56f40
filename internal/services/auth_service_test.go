package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MuhammadWasif123/hotel-backend/domain"
	"github.com/MuhammadWasif123/hotel-backend/internal/mocks"
)

func createVerifiedUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:                "64f1c0ffee0000000000abcd",
		Username:          "wasif",
		Email:             "wasif@example.com",
		Phone:             "03001234567",
		PasswordHash:      "hashed_securepassword",
		AvatarURL:         "https://cdn.example.com/avatars/wasif.png",
		IsAccountVerified: true,
		CreatedAt:         time.Now().Add(-24 * time.Hour),
		UpdatedAt:         time.Now(),
	}
}

func createAuthServiceForTest(
	userRepo *mocks.MockUserRepository,
	passwordSvc *mocks.MockPasswordService,
	tokenSvc *mocks.MockTokenService,
	otpSvc *mocks.MockOTPService,
	notificationSvc *mocks.MockNotificationService,
) domain.AuthService {
	return NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, notificationSvc, 15*time.Minute)
}

func TestAuthServiceImpl_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         domain.RegisterInput
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService, *mocks.MockOTPService, *mocks.MockNotificationService)
		expectedError error
		validateUser  func(t *testing.T, user *domain.User)
	}{
		{
			name: "successful registration",
			input: domain.RegisterInput{
				Username:  "Wasif",
				Email:     "newuser@example.com",
				Password:  "securepassword123",
				Phone:     "03001234567",
				AvatarURL: "https://cdn.example.com/avatars/a.png",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService, notificationSvc *mocks.MockNotificationService) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					user.ID = "64f1c0ffee0000000000abcd"
					user.CreatedAt = time.Now()
					user.UpdatedAt = time.Now()
					return nil
				}
			},
			expectedError: nil,
			validateUser: func(t *testing.T, user *domain.User) {
				if user == nil {
					t.Fatal("user is nil")
				}
				if user.Username != "wasif" {
					t.Errorf("expected lowercased username %q, got %q", "wasif", user.Username)
				}
				if user.Email != "newuser@example.com" {
					t.Errorf("expected email %s, got %s", "newuser@example.com", user.Email)
				}
				if user.PasswordHash != "hashed_securepassword123" {
					t.Errorf("expected password hash %s, got %s", "hashed_securepassword123", user.PasswordHash)
				}
				if user.AvatarURL != "https://cdn.example.com/avatars/a.png" {
					t.Errorf("unexpected avatar URL %s", user.AvatarURL)
				}
				if user.IsAccountVerified {
					t.Error("expected new user to be unverified")
				}
			},
		},
		{
			name: "user already exists",
			input: domain.RegisterInput{
				Username: "wasif",
				Email:    "existing@example.com",
				Password: "password123",
				Phone:    "03001234567",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService, notificationSvc *mocks.MockNotificationService) {
				userRepo.FindByUsernameOrEmailFunc = func(ctx context.Context, username, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when already exists")
				}
			},
		},
		{
			name: "password hashing fails",
			input: domain.RegisterInput{
				Username: "wasif",
				Email:    "newuser@example.com",
				Password: "password123",
				Phone:    "03001234567",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService, notificationSvc *mocks.MockNotificationService) {
				passwordSvc.HashFunc = func(password string) (string, error) {
					return "", errors.New("hashing failed")
				}
			},
			expectedError: errors.New("failed to hash password: hashing failed"),
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when password hashing fails")
				}
			},
		},
		{
			name: "user creation fails",
			input: domain.RegisterInput{
				Username: "wasif",
				Email:    "newuser@example.com",
				Password: "password123",
				Phone:    "03001234567",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService, notificationSvc *mocks.MockNotificationService) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return errors.New("database error")
				}
			},
			expectedError: errors.New("failed to create user: database error"),
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when creation fails")
				}
			},
		},
		{
			name: "duplicate key race surfaces as conflict",
			input: domain.RegisterInput{
				Username: "wasif",
				Email:    "newuser@example.com",
				Password: "password123",
				Phone:    "03001234567",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService, notificationSvc *mocks.MockNotificationService) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return domain.ErrUserAlreadyExists
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil on duplicate key")
				}
			},
		},
		{
			name: "OTP issue fails",
			input: domain.RegisterInput{
				Username: "wasif",
				Email:    "newuser@example.com",
				Password: "password123",
				Phone:    "03001234567",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService, notificationSvc *mocks.MockNotificationService) {
				otpSvc.IssueVerifyFunc = func(ctx context.Context, user *domain.User) error {
					return errors.New("SMTP unavailable")
				}
			},
			expectedError: errors.New("failed to issue verification OTP: SMTP unavailable"),
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when OTP issue fails")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			otpSvc := mocks.NewMockOTPService()
			notificationSvc := mocks.NewMockNotificationService()

			tt.setupMocks(userRepo, passwordSvc, otpSvc, notificationSvc)

			authService := createAuthServiceForTest(userRepo, passwordSvc, mocks.NewMockTokenService(), otpSvc, notificationSvc)

			user, err := authService.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error containing '%s', got '%s'", tt.expectedError.Error(), err.Error())
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
			}

			tt.validateUser(t, user)
		})
	}
}

func TestAuthServiceImpl_Register_SendsWelcomeEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	notificationSvc := mocks.NewMockNotificationService()

	userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
		user.ID = "64f1c0ffee0000000000abcd"
		return nil
	}

	authService := createAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService(), notificationSvc)

	_, err := authService.Register(context.Background(), domain.RegisterInput{
		Username: "wasif",
		Email:    "newuser@example.com",
		Password: "password123",
		Phone:    "03001234567",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(notificationSvc.Emails) != 1 {
		t.Fatalf("expected exactly one email, got %d", len(notificationSvc.Emails))
	}
	if notificationSvc.Emails[0].To != "newuser@example.com" {
		t.Errorf("welcome email sent to %s", notificationSvc.Emails[0].To)
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name            string
		usernameOrEmail string
		password        string
		setupMocks      func(*mocks.MockUserRepository, *mocks.MockPasswordService, *mocks.MockTokenService)
		expectedError   error
		validateResult  func(t *testing.T, result *domain.AuthResult)
	}{
		{
			name:            "successful login with email",
			usernameOrEmail: "wasif@example.com",
			password:        "securepassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByUsernameOrEmailFunc = func(ctx context.Context, username, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result == nil {
					t.Fatal("result is nil")
				}
				if result.AccessToken == "" || result.RefreshToken == "" {
					t.Error("expected both tokens to be set")
				}
				if result.ExpiresIn != 900 {
					t.Errorf("expected ExpiresIn 900, got %d", result.ExpiresIn)
				}
				if result.User.RefreshToken != result.RefreshToken {
					t.Error("expected refresh token slot to match issued token")
				}
			},
		},
		{
			name:            "mixed-case username still matches",
			usernameOrEmail: "WaSiF",
			password:        "securepassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByUsernameOrEmailFunc = func(ctx context.Context, username, email string) (*domain.User, error) {
					if username != "wasif" {
						t.Errorf("expected lowercased username lookup, got %q", username)
					}
					return createVerifiedUser(t), nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result == nil {
					t.Fatal("result is nil")
				}
			},
		},
		{
			name:            "user not found",
			usernameOrEmail: "ghost@example.com",
			password:        "password",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
			},
			expectedError: domain.ErrUserNotFound,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected nil result")
				}
			},
		},
		{
			name:            "unverified account rejected",
			usernameOrEmail: "wasif@example.com",
			password:        "securepassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByUsernameOrEmailFunc = func(ctx context.Context, username, email string) (*domain.User, error) {
					user := createVerifiedUser(t)
					user.IsAccountVerified = false
					return user, nil
				}
			},
			expectedError: domain.ErrAccountNotVerified,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected nil result for unverified account")
				}
			},
		},
		{
			name:            "wrong password",
			usernameOrEmail: "wasif@example.com",
			password:        "wrongpassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByUsernameOrEmailFunc = func(ctx context.Context, username, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
				passwordSvc.VerifyFunc = func(hashedPassword, password string) bool {
					return false
				}
			},
			expectedError: domain.ErrInvalidCredentials,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected nil result for wrong password")
				}
			},
		},
		{
			name:            "refresh token persistence fails",
			usernameOrEmail: "wasif@example.com",
			password:        "securepassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, tokenSvc *mocks.MockTokenService) {
				userRepo.FindByUsernameOrEmailFunc = func(ctx context.Context, username, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
				userRepo.SetRefreshTokenFunc = func(ctx context.Context, id, token string) error {
					return errors.New("database error")
				}
			},
			expectedError: errors.New("failed to persist refresh token: database error"),
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected nil result when persistence fails")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tokenSvc := mocks.NewMockTokenService()

			tt.setupMocks(userRepo, passwordSvc, tokenSvc)

			authService := createAuthServiceForTest(userRepo, passwordSvc, tokenSvc, mocks.NewMockOTPService(), mocks.NewMockNotificationService())

			result, err := authService.Login(context.Background(), domain.AuthRequest{
				UsernameOrEmail: tt.usernameOrEmail,
				Password:        tt.password,
			})

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error containing '%s', got '%s'", tt.expectedError.Error(), err.Error())
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			tt.validateResult(t, result)
		})
	}
}

func TestAuthServiceImpl_RefreshToken(t *testing.T) {
	tests := []struct {
		name           string
		refreshToken   string
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockTokenService)
		expectedError  error
		validateResult func(t *testing.T, result *domain.AuthResult)
	}{
		{
			name:         "successful rotation",
			refreshToken: "current_refresh_token",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: "64f1c0ffee0000000000abcd", Email: "wasif@example.com"}, nil
				}
				userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					user := createVerifiedUser(t)
					user.RefreshToken = "current_refresh_token"
					return user, nil
				}
				tokenSvc.GenerateRefreshTokenFunc = func(user *domain.User) (string, error) {
					return "next_refresh_token", nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result == nil {
					t.Fatal("result is nil")
				}
				if result.RefreshToken != "next_refresh_token" {
					t.Errorf("expected rotated token, got %s", result.RefreshToken)
				}
				if result.User.RefreshToken != "next_refresh_token" {
					t.Error("expected stored slot to hold the rotated token")
				}
			},
		},
		{
			name:         "invalid token",
			refreshToken: "garbage",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenMalformed
				}
			},
			expectedError: domain.ErrTokenInvalid,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected nil result")
				}
			},
		},
		{
			name:         "user gone",
			refreshToken: "current_refresh_token",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: "64f1c0ffee0000000000abcd"}, nil
				}
			},
			expectedError: domain.ErrTokenInvalid,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected nil result")
				}
			},
		},
		{
			name:         "superseded token rejected as reuse",
			refreshToken: "old_refresh_token",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: "64f1c0ffee0000000000abcd"}, nil
				}
				userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					user := createVerifiedUser(t)
					user.RefreshToken = "current_refresh_token"
					return user, nil
				}
			},
			expectedError: domain.ErrTokenReused,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected nil result for reused token")
				}
			},
		},
		{
			name:         "empty slot after logout rejected",
			refreshToken: "current_refresh_token",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: "64f1c0ffee0000000000abcd"}, nil
				}
				userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					user := createVerifiedUser(t)
					user.RefreshToken = ""
					return user, nil
				}
			},
			expectedError: domain.ErrTokenReused,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected nil result after logout")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tokenSvc := mocks.NewMockTokenService()

			tt.setupMocks(userRepo, tokenSvc)

			authService := createAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), tokenSvc, mocks.NewMockOTPService(), mocks.NewMockNotificationService())

			result, err := authService.RefreshToken(context.Background(), tt.refreshToken)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			tt.validateResult(t, result)
		})
	}
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()

	var clearedID string
	userRepo.ClearRefreshTokenFunc = func(ctx context.Context, id string) error {
		clearedID = id
		return nil
	}

	authService := createAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService(), mocks.NewMockNotificationService())

	if err := authService.Logout(context.Background(), "64f1c0ffee0000000000abcd"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if clearedID != "64f1c0ffee0000000000abcd" {
		t.Errorf("expected refresh token cleared for user, got %q", clearedID)
	}
}

func TestAuthServiceImpl_VerifyEmailOTP(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		code           string
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockOTPService)
		expectedStatus domain.VerificationStatus
		expectedError  error
	}{
		{
			name:  "successful verification",
			email: "wasif@example.com",
			code:  "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					user := createVerifiedUser(t)
					user.IsAccountVerified = false
					return user, nil
				}
			},
			expectedStatus: domain.VerificationVerified,
			expectedError:  nil,
		},
		{
			name:  "already verified short-circuits",
			email: "wasif@example.com",
			code:  "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
				otpSvc.VerifyEmailFunc = func(ctx context.Context, user *domain.User, code string) error {
					t.Error("OTP check must not run for a verified account")
					return nil
				}
			},
			expectedStatus: domain.VerificationAlreadyVerified,
			expectedError:  nil,
		},
		{
			name:  "unknown email",
			email: "ghost@example.com",
			code:  "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name:  "wrong code passes through",
			email: "wasif@example.com",
			code:  "000000",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					user := createVerifiedUser(t)
					user.IsAccountVerified = false
					return user, nil
				}
			},
			expectedError: domain.ErrOTPInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			otpSvc := mocks.NewMockOTPService()

			tt.setupMocks(userRepo, otpSvc)

			authService := createAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc, mocks.NewMockNotificationService())

			status, err := authService.VerifyEmailOTP(context.Background(), tt.email, tt.code)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if status != tt.expectedStatus {
				t.Errorf("expected status %v, got %v", tt.expectedStatus, status)
			}
		})
	}
}

func TestAuthServiceImpl_ResendEmailOTP(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockOTPService)
		expectedError error
	}{
		{
			name: "resends for unverified account",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					user := createVerifiedUser(t)
					user.IsAccountVerified = false
					return user, nil
				}
			},
			expectedError: nil,
		},
		{
			name: "already verified account rejected",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: domain.ErrAlreadyVerified,
		},
		{
			name: "unknown email",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name: "throttle error passes through",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					user := createVerifiedUser(t)
					user.IsAccountVerified = false
					return user, nil
				}
				otpSvc.IssueVerifyFunc = func(ctx context.Context, user *domain.User) error {
					return domain.ErrOTPResendThrottled
				}
			},
			expectedError: domain.ErrOTPResendThrottled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			otpSvc := mocks.NewMockOTPService()

			tt.setupMocks(userRepo, otpSvc)

			authService := createAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc, mocks.NewMockNotificationService())

			err := authService.ResendEmailOTP(context.Background(), "wasif@example.com")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestAuthServiceImpl_ResetPassword(t *testing.T) {
	tests := []struct {
		name          string
		code          string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService, *mocks.MockOTPService)
		expectedError error
	}{
		{
			name: "successful reset",
			code: "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
				userRepo.UpdatePasswordFunc = func(ctx context.Context, id, passwordHash string) error {
					if passwordHash != "hashed_newpassword123" {
						t.Errorf("unexpected new hash %q", passwordHash)
					}
					return nil
				}
			},
			expectedError: nil,
		},
		{
			name: "unknown email",
			code: "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService) {
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name: "wrong code blocks the reset",
			code: "000000",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
				userRepo.UpdatePasswordFunc = func(ctx context.Context, id, passwordHash string) error {
					t.Error("password must not change on a bad code")
					return nil
				}
			},
			expectedError: domain.ErrOTPInvalid,
		},
		{
			name: "expired code blocks the reset",
			code: "123456",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
				otpSvc.VerifyResetFunc = func(ctx context.Context, user *domain.User, code string) error {
					return domain.ErrOTPExpired
				}
			},
			expectedError: domain.ErrOTPExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			otpSvc := mocks.NewMockOTPService()

			tt.setupMocks(userRepo, passwordSvc, otpSvc)

			authService := createAuthServiceForTest(userRepo, passwordSvc, mocks.NewMockTokenService(), otpSvc, mocks.NewMockNotificationService())

			err := authService.ResetPassword(context.Background(), "wasif@example.com", tt.code, "newpassword123")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestAuthServiceImpl_ForgotPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	otpSvc := mocks.NewMockOTPService()

	var issuedFor string
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return createVerifiedUser(t), nil
	}
	otpSvc.IssueResetFunc = func(ctx context.Context, user *domain.User) error {
		issuedFor = user.Email
		return nil
	}

	authService := createAuthServiceForTest(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc, mocks.NewMockNotificationService())

	if err := authService.ForgotPassword(context.Background(), "wasif@example.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if issuedFor != "wasif@example.com" {
		t.Errorf("expected reset OTP issued for user, got %q", issuedFor)
	}

	// Unknown address maps to not found
	userRepo.FindByEmailFunc = nil
	if err := authService.ForgotPassword(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
