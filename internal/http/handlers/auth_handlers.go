package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc    domain.AuthService
	uploader   domain.AvatarUploader
	accessTTL  time.Duration
	refreshTTL time.Duration
	stagingDir string
}

// NewAuthHandlers creates new auth handlers. stagingDir is where multipart
// avatar files are parked before the upload host accepts them.
func NewAuthHandlers(authSvc domain.AuthService, uploader domain.AvatarUploader, accessTTL, refreshTTL time.Duration, stagingDir string) *AuthHandlers {
	if stagingDir == "" {
		stagingDir = os.TempDir()
	}
	return &AuthHandlers{
		authSvc:    authSvc,
		uploader:   uploader,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		stagingDir: stagingDir,
	}
}

// RegisterRequest represents the multipart registration form
type RegisterRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
	Phone    string `form:"phone" binding:"required,numeric,len=11"`
}

// LoginRequest represents login request; either username or email must be set
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// OTPRequest represents OTP verification request
type OTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,numeric,len=6"`
}

// EmailRequest carries a bare email address
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RefreshRequest represents token refresh request body
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ResetPasswordRequest represents the final password-reset step
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,numeric,len=6"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// Register handles user registration: stage the avatar, push it to the
// upload host, then create the account
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Avatar file is required")
		return
	}

	stagedPath := filepath.Join(h.stagingDir, uuid.NewString()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, stagedPath); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to stage avatar file")
		return
	}
	defer os.Remove(stagedPath)

	avatarURL, err := h.uploader.Upload(c.Request.Context(), stagedPath)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to upload avatar")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		AvatarURL: avatarURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			respondError(c, http.StatusConflict, "User with email or username already exists")
			return
		}
		if errors.Is(err, domain.ErrOTPResendThrottled) {
			respondError(c, http.StatusTooManyRequests, "Please wait before requesting another OTP")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	logAudit(domain.NewAuditEvent(domain.UserRegistrationEvent, user.ID).WithEmail(user.Email))

	respondOK(c, http.StatusCreated, toUserResponse(user), "User registered successfully")
}

// Login handles user login and sets the token pair as secure cookies
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Username == "" && req.Email == "" {
		respondError(c, http.StatusBadRequest, "Username or email is required")
		return
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}

	result, err := h.authSvc.Login(c.Request.Context(), domain.AuthRequest{
		UsernameOrEmail: identifier,
		Password:        req.Password,
	})
	if err != nil {
		logAudit(domain.NewAuditEvent(domain.UserLoginFailureEvent, "").WithEmail(identifier).WithError(err))
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "User does not exist")
		case errors.Is(err, domain.ErrAccountNotVerified):
			respondError(c, http.StatusForbidden, "Please verify your email before logging in")
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "Invalid user credentials")
		default:
			respondError(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	h.setTokenCookies(c, result.AccessToken, result.RefreshToken)

	logAudit(domain.NewAuditEvent(domain.UserLoginEvent, result.User.ID).WithEmail(result.User.Email))

	respondOK(c, http.StatusOK, gin.H{
		"user":         toUserResponse(result.User),
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"expiresIn":    result.ExpiresIn,
	}, "User logged in successfully")
}

// Logout clears the stored refresh token and the session cookies
func (h *AuthHandlers) Logout(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), userID.(string)); err != nil {
		respondError(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	h.clearTokenCookies(c)

	logAudit(domain.NewAuditEvent(domain.UserLogoutEvent, userID.(string)))

	respondOK(c, http.StatusOK, nil, "User logged out successfully")
}

// Refresh rotates the token pair. The refresh token arrives as a cookie or
// in the body; both tokens are replaced on success.
func (h *AuthHandlers) Refresh(c *gin.Context) {
	incoming, err := c.Cookie(refreshCookieName)
	if err != nil || incoming == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			incoming = req.RefreshToken
		}
	}

	if incoming == "" {
		respondError(c, http.StatusUnauthorized, "Unauthorized request")
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), incoming)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenReused):
			logAudit(domain.NewAuditEvent(domain.TokenReuseDetectedEvent, "").WithError(err))
			respondError(c, http.StatusUnauthorized, "Refresh token is expired or used")
		case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrTokenMalformed):
			respondError(c, http.StatusUnauthorized, "Invalid refresh token")
		default:
			respondError(c, http.StatusInternalServerError, "Token refresh failed")
		}
		return
	}

	h.setTokenCookies(c, result.AccessToken, result.RefreshToken)

	logAudit(domain.NewAuditEvent(domain.TokenRefreshEvent, result.User.ID))

	respondOK(c, http.StatusOK, gin.H{
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"expiresIn":    result.ExpiresIn,
	}, "Access token refreshed")
}

// VerifyEmailOTP confirms the emailed code and activates the account
func (h *AuthHandlers) VerifyEmailOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	status, err := h.authSvc.VerifyEmailOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		logAudit(domain.NewAuditEvent(domain.EmailVerificationFailedEvent, "").WithEmail(req.Email).WithError(err))
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrOTPExpired):
			respondError(c, http.StatusBadRequest, "OTP expired, please request a new one")
		case errors.Is(err, domain.ErrOTPInvalid):
			respondError(c, http.StatusBadRequest, "Invalid OTP")
		case errors.Is(err, domain.ErrOTPNotFound):
			respondError(c, http.StatusBadRequest, "No OTP pending for this account")
		case errors.Is(err, domain.ErrOTPMaxAttempts):
			respondError(c, http.StatusTooManyRequests, "Maximum attempts exceeded, please request a new OTP")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to verify OTP")
		}
		return
	}

	if status == domain.VerificationAlreadyVerified {
		respondOK(c, http.StatusOK, nil, "Account already verified")
		return
	}

	logAudit(domain.NewAuditEvent(domain.EmailVerifiedEvent, "").WithEmail(req.Email))

	respondOK(c, http.StatusOK, nil, "Email verified successfully! You can now log in")
}

// ResendEmailOTP issues a fresh verification code
func (h *AuthHandlers) ResendEmailOTP(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authSvc.ResendEmailOTP(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrAlreadyVerified):
			respondError(c, http.StatusBadRequest, "Account already verified")
		case errors.Is(err, domain.ErrOTPResendThrottled):
			respondError(c, http.StatusTooManyRequests, "Please wait before requesting another OTP")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to resend OTP")
		}
		return
	}

	logAudit(domain.NewAuditEvent(domain.EmailOTPRequestEvent, "").WithEmail(req.Email))

	respondOK(c, http.StatusOK, nil, "OTP sent to your email")
}

// ForgotPassword issues a password-reset code
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrOTPResendThrottled):
			respondError(c, http.StatusTooManyRequests, "Please wait before requesting another OTP")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to send reset OTP")
		}
		return
	}

	logAudit(domain.NewAuditEvent(domain.PasswordResetRequestEvent, "").WithEmail(req.Email))

	respondOK(c, http.StatusOK, nil, "Password reset OTP sent to your email")
}

// VerifyResetOTP checks a reset code without consuming it
func (h *AuthHandlers) VerifyResetOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authSvc.VerifyResetOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		h.respondResetError(c, err)
		return
	}

	respondOK(c, http.StatusOK, nil, "OTP verified")
}

// ResetPassword completes the reset flow with a new password
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		h.respondResetError(c, err)
		return
	}

	logAudit(domain.NewAuditEvent(domain.PasswordResetEvent, "").WithEmail(req.Email))

	respondOK(c, http.StatusOK, nil, "Password reset successfully")
}

func (h *AuthHandlers) respondResetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrOTPExpired):
		respondError(c, http.StatusBadRequest, "OTP expired, please request a new one")
	case errors.Is(err, domain.ErrOTPInvalid):
		respondError(c, http.StatusBadRequest, "Invalid OTP")
	case errors.Is(err, domain.ErrOTPNotFound):
		respondError(c, http.StatusBadRequest, "No reset OTP pending for this account")
	case errors.Is(err, domain.ErrOTPMaxAttempts):
		respondError(c, http.StatusTooManyRequests, "Maximum attempts exceeded, please request a new OTP")
	default:
		respondError(c, http.StatusInternalServerError, "Failed to reset password")
	}
}

// Me returns the authenticated user's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), userID.(string))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get user profile")
		return
	}

	respondOK(c, http.StatusOK, toUserResponse(user), "User profile")
}

func (h *AuthHandlers) setTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetCookie(accessCookieName, accessToken, int(h.accessTTL.Seconds()), "/", "", true, true)
	c.SetCookie(refreshCookieName, refreshToken, int(h.refreshTTL.Seconds()), "/", "", true, true)
}

func (h *AuthHandlers) clearTokenCookies(c *gin.Context) {
	c.SetCookie(accessCookieName, "", -1, "/", "", true, true)
	c.SetCookie(refreshCookieName, "", -1, "/", "", true, true)
}
