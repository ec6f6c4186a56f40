package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MuhammadWasif123/hotel-backend/domain"
	"github.com/MuhammadWasif123/hotel-backend/internal/infrastructure/notifications"
)

// OTPServiceImpl implements domain.OTPService. The code hash and expiry live
// on the user document; Redis carries only the resend throttle and the
// attempt counters, which expire on their own.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	userRepo        domain.UserRepository
	redisClient     *redis.Client
	config          OTPConfig
}

type OTPConfig struct {
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(notificationSvc domain.NotificationService, userRepo domain.UserRepository, redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		userRepo:        userRepo,
		redisClient:     redisClient,
		config:          config,
	}
}

// HashOTP returns the hex sha256 digest stored in place of the plaintext
// code. Unsalted: codes are six digits, single-use, and expire in minutes.
func HashOTP(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// IssueVerify implements domain.OTPService. Generates a fresh code, persists
// its hash with expiry on the user document, and dispatches it by email (and
// SMS when the user registered a phone number).
func (s *OTPServiceImpl) IssueVerify(ctx context.Context, user *domain.User) error {
	return s.issue(ctx, user, domain.OTPPurposeVerify)
}

// IssueReset implements domain.OTPService
func (s *OTPServiceImpl) IssueReset(ctx context.Context, user *domain.User) error {
	return s.issue(ctx, user, domain.OTPPurposeReset)
}

func (s *OTPServiceImpl) issue(ctx context.Context, user *domain.User, purpose string) error {
	attemptsKey := fmt.Sprintf("otp:att:%s:%s", purpose, user.Email)
	resendKey := fmt.Sprintf("otp:res:%s:%s", purpose, user.Email)

	if canResend, waitTime, err := s.CanResend(ctx, user.Email, purpose); err != nil {
		return fmt.Errorf("failed to check resend throttle: %w", err)
	} else if !canResend {
		return fmt.Errorf("%w: retry in %d seconds", domain.ErrOTPResendThrottled, waitTime)
	}

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	hash := HashOTP(code)
	expiresAt := time.Now().Add(s.config.TTL)

	if purpose == domain.OTPPurposeReset {
		err = s.userRepo.SetResetOTP(ctx, user.ID, hash, expiresAt)
	} else {
		err = s.userRepo.SetVerifyOTP(ctx, user.ID, hash, expiresAt)
	}
	if err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := s.redisClient.Set(ctx, attemptsKey, 0, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to initialize attempts counter: %w", err)
	}

	if err := s.redisClient.Set(ctx, resendKey, 1, s.config.ResendWindow).Err(); err != nil {
		return fmt.Errorf("failed to set resend throttle: %w", err)
	}

	ttlMinutes := int(s.config.TTL.Minutes())
	subject := notifications.VerifyOTPSubject
	body := notifications.VerifyOTPEmailBody(code, ttlMinutes)
	if purpose == domain.OTPPurposeReset {
		subject = notifications.ResetOTPSubject
		body = notifications.ResetOTPEmailBody(code, ttlMinutes)
	}

	if err := s.notificationSvc.SendEmail(user.Email, subject, body); err != nil {
		// Unwind so the user is not left holding a code they never received
		s.clearOTP(ctx, user.ID, purpose)
		s.redisClient.Del(ctx, attemptsKey, resendKey)
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	if user.Phone != "" {
		if err := s.notificationSvc.SendSMS(user.Phone, notifications.OTPSMSBody(code, ttlMinutes)); err != nil {
			// Email is the channel of record; SMS is best-effort
			log.Printf("OTP_SMS_FAILED: user_id=%s phone=%s error=%v", user.ID, user.Phone, err)
		}
	}

	return nil
}

// VerifyEmail implements domain.OTPService. Expiry clears the stored code so
// a stale code can never succeed later; a wrong code leaves state untouched.
func (s *OTPServiceImpl) VerifyEmail(ctx context.Context, user *domain.User, code string) error {
	attemptsKey := fmt.Sprintf("otp:att:%s:%s", domain.OTPPurposeVerify, user.Email)

	if !user.HasPendingVerifyOTP() {
		return domain.ErrOTPNotFound
	}

	if err := s.checkAttempts(ctx, attemptsKey); err != nil {
		return err
	}

	if time.Now().After(user.VerifyOTPExpiresAt) {
		if err := s.userRepo.ClearVerifyOTP(ctx, user.ID); err != nil {
			return fmt.Errorf("failed to clear expired OTP: %w", err)
		}
		s.redisClient.Del(ctx, attemptsKey)
		return domain.ErrOTPExpired
	}

	if HashOTP(code) != user.VerifyOTPHash {
		return domain.ErrOTPInvalid
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to mark account verified: %w", err)
	}

	s.redisClient.Del(ctx, attemptsKey)
	return nil
}

// VerifyReset implements domain.OTPService. Checks the reset code without
// consuming it; the password update is what retires the code.
func (s *OTPServiceImpl) VerifyReset(ctx context.Context, user *domain.User, code string) error {
	attemptsKey := fmt.Sprintf("otp:att:%s:%s", domain.OTPPurposeReset, user.Email)

	if user.ResetOTPHash == "" || user.ResetOTPExpiresAt.IsZero() {
		return domain.ErrOTPNotFound
	}

	if err := s.checkAttempts(ctx, attemptsKey); err != nil {
		return err
	}

	if time.Now().After(user.ResetOTPExpiresAt) {
		if err := s.userRepo.ClearResetOTP(ctx, user.ID); err != nil {
			return fmt.Errorf("failed to clear expired OTP: %w", err)
		}
		s.redisClient.Del(ctx, attemptsKey)
		return domain.ErrOTPExpired
	}

	if HashOTP(code) != user.ResetOTPHash {
		return domain.ErrOTPInvalid
	}

	return nil
}

// CanResend implements domain.OTPService with Redis-based throttling. The
// throttle is scoped per purpose, matching the attempts counter, so a fresh
// verification code does not block an immediate password reset request.
func (s *OTPServiceImpl) CanResend(ctx context.Context, email, purpose string) (bool, int64, error) {
	resendKey := fmt.Sprintf("otp:res:%s:%s", purpose, email)

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	// TTL <= 0 means the key is gone or never existed
	if ttl <= 0 {
		return true, 0, nil
	}

	return false, int64(ttl.Seconds()), nil
}

func (s *OTPServiceImpl) checkAttempts(ctx context.Context, attemptsKey string) error {
	attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}
	// First Incr on a missing key creates it without a TTL; bound it
	if attempts == 1 {
		s.redisClient.Expire(ctx, attemptsKey, s.config.TTL)
	}
	if attempts > int64(s.config.MaxAttempts) {
		return domain.ErrOTPMaxAttempts
	}
	return nil
}

func (s *OTPServiceImpl) clearOTP(ctx context.Context, userID, purpose string) {
	var err error
	if purpose == domain.OTPPurposeReset {
		err = s.userRepo.ClearResetOTP(ctx, userID)
	} else {
		err = s.userRepo.ClearVerifyOTP(ctx, userID)
	}
	if err != nil {
		log.Printf("OTP_CLEANUP_FAILED: user_id=%s purpose=%s error=%v", userID, purpose, err)
	}
}

// generateCode produces a uniformly random six-digit code in [100000, 999999]
func (s *OTPServiceImpl) generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
