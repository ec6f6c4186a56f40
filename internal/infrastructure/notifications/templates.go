package notifications

import "fmt"

// Email subjects
const (
	WelcomeSubject   = "Welcome to Hotel Booking"
	VerifyOTPSubject = "Verify Your Email - OTP"
	ResetOTPSubject  = "Reset Your Password - OTP"
)

// WelcomeEmailBody renders the account-created email
func WelcomeEmailBody(email string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.5;">
  <h2>Welcome to Hotel Booking!</h2>
  <p>Your account has been created with the email id %s.</p>
</div>`, email)
}

// VerifyOTPEmailBody renders the email-verification OTP email
func VerifyOTPEmailBody(otp string, ttlMinutes int) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.5;">
  <h2>Welcome to Hotel Booking!</h2>
  <p>Your OTP for email verification is:</p>
  <h3 style="color: #1e90ff;">%s</h3>
  <p>This code will expire in <strong>%d minutes</strong>.</p>
</div>`, otp, ttlMinutes)
}

// ResetOTPEmailBody renders the password-reset OTP email
func ResetOTPEmailBody(otp string, ttlMinutes int) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; line-height: 1.5;">
  <h2>Password Reset Requested</h2>
  <p>Your OTP for resetting your password is:</p>
  <h3 style="color: #1e90ff;">%s</h3>
  <p>This code will expire in <strong>%d minutes</strong>. If you did not request
  a reset, you can ignore this email.</p>
</div>`, otp, ttlMinutes)
}

// OTPSMSBody renders the SMS variant of an OTP notification
func OTPSMSBody(otp string, ttlMinutes int) string {
	return fmt.Sprintf("Your Hotel Booking verification code is: %s. Valid for %d minutes.", otp, ttlMinutes)
}
