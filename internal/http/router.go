package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/MuhammadWasif123/hotel-backend/internal/http/handlers"
	"github.com/MuhammadWasif123/hotel-backend/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	users := r.Group("/api/v1/users")
	users.POST("/register", ah.Register)
	users.POST("/login", ah.Login)
	users.POST("/refresh-token", ah.Refresh)
	users.POST("/verify-email-otp", ah.VerifyEmailOTP)
	users.POST("/resend-email-otp", ah.ResendEmailOTP)
	users.POST("/forgot-password", ah.ForgotPassword)
	users.POST("/verify-reset-otp", ah.VerifyResetOTP)
	users.POST("/reset-password", ah.ResetPassword)

	protected := users.Group("/").Use(jwtmw.WithJWT())
	protected.POST("/logout", ah.Logout)
	protected.GET("/me", ah.Me)

	return r
}
