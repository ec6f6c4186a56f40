package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuhammadWasif123/hotel-backend/domain"
	"github.com/MuhammadWasif123/hotel-backend/internal/config"
	"github.com/MuhammadWasif123/hotel-backend/internal/infrastructure/auth"
	"github.com/MuhammadWasif123/hotel-backend/internal/infrastructure/database"
	"github.com/MuhammadWasif123/hotel-backend/internal/infrastructure/notifications"
	"github.com/MuhammadWasif123/hotel-backend/internal/infrastructure/repositories"
	"github.com/MuhammadWasif123/hotel-backend/internal/infrastructure/uploads"
	"github.com/MuhammadWasif123/hotel-backend/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *mongo.Database
	RedisClient *redis.Client

	// Repositories
	UserRepo domain.UserRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	Uploader        domain.AvatarUploader
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := container.initRedis(ctx); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	db, err := database.OpenMongo(ctx, c.Config.MongoURI, c.Config.MongoDatabase)
	if err != nil {
		return err
	}

	if err := database.EnsureUserIndexes(ctx, db); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis(ctx context.Context) error {
	rdb := database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err := rdb.Ping(ctx); err != nil {
		return err
	}
	c.RedisClient = rdb.Client
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTAccessSecret,
		c.Config.JWTRefreshSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.NotificationSvc = notifications.NewNotificationService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SenderEmail,
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)
	c.Uploader = uploads.NewS3Uploader(
		c.Config.S3Region,
		c.Config.S3Endpoint,
		c.Config.S3Bucket,
		c.Config.S3AccessKey,
		c.Config.S3SecretKey,
		c.Config.S3PublicBaseURL,
	)

	otpConfig := services.OTPConfig{
		TTL:          c.Config.OTP_TTL,
		MaxAttempts:  c.Config.OTP_MaxAttempts,
		ResendWindow: c.Config.OTP_ResendWindow,
	}
	c.OTPSvc = services.NewOTPService(c.NotificationSvc, c.UserRepo, c.RedisClient, otpConfig)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.NotificationSvc,
		c.Config.AccessTTL,
	)
}

// Close closes all connections
func (c *Container) Close(ctx context.Context) error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}
	return database.CloseMongo(ctx, c.DB)
}
