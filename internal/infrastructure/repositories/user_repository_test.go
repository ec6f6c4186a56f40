package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

func TestUserRepositoryImpl_DomainDBRoundTrip(t *testing.T) {
	r := &UserRepositoryImpl{}

	oid := primitive.NewObjectID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	user := &domain.User{
		ID:                 oid.Hex(),
		Username:           "wasif",
		Email:              "wasif@example.com",
		Phone:              "03001234567",
		PasswordHash:       "$2a$10$somethinghashed",
		AvatarURL:          "https://cdn.example.com/avatars/a.png",
		IsAccountVerified:  true,
		VerifyOTPHash:      "deadbeef",
		VerifyOTPExpiresAt: now.Add(10 * time.Minute),
		ResetOTPHash:       "cafebabe",
		ResetOTPExpiresAt:  now.Add(10 * time.Minute),
		RefreshToken:       "some.refresh.token",
	}

	dbUser := r.domainToDB(user)
	require.Equal(t, oid, dbUser.ID)
	assert.Equal(t, user.PasswordHash, dbUser.PasswordHash)

	dbUser.CreatedAt = now
	dbUser.UpdatedAt = now

	back := r.dbToDomain(dbUser)
	assert.Equal(t, user.ID, back.ID)
	assert.Equal(t, user.Username, back.Username)
	assert.Equal(t, user.Email, back.Email)
	assert.Equal(t, user.Phone, back.Phone)
	assert.Equal(t, user.VerifyOTPHash, back.VerifyOTPHash)
	assert.True(t, back.VerifyOTPExpiresAt.Equal(user.VerifyOTPExpiresAt))
	assert.Equal(t, user.ResetOTPHash, back.ResetOTPHash)
	assert.Equal(t, user.RefreshToken, back.RefreshToken)
	assert.True(t, back.CreatedAt.Equal(now))
	assert.True(t, back.UpdatedAt.Equal(now))
}

func TestUserRepositoryImpl_DomainToDB_InvalidIDIgnored(t *testing.T) {
	r := &UserRepositoryImpl{}

	dbUser := r.domainToDB(&domain.User{ID: "not-a-hex-objectid", Username: "wasif"})
	assert.True(t, dbUser.ID.IsZero(), "unparseable ID should leave the ObjectID zero")
}
