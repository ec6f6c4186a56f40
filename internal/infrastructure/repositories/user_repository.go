package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// UserRepositoryImpl implements domain.UserRepository on the users collection
type UserRepositoryImpl struct {
	coll *mongo.Collection
}

// DBUser is the document model for User. Field names follow the collection's
// existing schema, which the booking frontend also reads.
type DBUser struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Username           string             `bson:"username"`
	Email              string             `bson:"email"`
	Phone              string             `bson:"phone,omitempty"`
	PasswordHash       string             `bson:"password"`
	AvatarURL          string             `bson:"avatar,omitempty"`
	IsAccountVerified  bool               `bson:"isAccountVerified"`
	VerifyOTPHash      string             `bson:"verifyOtp,omitempty"`
	VerifyOTPExpiresAt time.Time          `bson:"verifyOtpExpireAt,omitempty"`
	ResetOTPHash       string             `bson:"resetOtp,omitempty"`
	ResetOTPExpiresAt  time.Time          `bson:"resetOtpExpireAt,omitempty"`
	RefreshToken       string             `bson:"refreshToken,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &UserRepositoryImpl{coll: db.Collection("users")}
}

// Create implements domain.UserRepository
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	dbUser := r.domainToDB(user)
	dbUser.ID = primitive.NewObjectID()
	dbUser.CreatedAt = now
	dbUser.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, dbUser); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = dbUser.ID.Hex()
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByUsernameOrEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var dbUser DBUser
	err := r.coll.FindOne(ctx, filter).Decode(&dbUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// SetVerifyOTP implements domain.UserRepository
func (r *UserRepositoryImpl) SetVerifyOTP(ctx context.Context, id, otpHash string, expiresAt time.Time) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{
		"verifyOtp":         otpHash,
		"verifyOtpExpireAt": expiresAt,
	}})
}

// ClearVerifyOTP implements domain.UserRepository
func (r *UserRepositoryImpl) ClearVerifyOTP(ctx context.Context, id string) error {
	return r.updateByID(ctx, id, bson.M{"$unset": bson.M{
		"verifyOtp":         "",
		"verifyOtpExpireAt": "",
	}})
}

// MarkVerified implements domain.UserRepository. Verification flip and OTP
// clear happen in one document update so a concurrent verify cannot observe
// a half-applied state.
func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{
			"$set":   bson.M{"isAccountVerified": true, "updatedAt": time.Now().UTC()},
			"$unset": bson.M{"verifyOtp": "", "verifyOtpExpireAt": ""},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetResetOTP implements domain.UserRepository
func (r *UserRepositoryImpl) SetResetOTP(ctx context.Context, id, otpHash string, expiresAt time.Time) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{
		"resetOtp":         otpHash,
		"resetOtpExpireAt": expiresAt,
	}})
}

// ClearResetOTP implements domain.UserRepository
func (r *UserRepositoryImpl) ClearResetOTP(ctx context.Context, id string) error {
	return r.updateByID(ctx, id, bson.M{"$unset": bson.M{
		"resetOtp":         "",
		"resetOtpExpireAt": "",
	}})
}

// UpdatePassword implements domain.UserRepository. The reset OTP and the
// refresh-token slot are cleared in the same update: a password change
// invalidates the outstanding session.
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.updateByID(ctx, id, bson.M{
		"$set":   bson.M{"password": passwordHash},
		"$unset": bson.M{"resetOtp": "", "resetOtpExpireAt": "", "refreshToken": ""},
	})
}

// SetRefreshToken implements domain.UserRepository. The slot is single-valued:
// storing a new token supersedes whatever was there.
func (r *UserRepositoryImpl) SetRefreshToken(ctx context.Context, id, token string) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{"refreshToken": token}})
}

// ClearRefreshToken implements domain.UserRepository
func (r *UserRepositoryImpl) ClearRefreshToken(ctx context.Context, id string) error {
	return r.updateByID(ctx, id, bson.M{"$unset": bson.M{"refreshToken": ""}})
}

func (r *UserRepositoryImpl) updateByID(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	set, ok := update["$set"].(bson.M)
	if !ok {
		set = bson.M{}
		update["$set"] = set
	}
	set["updatedAt"] = time.Now().UTC()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// domainToDB converts a domain user to its document model
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	dbUser := &DBUser{
		Username:           user.Username,
		Email:              user.Email,
		Phone:              user.Phone,
		PasswordHash:       user.PasswordHash,
		AvatarURL:          user.AvatarURL,
		IsAccountVerified:  user.IsAccountVerified,
		VerifyOTPHash:      user.VerifyOTPHash,
		VerifyOTPExpiresAt: user.VerifyOTPExpiresAt,
		ResetOTPHash:       user.ResetOTPHash,
		ResetOTPExpiresAt:  user.ResetOTPExpiresAt,
		RefreshToken:       user.RefreshToken,
	}
	if user.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(user.ID); err == nil {
			dbUser.ID = oid
		}
	}
	return dbUser
}

// dbToDomain converts a document model to a domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:                 dbUser.ID.Hex(),
		Username:           dbUser.Username,
		Email:              dbUser.Email,
		Phone:              dbUser.Phone,
		PasswordHash:       dbUser.PasswordHash,
		AvatarURL:          dbUser.AvatarURL,
		IsAccountVerified:  dbUser.IsAccountVerified,
		VerifyOTPHash:      dbUser.VerifyOTPHash,
		VerifyOTPExpiresAt: dbUser.VerifyOTPExpiresAt,
		ResetOTPHash:       dbUser.ResetOTPHash,
		ResetOTPExpiresAt:  dbUser.ResetOTPExpiresAt,
		RefreshToken:       dbUser.RefreshToken,
		CreatedAt:          dbUser.CreatedAt,
		UpdatedAt:          dbUser.UpdatedAt,
	}
}
