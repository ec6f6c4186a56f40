package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// PasswordServiceImpl implements domain.PasswordService with bcrypt. Each
// hash carries its own salt and cost factor, so stored credentials stay
// comparable after a cost bump.
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a password service at the default bcrypt cost
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{
		cost: bcrypt.DefaultCost,
	}
}

// Hash produces a salted bcrypt digest suitable for storage on the user
// document
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify reports whether password matches the stored digest
func (p *PasswordServiceImpl) Verify(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
