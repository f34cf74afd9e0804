package usecase

import (
	"crypto/subtle"
	"fmt"
	"time"

	"mohini-backend/pkg/utils"
)

type AuthUsecase struct {
	adminEmail    string
	adminPassword string
	tokenExpiry   time.Duration
}

func NewAuthUsecase(adminEmail, adminPassword string, tokenExpiry time.Duration) *AuthUsecase {
	return &AuthUsecase{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		tokenExpiry:   tokenExpiry,
	}
}

// AdminLogin verifies the configured admin credentials and issues an access
// token. Comparison is constant-time to avoid leaking prefix matches.
func (u *AuthUsecase) AdminLogin(email, password string) (string, error) {
	if u.adminEmail == "" || u.adminPassword == "" {
		return "", fmt.Errorf("admin login is not configured")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(u.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(u.adminPassword)) == 1
	if !emailOK || !passOK {
		return "", fmt.Errorf("invalid credentials")
	}

	return utils.GenerateJWT("admin", u.adminEmail, "admin", u.tokenExpiry)
}
