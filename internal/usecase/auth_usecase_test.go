package usecase

import (
	"testing"
	"time"

	"mohini-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLogin(t *testing.T) {
	utils.SetSecret("test-secret")
	uc := NewAuthUsecase("admin@mohini.shop", "s3cret", time.Hour)

	token, err := uc.AdminLogin("admin@mohini.shop", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "admin@mohini.shop", claims["email"])
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	utils.SetSecret("test-secret")
	uc := NewAuthUsecase("admin@mohini.shop", "s3cret", time.Hour)

	for _, tc := range []struct{ email, password string }{
		{"admin@mohini.shop", "wrong"},
		{"other@mohini.shop", "s3cret"},
		{"", ""},
	} {
		_, err := uc.AdminLogin(tc.email, tc.password)
		assert.Error(t, err)
	}
}

func TestAdminLoginUnconfigured(t *testing.T) {
	uc := NewAuthUsecase("", "", time.Hour)

	_, err := uc.AdminLogin("admin@mohini.shop", "s3cret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
