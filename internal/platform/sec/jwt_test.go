// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/telugucine/internal/platform/sec"
)

func sign(t *testing.T, key *rsa.PrivateKey, claims sec.AuthClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(issuer string, expires time.Time, role sec.UserRole) sec.AuthClaims {
	return sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		UserID: "editor-1",
		Role:   string(role),
	}
}

/*
TestTokenService_VerifyToken checks signature, issuer and expiry handling.
*/
func TestTokenService_VerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	service := sec.NewTokenServiceFromKey(&key.PublicKey, "telugucine.app")
	future := time.Now().Add(time.Hour)

	t.Run("valid", func(t *testing.T) {
		claims, err := service.VerifyToken(sign(t, key, claimsFor("telugucine.app", future, sec.RoleEditor)))

		require.NoError(t, err)
		assert.Equal(t, "editor-1", claims.UserID)
		assert.Equal(t, string(sec.RoleEditor), claims.Role)
	})

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"wrong_issuer", func(t *testing.T) string {
			return sign(t, key, claimsFor("elsewhere", future, sec.RoleAdmin))
		}},
		{"expired", func(t *testing.T) string {
			return sign(t, key, claimsFor("telugucine.app", time.Now().Add(-time.Minute), sec.RoleAdmin))
		}},
		{"foreign_key", func(t *testing.T) string {
			return sign(t, other, claimsFor("telugucine.app", future, sec.RoleAdmin))
		}},
		{"garbage", func(*testing.T) string { return "not.a.token" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token(t))
			assert.Error(t, err)
		})
	}
}

/*
TestUserRole_AtLeast checks the role hierarchy used by route guards.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleEditor))
	assert.True(t, sec.RoleEditor.AtLeast(sec.RoleEditor))
	assert.False(t, sec.RoleMember.AtLeast(sec.RoleEditor))
	assert.False(t, sec.UserRole("").AtLeast(sec.RoleMember))
}
