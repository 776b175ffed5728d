// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/sec"
)

const issuer = "pageturn.test"

func signToken(t *testing.T, key *rsa.PrivateKey, method jwt.SigningMethod, claims sec.AuthClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(iss string, ttl time.Duration) sec.AuthClaims {
	now := time.Now()
	return sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			Issuer:    iss,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: "42",
		Role:   string(sec.RoleSeller),
	}
}

/*
TestVerifyToken checks signature, issuer and expiry enforcement.
*/
func TestVerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := sec.NewTokenVerifierFromKey(&key.PublicKey, issuer)

	t.Run("valid_token", func(t *testing.T) {
		claims, err := verifier.VerifyToken(signToken(t, key, jwt.SigningMethodRS256, claimsFor(issuer, time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, "42", claims.UserID)

		id, ok := claims.NumericUserID()
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
		assert.True(t, claims.HasRole(sec.RoleSeller))
		assert.False(t, claims.HasRole(sec.RoleAdmin))
	})

	t.Run("expired_token", func(t *testing.T) {
		_, err := verifier.VerifyToken(signToken(t, key, jwt.SigningMethodRS256, claimsFor(issuer, -time.Minute)))
		assert.Error(t, err)
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		_, err := verifier.VerifyToken(signToken(t, key, jwt.SigningMethodRS256, claimsFor("evil.example", time.Hour)))
		assert.Error(t, err)
	})

	t.Run("foreign_key", func(t *testing.T) {
		_, err := verifier.VerifyToken(signToken(t, otherKey, jwt.SigningMethodRS256, claimsFor(issuer, time.Hour)))
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.VerifyToken("not.a.token")
		assert.Error(t, err)
	})
}

/*
TestUserRole_AtLeast verifies the role hierarchy.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleSeller))
	assert.True(t, sec.RoleSeller.AtLeast(sec.RoleSeller))
	assert.False(t, sec.RoleCustomer.AtLeast(sec.RoleSeller))
	assert.False(t, sec.UserRole("root").AtLeast(sec.UserRole("other")))
}
