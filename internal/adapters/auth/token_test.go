package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventregistration/internal/domain"
)

func TestJWTIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret)

	token, err := issuer.Issue("user-123", []string{RoleAdmin}, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, []string{RoleAdmin}, claims.Roles)
}

func TestJWTVerifier_Verify(t *testing.T) {
	issuer := NewJWTIssuer("s3cret")
	verifier := NewJWTVerifier("s3cret")

	admin, err := issuer.Issue("admin-1", []string{RoleAdmin}, time.Hour)
	require.NoError(t, err)
	attendee, err := issuer.Issue("user-2", []string{"attendee"}, time.Hour)
	require.NoError(t, err)
	expired, err := issuer.Issue("admin-1", []string{RoleAdmin}, -time.Minute)
	require.NoError(t, err)
	foreign, err := NewJWTIssuer("other").Issue("admin-1", []string{RoleAdmin}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name          string
		token         string
		wantID        string
		wantErr       bool
		wantForbidden bool
	}{
		{"valid admin", admin, "admin-1", false, false},
		{"missing role", attendee, "", true, true},
		{"expired", expired, "", true, false},
		{"wrong secret", foreign, "", true, false},
		{"garbage", "not-a-jwt", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := verifier.Verify(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantForbidden, errors.Is(err, domain.ErrForbidden))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
