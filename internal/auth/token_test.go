package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenManager(t *testing.T) {
	_, err := NewTokenManager("")
	assert.ErrorIs(t, err, ErrEmptySecret)

	manager, err := NewTokenManager("secret")
	require.NoError(t, err)
	assert.NotNil(t, manager)
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		ttl       time.Duration
		parseAt   time.Time
		parseWith string
		wantErr   bool
	}{
		{
			name:    "valid token",
			ttl:     time.Hour,
			parseAt: now.Add(30 * time.Minute),
		},
		{
			name:    "token without expiry",
			parseAt: now.Add(24 * 365 * time.Hour),
		},
		{
			name:    "expired token",
			ttl:     time.Hour,
			parseAt: now.Add(2 * time.Hour),
			wantErr: true,
		},
		{
			name:      "signed with another secret",
			ttl:       time.Hour,
			parseAt:   now,
			parseWith: "other-secret",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := &TokenManager{secret: []byte("secret"), now: func() time.Time { return now }}
			token, err := issuer.Issue("alice@example.com", tt.ttl)
			require.NoError(t, err)

			secret := "secret"
			if tt.parseWith != "" {
				secret = tt.parseWith
			}
			parser := &TokenManager{secret: []byte(secret), now: func() time.Time { return tt.parseAt }}

			claims, err := parser.Parse(token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice@example.com", claims.Email)
			assert.Equal(t, "alice@example.com", claims.Subject)
			assert.NotEmpty(t, claims.ID)
		})
	}
}

func TestTokenManager_ParseRejects(t *testing.T) {
	manager, err := NewTokenManager("secret")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "alice@example.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noEmailToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "unsigned", token: noneToken},
		{name: "missing email", token: noEmailToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.Parse(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
