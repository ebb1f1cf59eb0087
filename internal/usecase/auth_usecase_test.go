package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koliko-tech/admin-backend/internal/cfg"
	"github.com/koliko-tech/admin-backend/pkg/e"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

func newAuthFixture(ttl time.Duration) *AuthUseCase {
	return NewAuthUC(&cfg.AuthCfg{
		AdminEmail:    "admin@koliko.com",
		AdminPassword: "s3cret-test",
		SessionTTL:    ttl,
	}, logger.NewSlogLogger())
}

func TestLogin_IssuesValidToken(t *testing.T) {
	uc := newAuthFixture(time.Hour)

	res, err := uc.Login(context.Background(), NewLoginReq("admin@koliko.com", "s3cret-test"))
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "admin@koliko.com", res.Email)
	assert.Equal(t, "admin", res.Role)
	assert.True(t, uc.Validate(res.Token))
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	uc := newAuthFixture(time.Hour)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@koliko.com", "nope"},
		{"wrong email", "intruder@koliko.com", "s3cret-test"},
		{"empty credentials", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), NewLoginReq(tc.email, tc.password))
			assert.ErrorIs(t, err, e.ErrAuthFailure)
		})
	}
}

func TestValidate_ExpiredSessionIsRemoved(t *testing.T) {
	uc := newAuthFixture(-time.Minute) // сессия истекает в момент выдачи

	res, err := uc.Login(context.Background(), NewLoginReq("admin@koliko.com", "s3cret-test"))
	require.NoError(t, err)

	assert.False(t, uc.Validate(res.Token))
	assert.False(t, uc.Validate(res.Token), "expired token stays invalid")
}

func TestLogout_InvalidatesToken(t *testing.T) {
	uc := newAuthFixture(time.Hour)

	res, err := uc.Login(context.Background(), NewLoginReq("admin@koliko.com", "s3cret-test"))
	require.NoError(t, err)
	require.True(t, uc.Validate(res.Token))

	require.NoError(t, uc.Logout(context.Background(), res.Token))
	assert.False(t, uc.Validate(res.Token))

	// повторный logout неизвестного токена не считается ошибкой
	assert.NoError(t, uc.Logout(context.Background(), res.Token))
}

func TestValidate_UnknownToken(t *testing.T) {
	uc := newAuthFixture(time.Hour)
	assert.False(t, uc.Validate("made-up-token"))
}
