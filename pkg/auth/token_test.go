package auth_test

import (
	"testing"
	"time"

	"go-portfolio-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := auth.NewTokenService("unit-test-secret", time.Hour)

	token, err := svc.Issue("shreeya")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "shreeya", subject)
}

func TestTokenExpired(t *testing.T) {
	svc := auth.NewTokenService("unit-test-secret", -time.Minute)

	token, err := svc.Issue("shreeya")
	assert.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := auth.NewTokenService("secret-a", time.Hour)
	verifier := auth.NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("shreeya")
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIssueWithoutSecret(t *testing.T) {
	svc := auth.NewTokenService("", time.Hour)

	_, err := svc.Issue("shreeya")
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	svc := auth.NewTokenService("unit-test-secret", time.Hour)

	_, err := svc.Parse("not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
