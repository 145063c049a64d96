package auth_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/securebank/securebank/pkg/config"
	"github.com/securebank/securebank/pkg/domain"
	"github.com/securebank/securebank/pkg/persistence"
	"github.com/securebank/securebank/pkg/service/auth"
)

const testSecret = "test-secret"

func newService(t *testing.T) *auth.Service {
	t.Helper()
	store, err := persistence.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return auth.New(store, "bank_users",
		config.Jwt{Secret: testSecret, Expiry: time.Hour},
		slog.Default(),
		auth.WithBcryptCost(bcrypt.MinCost))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, auth.RegisterInput{
		Name: "Asha Rao", Email: "Asha@Example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", u.Email, "emails stored lowercased")
	assert.NotEqual(t, "Str0ng!pass", u.PasswordHash)

	got, token, err := svc.Login(ctx, "asha@example.com", "Str0ng!pass")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	id, err := svc.CurrentUserID(parsed)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, auth.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = svc.Login(ctx, "nobody@example.com", "Str0ng!pass")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, auth.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, auth.RegisterInput{
		Name: "Imposter", Email: "ASHA@example.com", Password: "An0ther!pass",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "S1!a"},
		{"no uppercase", "str0ng!pass"},
		{"no lowercase", "STR0NG!PASS"},
		{"no digit", "Strong!pass"},
		{"no special", "Str0ngpass"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, auth.RegisterInput{
				Name: "Asha", Email: "asha@example.com", Password: tc.password,
			})
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "password", verr.Field)
		})
	}
}

func TestRegisterEmailValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, email := range []string{"", "not-an-email", "user@nodot"} {
		_, err := svc.Register(ctx, auth.RegisterInput{
			Name: "Asha", Email: email, Password: "Str0ng!pass",
		})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "email %q", email)
	}
}

func TestUsersSurviveRestart(t *testing.T) {
	dir := t.TempDir()
	store, err := persistence.NewFileStore(dir)
	require.NoError(t, err)
	cfg := config.Jwt{Secret: testSecret, Expiry: time.Hour}
	ctx := context.Background()

	first := auth.New(store, "bank_users", cfg, slog.Default(), auth.WithBcryptCost(bcrypt.MinCost))
	_, err = first.Register(ctx, auth.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	second := auth.New(store, "bank_users", cfg, slog.Default(), auth.WithBcryptCost(bcrypt.MinCost))
	_, _, err = second.Login(ctx, "asha@example.com", "Str0ng!pass")
	assert.NoError(t, err)
}
