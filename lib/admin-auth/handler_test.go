package adminauth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"recruitment-portal-backend/config"
	dbmodels "recruitment-portal-backend/models/db"
)

type fakeAdminStore struct {
	admin   *dbmodels.Admin
	updates []map[string]interface{}
}

func (s *fakeAdminStore) FindActiveByEmail(email string) (*dbmodels.Admin, error) {
	if s.admin == nil || s.admin.Email != email {
		return nil, nil
	}
	return s.admin, nil
}

func (s *fakeAdminStore) Update(id uint, updMap map[string]interface{}) error {
	s.updates = append(s.updates, updMap)
	return nil
}

func testConfig(t *testing.T) {
	t.Helper()
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "unit-test-secret"
	conf.Auth.JWTExpireInSec = 3600
	config.Conf = conf
}

func newTestInstance(t *testing.T) (Provider, *fakeAdminStore) {
	t.Helper()
	testConfig(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	store := &fakeAdminStore{admin: &dbmodels.Admin{
		BaseModel: dbmodels.BaseModel{ID: 1},
		Email:     "admin@example.com",
		Password:  string(hash),
		IsActive:  true,
	}}
	return impl{store: store}, store
}

func TestLogin(t *testing.T) {
	t.Run("success issues token and touches last_login", func(t *testing.T) {
		instance, store := newTestInstance(t)
		response, err := instance.Login("admin@example.com", "s3cret")
		require.NoError(t, err)
		require.NotEmpty(t, response.Token)
		require.Len(t, store.updates, 1)
		require.Contains(t, store.updates[0], "last_login")

		parsed, err := jwt.Parse(response.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.Conf.Auth.JWTSecret), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		require.Equal(t, "admin@example.com", claims["sub"])
		require.Equal(t, "admin", claims["role"])
	})

	t.Run("wrong password", func(t *testing.T) {
		instance, store := newTestInstance(t)
		_, err := instance.Login("admin@example.com", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Empty(t, store.updates)
	})

	t.Run("unknown email maps to the same error", func(t *testing.T) {
		instance, _ := newTestInstance(t)
		_, err := instance.Login("ghost@example.com", "s3cret")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthenticate(t *testing.T) {
	instance, store := newTestInstance(t)

	t.Run("valid claims resolve the admin", func(t *testing.T) {
		admin, err := instance.Authenticate(jwt.MapClaims{"sub": "admin@example.com", "role": "admin"})
		require.NoError(t, err)
		require.Equal(t, uint(1), admin.ID)
	})

	t.Run("missing subject", func(t *testing.T) {
		_, err := instance.Authenticate(jwt.MapClaims{"role": "admin"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing role", func(t *testing.T) {
		_, err := instance.Authenticate(jwt.MapClaims{"sub": "admin@example.com"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong role", func(t *testing.T) {
		_, err := instance.Authenticate(jwt.MapClaims{"sub": "admin@example.com", "role": "user"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated admin", func(t *testing.T) {
		store.admin = nil // FindActiveByEmail only ever returns active rows
		_, err := instance.Authenticate(jwt.MapClaims{"sub": "admin@example.com", "role": "admin"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
