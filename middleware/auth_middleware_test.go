package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"recruitment-portal-backend/config"
	adminauth "recruitment-portal-backend/lib/admin-auth"
	authutils "recruitment-portal-backend/lib/utils/auth-utils"
	apimodels "recruitment-portal-backend/models/api"
	authapimodels "recruitment-portal-backend/models/api/auth"
	dbmodels "recruitment-portal-backend/models/db"
)

type fakeAdminAuth struct {
	admin *dbmodels.Admin
}

func (f fakeAdminAuth) Login(email, password string) (authapimodels.JWTResponse, error) {
	return authapimodels.JWTResponse{}, nil
}

func (f fakeAdminAuth) Authenticate(claims jwt.MapClaims) (*dbmodels.Admin, error) {
	if f.admin == nil {
		return nil, adminauth.ErrInvalidCredentials
	}
	return f.admin, nil
}

func newProtectedApp(t *testing.T, admin *dbmodels.Admin) *fiber.App {
	t.Helper()
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "unit-test-secret"
	conf.Auth.JWTExpireInSec = 3600
	config.Conf = conf
	adminauth.Instance = fakeAdminAuth{admin: admin}

	app := fiber.New()
	app.Get("/protected", AuthorizationRequired(), AdminRequired(), func(ctx *fiber.Ctx) error {
		return ctx.JSON(apimodels.NewResponse(GetAdmin(ctx).Email))
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, token string) (int, apimodels.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed apimodels.Response
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp.StatusCode, parsed
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthorization(t *testing.T) {
	activeAdmin := &dbmodels.Admin{Email: "admin@example.com", IsActive: true}

	t.Run("valid token reaches the handler", func(t *testing.T) {
		app := newProtectedApp(t, activeAdmin)
		token, err := authutils.GetToken("admin@example.com")
		require.NoError(t, err)

		status, _ := doRequest(t, app, token)
		require.Equal(t, http.StatusOK, status)
	})

	// every failure mode must produce the same 401 body
	failureCases := []struct {
		name  string
		admin *dbmodels.Admin
		token func(t *testing.T) string
	}{
		{
			name:  "missing token",
			admin: activeAdmin,
			token: func(t *testing.T) string { return "" },
		},
		{
			name:  "garbage token",
			admin: activeAdmin,
			token: func(t *testing.T) string { return "not.a.jwt" },
		},
		{
			name:  "expired token",
			admin: activeAdmin,
			token: func(t *testing.T) string {
				return signToken(t, "unit-test-secret", jwt.MapClaims{
					"sub": "admin@example.com", "role": "admin",
					"exp": time.Now().Add(-time.Hour).Unix(),
				})
			},
		},
		{
			name:  "token signed with another key",
			admin: activeAdmin,
			token: func(t *testing.T) string {
				return signToken(t, "other-secret", jwt.MapClaims{
					"sub": "admin@example.com", "role": "admin",
					"exp": time.Now().Add(time.Hour).Unix(),
				})
			},
		},
		{
			name:  "valid token but no matching active admin",
			admin: nil,
			token: func(t *testing.T) string {
				token, err := authutils.GetToken("admin@example.com")
				require.NoError(t, err)
				return token
			},
		},
	}

	for _, tc := range failureCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newProtectedApp(t, tc.admin)
			status, body := doRequest(t, app, tc.token(t))
			require.Equal(t, http.StatusUnauthorized, status)
			require.Equal(t, "fail", body.Status)
			require.Equal(t, adminauth.ErrInvalidCredentials.Error(), body.Message)
		})
	}
}
