package middleware

import (
	"github.com/gofiber/fiber/v2"

	adminauth "recruitment-portal-backend/lib/admin-auth"
	authutils "recruitment-portal-backend/lib/utils/auth-utils"
	apimodels "recruitment-portal-backend/models/api"
	dbmodels "recruitment-portal-backend/models/db"
)

const adminLocalsKey = "admin"

// AdminRequired resolves the verified token to an active admin account.
// Runs after AuthorizationRequired.
func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		claims := authutils.GetClaims(ctx)
		admin, err := adminauth.Instance.Authenticate(claims)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(adminauth.ErrInvalidCredentials.Error()))
		}
		ctx.Locals(adminLocalsKey, admin)
		return ctx.Next()
	}
}

func GetAdmin(ctx *fiber.Ctx) *dbmodels.Admin {
	admin, ok := ctx.Locals(adminLocalsKey).(*dbmodels.Admin)
	if !ok {
		return nil
	}
	return admin
}
