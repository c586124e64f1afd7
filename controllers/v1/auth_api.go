package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruitment-portal-backend/controllers"
	adminauth "recruitment-portal-backend/lib/admin-auth"
	apimodels "recruitment-portal-backend/models/api"
	authapimodels "recruitment-portal-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("admin", func(router fiber.Router) {
		router.Post("login", controller.login)
	})
}

// @Summary Exchange admin credentials for a JWT
// @Tags Auth
// @Description Unknown email, wrong password and disabled account all return the same 401 body
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /admin/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(err.Error()))
	}
	response, err := adminauth.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		// credential failures are never distinguished for the caller
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(adminauth.ErrInvalidCredentials.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}
