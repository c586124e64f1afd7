package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"recruitment-portal-backend/controllers"
	"recruitment-portal-backend/lib/csr"
	filestorage "recruitment-portal-backend/lib/file-storage"
	"recruitment-portal-backend/middleware"
	apimodels "recruitment-portal-backend/models/api"
	csrapimodels "recruitment-portal-backend/models/api/csr"
)

type csrApiController struct {
	controllers.BaseAPIController
}

func InitCSRApiRouters(app *fiber.App) {
	controller := csrApiController{}
	app.Route("csr", func(router fiber.Router) {
		router.Get("/", controller.list)

		router.Post("admin/upload", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.uploadImage)
		router.Post("admin", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.create)
		router.Put("admin/:id", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.update)
		router.Delete("admin/:id", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.delete)
	})
}

// @Summary List active CSR activities
// @Tags CSR
// @Success 200 {object} apimodels.Response
// @router /csr/ [get]
func (c *csrApiController) list(ctx *fiber.Ctx) error {
	list, err := csr.Instance.ListActive()
	if err != nil {
		return c.SendError(ctx, err, "failed to list CSR activities")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Upload a CSR activity image
// @Tags CSR
// @Accept multipart/form-data
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /csr/admin/upload [post]
func (c *csrApiController) uploadImage(ctx *fiber.Ctx) error {
	header, err := ctx.FormFile("image")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("image file part is required"))
	}
	src, err := header.Open()
	if err != nil {
		return c.SendError(ctx, err, "failed to open uploaded image")
	}
	content, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return c.SendError(ctx, err, "failed to read uploaded image")
	}
	path, err := csr.Instance.UploadImage(ctx.UserContext(), header.Filename, header.Header.Get("Content-Type"), content)
	if err != nil {
		if errors.Is(err, filestorage.ErrUnsupportedMedia) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err, "failed to store uploaded image")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(csrapimodels.UploadResponse{FilePath: path}))
}

// @Summary Create a CSR activity
// @Tags CSR
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 201 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @router /csr/admin [post]
func (c *csrApiController) create(ctx *fiber.Ctx) error {
	var payload csrapimodels.CSRCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := csr.Instance.Create(payload)
	if err != nil {
		if errors.Is(err, csr.ErrInvalidActivity) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err, "failed to create CSR activity")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary Update a CSR activity
// @Tags CSR
// @Description Partial update, only the provided fields change
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"CSR activity ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /csr/admin/{id} [put]
func (c *csrApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload csrapimodels.CSRUpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := csr.Instance.Update(id, payload)
	if err != nil {
		if errors.Is(err, csr.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err, "failed to update CSR activity")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Deactivate a CSR activity
// @Tags CSR
// @Description Soft delete, the record stays but leaves the public listing
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"CSR activity ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /csr/admin/{id} [delete]
func (c *csrApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = csr.Instance.SoftDelete(id)
	if err != nil {
		if errors.Is(err, csr.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err, "failed to delete CSR activity")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{"message": "CSR activity deleted successfully"}))
}
