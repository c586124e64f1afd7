package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"recruitment-portal-backend/controllers"
	"recruitment-portal-backend/lib/job"
	"recruitment-portal-backend/middleware"
	apimodels "recruitment-portal-backend/models/api"
	jobapimodels "recruitment-portal-backend/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("/", controller.list)

		// admin routes go ahead of the :id wildcard
		router.Post("admin", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.create)
		router.Put("admin/:id", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.update)

		router.Get(":id", controller.get)
	})
}

// @Summary List job postings
// @Tags Jobs
// @Param   page	query	int	false	"page number, 1-based"
// @Param   limit	query	int	false	"page size, capped at 100"
// @Success 200 {object} apimodels.Response
// @router /jobs/ [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	var pagination apimodels.Pagination
	if err := ctx.QueryParser(&pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := pagination.GetPage()
	result, err := job.Instance.List(page, limit)
	if err != nil {
		return c.SendError(ctx, err, "failed to list jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Get one job posting
// @Tags Jobs
// @Param   id	path	int	true	"job ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := job.Instance.GetByID(id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err, "failed to get job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Create a job posting
// @Tags Jobs
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 201 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @router /jobs/admin [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(err.Error()))
	}
	view, err := job.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err, "failed to create job")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary Update a job posting
// @Tags Jobs
// @Description Full replacement of the posting fields
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"job ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @router /jobs/admin/{id} [put]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload jobapimodels.JobData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(err.Error()))
	}
	view, err := job.Instance.Update(id, payload)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err, "failed to update job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
