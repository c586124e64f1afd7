package apiv1

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"recruitment-portal-backend/controllers"
	"recruitment-portal-backend/lib/application"
	pdfexport "recruitment-portal-backend/lib/export/pdf"
	xlsexport "recruitment-portal-backend/lib/export/xls"
	filestorage "recruitment-portal-backend/lib/file-storage"
	"recruitment-portal-backend/middleware"
	apimodels "recruitment-portal-backend/models/api"
	applicationapimodels "recruitment-portal-backend/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("admin/applications", func(router fiber.Router) {
		// candidate submission is the only public operation on this prefix
		router.Post("/", controller.submit)

		router.Get("getall", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.getAll)
		router.Get("export", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.export)
		router.Get("/", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.list)
		// bulk must be routed ahead of :id
		router.Delete("bulk", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.bulkDelete)
		router.Get(":id/pdf", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.exportPdf)
		router.Patch(":id/status", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.updateStatus)
		router.Get(":id", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.get)
		router.Delete(":id", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Submit a job application
// @Tags Applications
// @Description Candidate submission: ~25 form fields plus pan_card, resume and photo file parts
// @Accept multipart/form-data
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @router /admin/applications/ [post]
func (c *applicationApiController) submit(ctx *fiber.Ctx) error {
	var payload applicationapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	files, vErr := c.readSubmissionFiles(ctx)
	if vErr != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(vErr.Error()))
	}

	view, err := application.Instance.Submit(ctx.UserContext(), payload, files)
	if err != nil {
		switch {
		case errors.As(err, &applicationapimodels.ValidationError{}):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, application.ErrInvalidCaptcha):
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, filestorage.ErrUnsupportedMedia):
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, application.ErrJobNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err, "failed to submit application")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

func (c *applicationApiController) readSubmissionFiles(ctx *fiber.Ctx) (application.SubmissionFiles, error) {
	files := application.SubmissionFiles{}
	missing := []string{}
	for _, part := range []struct {
		name string
		dst  *application.UploadedFile
	}{
		{"pan_card", &files.PanCard},
		{"resume", &files.Resume},
		{"photo", &files.Photo},
	} {
		header, err := ctx.FormFile(part.name)
		if err != nil {
			missing = append(missing, part.name)
			continue
		}
		src, err := header.Open()
		if err != nil {
			return files, errors.Wrapf(err, "failed to open uploaded file %s", part.name)
		}
		content, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return files, errors.Wrapf(err, "failed to read uploaded file %s", part.name)
		}
		*part.dst = application.UploadedFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     content,
		}
	}
	if len(missing) > 0 {
		return files, applicationapimodels.ValidationError{Fields: missing}
	}
	return files, nil
}

// @Summary List applications with pagination
// @Tags Applications
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   skip	query	int	false	"rows to skip"
// @Param   limit	query	int	false	"rows to return, capped at 100"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /admin/applications/getall [get]
func (c *applicationApiController) getAll(ctx *fiber.Ctx) error {
	var scroller apimodels.Scroller
	if err := ctx.QueryParser(&scroller); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	skip, limit := scroller.GetWindow()
	list, err := application.Instance.ListAll(skip, limit)
	if err != nil {
		return c.SendError(ctx, err, "failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List applications with filters and the status aggregate
// @Tags Applications
// @Description The aggregate is scoped by job_id only, never by the status filter
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   job_id	query	int	false	"filter by job"
// @Param   status	query	string	false	"filter by exact status"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /admin/applications/ [get]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	var filter applicationapimodels.ListFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := application.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err, "failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Get one application
// @Tags Applications
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"application ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /admin/applications/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := application.Instance.GetByID(id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err, "failed to get application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update application status
// @Tags Applications
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"application ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @router /admin/applications/{id}/status [patch]
func (c *applicationApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.StatusUpdateRequest
	if len(ctx.Body()) > 0 {
		if err = c.BodyParser(ctx, &payload); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
	}
	if payload.Status == "" {
		payload.Status = ctx.Query("status")
	}
	result, err := application.Instance.UpdateStatus(id, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUnknownStatus):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(err.Error()))
		case errors.Is(err, application.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err, "failed to update application status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Delete one application with its stored files
// @Tags Applications
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"application ID"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /admin/applications/{id} [delete]
func (c *applicationApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = application.Instance.Delete(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err, "failed to delete application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{"message": "Application deleted successfully"}))
}

// @Summary Bulk delete applications
// @Tags Applications
// @Description Unknown identifiers are skipped; only the count actually removed is reported
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body body	[]int	true	"application IDs"
// @Success 200 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /admin/applications/bulk [delete]
func (c *applicationApiController) bulkDelete(ctx *fiber.Ctx) error {
	ids := []uint{}
	if err := c.BodyParser(ctx, &ids); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	deleted, err := application.Instance.BulkDelete(ctx.UserContext(), ids)
	if err != nil {
		return c.SendError(ctx, err, "failed to bulk delete applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationapimodels.BulkDeleteResponse{
		Deleted: deleted,
		Message: fmt.Sprintf("Deleted %d applications", deleted),
	}))
}

// @Summary Export applications to Excel
// @Tags Applications
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   job_id	query	int	false	"filter by job"
// @Param   status	query	string	false	"filter by exact status"
// @Success 200
// @Failure 401 {object} apimodels.Response
// @router /admin/applications/export [get]
func (c *applicationApiController) export(ctx *fiber.Ctx) error {
	var filter applicationapimodels.ListFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := application.Instance.ListForExport(filter)
	if err != nil {
		return c.SendError(ctx, err, "failed to list applications for export")
	}
	data, err := xlsexport.Instance.ExportApplicationList(list)
	if err != nil {
		return c.SendError(ctx, err, "failed to export applications to Excel")
	}
	fileName := fmt.Sprintf("applications-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Export one application to PDF
// @Tags Applications
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	int	true	"application ID"
// @Success 200
// @Failure 401 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /admin/applications/{id}/pdf [get]
func (c *applicationApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := application.Instance.GetRecord(id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err, "failed to get application")
	}
	data, err := pdfexport.GenerateApplicationSummary(rec)
	if err != nil {
		return c.SendError(ctx, err, "failed to export application to PDF")
	}
	fileName := fmt.Sprintf("application-%d.pdf", id)
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}
