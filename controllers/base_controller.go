package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	apimodels "recruitment-portal-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (uint, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid identifier")
	}
	return uint(id), nil
}

func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error, message string) error {
	log.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}
