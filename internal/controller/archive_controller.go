package controller

import (
	"mentora-be/internal/dto"
	"mentora-be/internal/pkg/serverutils"
	"mentora-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IArchiveController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type archiveController struct {
	service service.IArchiveService
}

func NewArchiveController(service service.IArchiveService) IArchiveController {
	return &archiveController{service: service}
}

func (c *archiveController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/archive-documents")
	h.Get("/", c.List)
	h.Post("/", serverutils.JwtMiddleware, c.Create)
	h.Delete("/:id", serverutils.JwtMiddleware, c.Delete)
}

func (c *archiveController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(), ctx.Query("type"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Documents retrieved", res))
}

func (c *archiveController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateArchiveDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Document created", res))
}

func (c *archiveController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid document id"))
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Document deleted", nil))
}
