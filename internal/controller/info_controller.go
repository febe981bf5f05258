package controller

import (
	"mentora-be/internal/dto"
	"mentora-be/internal/pkg/serverutils"
	"mentora-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// infoController exposes the answer-corpus management surface: info
// items, knowledge entries, unanswered queries and synonyms. Everything
// except reads is admin-guarded.
type IInfoController interface {
	RegisterRoutes(r fiber.Router)
}

type infoController struct {
	service service.IInfoService
}

func NewInfoController(service service.IInfoService) IInfoController {
	return &infoController{service: service}
}

func (c *infoController) RegisterRoutes(r fiber.Router) {
	info := r.Group("/info-items")
	info.Get("/", c.listInfoItems)
	info.Post("/", serverutils.JwtMiddleware, c.createInfoItem)
	info.Put("/:id", serverutils.JwtMiddleware, c.updateInfoItem)
	info.Delete("/:id", serverutils.JwtMiddleware, c.deleteInfoItem)

	knowledge := r.Group("/knowledge-entries")
	knowledge.Get("/", c.listKnowledgeEntries)
	knowledge.Post("/", serverutils.JwtMiddleware, c.createKnowledgeEntry)
	knowledge.Delete("/:id", serverutils.JwtMiddleware, c.deleteKnowledgeEntry)

	unanswered := r.Group("/unanswered-queries", serverutils.JwtMiddleware)
	unanswered.Get("/", c.listUnansweredQueries)
	unanswered.Delete("/:id", c.deleteUnansweredQuery)

	synonyms := r.Group("/synonyms")
	synonyms.Get("/", c.listSynonyms)
	synonyms.Post("/", serverutils.JwtMiddleware, c.createSynonym)
	synonyms.Delete("/:id", serverutils.JwtMiddleware, c.deleteSynonym)
}

func (c *infoController) listInfoItems(ctx *fiber.Ctx) error {
	res, err := c.service.ListInfoItems(ctx.Context(), ctx.Query("category"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Info items retrieved", res))
}

func (c *infoController) createInfoItem(ctx *fiber.Ctx) error {
	var req dto.CreateInfoItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateInfoItem(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Info item created", res))
}

func (c *infoController) updateInfoItem(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid info item id"))
	}

	var req dto.CreateInfoItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdateInfoItem(ctx.Context(), id, &req)
	if err != nil {
		if err == service.ErrInfoItemNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Info item updated", res))
}

func (c *infoController) deleteInfoItem(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid info item id"))
	}

	if err := c.service.DeleteInfoItem(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Info item deleted", nil))
}

func (c *infoController) listKnowledgeEntries(ctx *fiber.Ctx) error {
	res, err := c.service.ListKnowledgeEntries(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Knowledge entries retrieved", res))
}

func (c *infoController) createKnowledgeEntry(ctx *fiber.Ctx) error {
	var req dto.CreateKnowledgeEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateKnowledgeEntry(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Knowledge entry created", res))
}

func (c *infoController) deleteKnowledgeEntry(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid knowledge entry id"))
	}

	if err := c.service.DeleteKnowledgeEntry(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Knowledge entry deleted", nil))
}

func (c *infoController) listUnansweredQueries(ctx *fiber.Ctx) error {
	res, err := c.service.ListUnansweredQueries(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Unanswered queries retrieved", res))
}

func (c *infoController) deleteUnansweredQuery(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query id"))
	}

	if err := c.service.DeleteUnansweredQuery(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Unanswered query deleted", nil))
}

func (c *infoController) listSynonyms(ctx *fiber.Ctx) error {
	res, err := c.service.ListSynonyms(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Synonyms retrieved", res))
}

func (c *infoController) createSynonym(ctx *fiber.Ctx) error {
	var req dto.CreateSynonymRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateSynonym(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Synonym created", res))
}

func (c *infoController) deleteSynonym(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid synonym id"))
	}

	if err := c.service.DeleteSynonym(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Synonym deleted", nil))
}
