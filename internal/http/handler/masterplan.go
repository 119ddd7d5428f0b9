package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"planregistry/internal/model"
	"planregistry/internal/service"
)

// listResponse wraps the full document list returned to the client, which
// filters and paginates it locally.
type listResponse struct {
	Data  []model.MasterPlan `json:"data"`
	Total int                `json:"total"`
}

// CheckDocID reports whether a candidate doc_id is already registered. Used by
// the add-document form for live uniqueness validation; no side effects.
func CheckDocID(svc service.MasterPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		exists, err := svc.CheckDocID(c.UserContext(), c.Params("doc_id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"exists": exists})
	}
}

// CreateMasterPlan registers a new document from a JSON body.
func CreateMasterPlan(svc service.MasterPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.CreateMasterPlanRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		}

		doc, err := svc.Create(c.UserContext(), &req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// ListMasterPlans returns every registered document, newest first.
func ListMasterPlans(svc service.MasterPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(listResponse{Data: items, Total: len(items)})
	}
}

// GetMasterPlan returns one document by its surrogate id.
func GetMasterPlan(svc service.MasterPlanService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}
