package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"planregistry/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers stay
// thin; all business rules live in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.MasterPlanService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	plans := app.Group("/api/master-plans")

	// Static segments before the /:id catch-all.
	plans.Get("/check-doc-id/:doc_id", CheckDocID(svc))
	plans.Post("/upload", UploadFile(svc))
	plans.Delete("/upload", DeleteFile(svc))
	plans.Get("/download/:doc_id/:fileName", DownloadFile(svc))

	plans.Get("/", ListMasterPlans(svc))
	plans.Post("/", CreateMasterPlan(svc))
	plans.Get("/:id", GetMasterPlan(svc))
}
