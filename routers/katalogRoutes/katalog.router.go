package katalogRoutes

import (
	"github.com/gofiber/fiber/v2"

	katalogController "pkl/controllers/katalog"
	"pkl/middleware"
	"pkl/models"
	katalogValidator "pkl/validators/katalog"
)

// SetupKatalogRoutes sets up the program catalog, client and admin side
func SetupKatalogRoutes(app *fiber.App) {
	// Client-facing catalog (active programs only)
	sertifikasiGroup := app.Group("/sertifikasi")
	sertifikasiGroup.Get("/list", middleware.JWTMiddleware, katalogValidator.List(), katalogController.GetSertifikasiList)
	sertifikasiGroup.Get("/:id", middleware.JWTMiddleware, katalogValidator.IDParam(), katalogController.GetSertifikasiDetail)

	pklGroup := app.Group("/pkl")
	pklGroup.Get("/list", middleware.JWTMiddleware, katalogValidator.List(), katalogController.GetPosisiList)
	pklGroup.Get("/:id", middleware.JWTMiddleware, katalogValidator.IDParam(), katalogController.GetPosisiDetail)

	// Admin catalog management
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Post("/sertifikasi", katalogValidator.CreateSertifikasi(), katalogController.AdminCreateSertifikasi)
	adminGroup.Put("/sertifikasi/:id", katalogValidator.IDParam(), katalogValidator.UpdateSertifikasi(), katalogController.AdminUpdateSertifikasi)
	adminGroup.Delete("/sertifikasi/:id", katalogValidator.IDParam(), katalogController.AdminDeleteSertifikasi)

	adminGroup.Post("/sertifikasi/:id/batch", katalogValidator.IDParam(), katalogValidator.Batch(true), katalogController.AdminCreateBatch)
	adminGroup.Put("/batch/:id", katalogValidator.IDParam(), katalogValidator.Batch(false), katalogController.AdminUpdateBatch)
	adminGroup.Delete("/batch/:id", katalogValidator.IDParam(), katalogController.AdminDeleteBatch)

	adminGroup.Post("/posisi", katalogValidator.Posisi(true), katalogController.AdminCreatePosisi)
	adminGroup.Put("/posisi/:id", katalogValidator.IDParam(), katalogValidator.Posisi(false), katalogController.AdminUpdatePosisi)
	adminGroup.Delete("/posisi/:id", katalogValidator.IDParam(), katalogController.AdminDeletePosisi)
}
