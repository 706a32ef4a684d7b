package pendaftaranRoutes

import (
	"github.com/gofiber/fiber/v2"

	pendaftaranController "pkl/controllers/pendaftaran"
	"pkl/middleware"
	"pkl/models"
	pendaftaranValidator "pkl/validators/pendaftaran"
)

// SetupPendaftaranRoutes sets up registration submission, cancel and
// admin processing
func SetupPendaftaranRoutes(app *fiber.App) {
	// Client side
	app.Post("/sertifikasi/:id/batch/:batchId/daftar",
		middleware.JWTMiddleware, pendaftaranValidator.DaftarSertifikasi(), pendaftaranController.DaftarSertifikasi)
	app.Post("/pkl/:id/daftar",
		middleware.JWTMiddleware, pendaftaranValidator.DaftarPKL(), pendaftaranController.DaftarPKL)

	userGroup := app.Group("/user", middleware.JWTMiddleware)
	userGroup.Get("/pendaftaran", pendaftaranController.GetPendaftaranSaya)
	userGroup.Put("/pendaftaran/sertifikasi/:id/batal", pendaftaranValidator.Batalkan(), pendaftaranController.BatalkanSertifikasi)
	userGroup.Put("/pendaftaran/pkl/:id/batal", pendaftaranValidator.Batalkan(), pendaftaranController.BatalkanPKL)

	// Admin side
	adminGroup := app.Group("/admin/pendaftaran", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))
	adminGroup.Get("/sertifikasi", pendaftaranValidator.PendaftaranList(), pendaftaranController.AdminGetPendaftaranSertifikasi)
	adminGroup.Get("/pkl", pendaftaranValidator.PendaftaranList(), pendaftaranController.AdminGetPendaftaranPKL)
	adminGroup.Put("/sertifikasi/:id/status", pendaftaranValidator.UpdateStatus(), pendaftaranController.AdminUpdateStatusSertifikasi)
	adminGroup.Put("/pkl/:id/status", pendaftaranValidator.UpdateStatus(), pendaftaranController.AdminUpdateStatusPKL)
}
