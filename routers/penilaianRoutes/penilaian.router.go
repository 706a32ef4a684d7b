package penilaianRoutes

import (
	"github.com/gofiber/fiber/v2"

	penilaianController "pkl/controllers/penilaian"
	"pkl/middleware"
	"pkl/models"
	penilaianValidator "pkl/validators/penilaian"
)

// SetupPenilaianRoutes sets up grading and certificate issuance
func SetupPenilaianRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Post("/penilaian/sertifikasi/batch", penilaianValidator.NilaiBatch(), penilaianController.AdminNilaiSertifikasiBatch)
	adminGroup.Post("/penilaian/pkl/batch", penilaianValidator.NilaiBatch(), penilaianController.AdminNilaiPKLBatch)
	adminGroup.Post("/penilaian/sertifikasi/:id", penilaianValidator.IDParam(), penilaianValidator.Nilai(true), penilaianController.AdminNilaiSertifikasi)
	adminGroup.Post("/penilaian/pkl/:id", penilaianValidator.IDParam(), penilaianValidator.Nilai(false), penilaianController.AdminNilaiPKL)

	adminGroup.Post("/sertifikat/sertifikasi/:id/terbit", penilaianValidator.IDParam(), penilaianController.AdminTerbitkanSertifikatSertifikasi)
	adminGroup.Post("/sertifikat/pkl/:id/terbit", penilaianValidator.IDParam(), penilaianController.AdminTerbitkanSertifikatPKL)

	// Client side
	app.Get("/user/sertifikat", middleware.JWTMiddleware, penilaianController.GetSertifikatSaya)
}
