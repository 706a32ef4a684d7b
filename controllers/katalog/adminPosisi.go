package katalogController

import (
	"github.com/gofiber/fiber/v2"

	"pkl/database"
	"pkl/middleware"
	"pkl/models"
	katalogValidator "pkl/validators/katalog"
)

// AdminCreatePosisi creates a new internship position
func AdminCreatePosisi(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgram").(*katalogValidator.ProgramRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	posisi := models.PosisiPKL{
		Nama:           reqData.Nama,
		Divisi:         reqData.Divisi,
		Deskripsi:      reqData.Deskripsi,
		Kuota:          reqData.Kuota,
		TanggalMulai:   reqData.TanggalMulai,
		TanggalSelesai: reqData.TanggalSelesai,
		Status:         models.ProgramDraft,
	}
	if reqData.Status != "" {
		posisi.Status = reqData.Status
	}

	if err := database.Database.Db.Create(&posisi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create posisi!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Posisi created successfully!", posisi)
}

// AdminUpdatePosisi updates an internship position
func AdminUpdatePosisi(c *fiber.Ctx) error {
	posisiID := c.Locals("paramID").(uint)

	var posisi models.PosisiPKL
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", posisiID, false).First(&posisi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Posisi not found!", nil)
	}

	reqData, ok := c.Locals("validatedProgram").(*katalogValidator.ProgramRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Nama != "" {
		posisi.Nama = reqData.Nama
	}
	if reqData.Divisi != "" {
		posisi.Divisi = reqData.Divisi
	}
	if reqData.Deskripsi != "" {
		posisi.Deskripsi = reqData.Deskripsi
	}
	if reqData.Kuota > 0 {
		posisi.Kuota = reqData.Kuota
	}
	if !reqData.TanggalMulai.IsZero() {
		posisi.TanggalMulai = reqData.TanggalMulai
	}
	if !reqData.TanggalSelesai.IsZero() {
		posisi.TanggalSelesai = reqData.TanggalSelesai
	}
	if reqData.Status != "" {
		posisi.Status = reqData.Status
	}

	// A partial update may supply only one date; check the pair as it
	// will be stored.
	if !posisi.TanggalSelesai.After(posisi.TanggalMulai) {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"tanggal_selesai": "Tanggal selesai must be after tanggal mulai!",
		})
	}

	if err := database.Database.Db.Save(&posisi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update posisi!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posisi updated successfully!", posisi)
}

// AdminDeletePosisi soft deletes a position unless active registrations
// still reference it.
func AdminDeletePosisi(c *fiber.Ctx) error {
	posisiID := c.Locals("paramID").(uint)

	var posisi models.PosisiPKL
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", posisiID, false).First(&posisi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Posisi not found!", nil)
	}

	var aktif int64
	if err := database.Database.Db.Model(&models.PendaftaranPKL{}).
		Where("posisi_pkl_id = ? AND status IN ? AND is_deleted = ?",
			posisiID, []string{models.StatusPengajuan, models.StatusDisetujui}, false).
		Count(&aktif).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete posisi!", nil)
	}
	if aktif > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Posisi still has active registrations!", nil)
	}

	posisi.IsDeleted = true
	if err := database.Database.Db.Save(&posisi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete posisi!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posisi deleted successfully!", nil)
}
