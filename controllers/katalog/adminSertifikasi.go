package katalogController

import (
	"github.com/gofiber/fiber/v2"

	"pkl/database"
	"pkl/middleware"
	"pkl/models"
	katalogValidator "pkl/validators/katalog"
)

// AdminCreateSertifikasi creates a new certification program
func AdminCreateSertifikasi(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgram").(*katalogValidator.ProgramRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	sertifikasi := models.Sertifikasi{
		Nama:      reqData.Nama,
		Kategori:  reqData.Kategori,
		Deskripsi: reqData.Deskripsi,
		Status:    models.ProgramDraft,
	}
	if reqData.Status != "" {
		sertifikasi.Status = reqData.Status
	}

	if err := database.Database.Db.Create(&sertifikasi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sertifikasi!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Sertifikasi created successfully!", sertifikasi)
}

// AdminUpdateSertifikasi updates an existing certification program
func AdminUpdateSertifikasi(c *fiber.Ctx) error {
	sertifikasiID := c.Locals("paramID").(uint)

	var sertifikasi models.Sertifikasi
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sertifikasiID, false).First(&sertifikasi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sertifikasi not found!", nil)
	}

	reqData, ok := c.Locals("validatedProgram").(*katalogValidator.ProgramRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Nama != "" {
		sertifikasi.Nama = reqData.Nama
	}
	if reqData.Kategori != "" {
		sertifikasi.Kategori = reqData.Kategori
	}
	if reqData.Deskripsi != "" {
		sertifikasi.Deskripsi = reqData.Deskripsi
	}
	if reqData.Status != "" {
		sertifikasi.Status = reqData.Status
	}

	if err := database.Database.Db.Save(&sertifikasi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update sertifikasi!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sertifikasi updated successfully!", sertifikasi)
}

// AdminDeleteSertifikasi soft deletes a program. Programs referenced by
// active registrations cannot be removed.
func AdminDeleteSertifikasi(c *fiber.Ctx) error {
	sertifikasiID := c.Locals("paramID").(uint)

	var sertifikasi models.Sertifikasi
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sertifikasiID, false).First(&sertifikasi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sertifikasi not found!", nil)
	}

	var aktif int64
	if err := database.Database.Db.Model(&models.PendaftaranSertifikasi{}).
		Where("sertifikasi_id = ? AND status IN ? AND is_deleted = ?",
			sertifikasiID, []string{models.StatusPengajuan, models.StatusDisetujui}, false).
		Count(&aktif).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sertifikasi!", nil)
	}
	if aktif > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Sertifikasi still has active registrations!", nil)
	}

	sertifikasi.IsDeleted = true
	if err := database.Database.Db.Save(&sertifikasi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sertifikasi!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sertifikasi deleted successfully!", nil)
}

// AdminCreateBatch adds a batch to a certification program
func AdminCreateBatch(c *fiber.Ctx) error {
	sertifikasiID := c.Locals("paramID").(uint)

	var sertifikasi models.Sertifikasi
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sertifikasiID, false).First(&sertifikasi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sertifikasi not found!", nil)
	}

	reqData, ok := c.Locals("validatedBatch").(*katalogValidator.BatchRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	batch := models.Batch{
		SertifikasiID:  sertifikasiID,
		Nama:           reqData.Nama,
		TanggalMulai:   reqData.TanggalMulai,
		TanggalSelesai: reqData.TanggalSelesai,
		Kuota:          reqData.Kuota,
		Status:         models.ProgramDraft,
	}
	if reqData.Status != "" {
		batch.Status = reqData.Status
	}

	if err := database.Database.Db.Create(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Batch created successfully!", batch)
}

// AdminUpdateBatch updates a batch
func AdminUpdateBatch(c *fiber.Ctx) error {
	batchID := c.Locals("paramID").(uint)

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	reqData, ok := c.Locals("validatedBatch").(*katalogValidator.BatchRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Nama != "" {
		batch.Nama = reqData.Nama
	}
	if !reqData.TanggalMulai.IsZero() {
		batch.TanggalMulai = reqData.TanggalMulai
	}
	if !reqData.TanggalSelesai.IsZero() {
		batch.TanggalSelesai = reqData.TanggalSelesai
	}
	if reqData.Kuota > 0 {
		batch.Kuota = reqData.Kuota
	}
	if reqData.Status != "" {
		batch.Status = reqData.Status
	}

	// A partial update may supply only one date; check the pair as it
	// will be stored.
	if !batch.TanggalSelesai.After(batch.TanggalMulai) {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"tanggal_selesai": "Tanggal selesai must be after tanggal mulai!",
		})
	}

	if err := database.Database.Db.Save(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch updated successfully!", batch)
}

// AdminDeleteBatch soft deletes a batch. Batches referenced by active
// registrations cannot be removed.
func AdminDeleteBatch(c *fiber.Ctx) error {
	batchID := c.Locals("paramID").(uint)

	var batch models.Batch
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	var aktif int64
	if err := database.Database.Db.Model(&models.PendaftaranSertifikasi{}).
		Where("batch_id = ? AND status IN ? AND is_deleted = ?",
			batchID, []string{models.StatusPengajuan, models.StatusDisetujui}, false).
		Count(&aktif).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete batch!", nil)
	}
	if aktif > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Batch still has active registrations!", nil)
	}

	batch.IsDeleted = true
	if err := database.Database.Db.Save(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch deleted successfully!", nil)
}
