package katalogController

import (
	"github.com/gofiber/fiber/v2"

	"pkl/database"
	"pkl/middleware"
	"pkl/models"
	katalogValidator "pkl/validators/katalog"
)

// GetSertifikasiList lists active certification programs with their
// batches, paginated.
func GetSertifikasiList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*katalogValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db.Model(&models.Sertifikasi{}).
		Where("status = ? AND is_deleted = ?", models.ProgramAktif, false)

	var total int64
	db.Count(&total)

	var daftarSertifikasi []models.Sertifikasi
	if err := db.Preload("Batches", "is_deleted = ?", false).
		Offset(offset).Limit(reqData.Limit).Order("created_at desc").
		Find(&daftarSertifikasi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sertifikasi!", nil)
	}

	response := map[string]interface{}{
		"sertifikasi": daftarSertifikasi,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sertifikasi fetched successfully!", response)
}

// GetSertifikasiDetail returns one program with batches and, per batch,
// the current registrant count.
func GetSertifikasiDetail(c *fiber.Ctx) error {
	sertifikasiID := c.Locals("paramID").(uint)

	var sertifikasi models.Sertifikasi
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", sertifikasiID, false).
		Preload("Batches", "is_deleted = ?", false).
		First(&sertifikasi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sertifikasi not found!", nil)
	}

	jumlahPendaftar := make(map[uint]int64, len(sertifikasi.Batches))
	for _, batch := range sertifikasi.Batches {
		var count int64
		database.Database.Db.Model(&models.PendaftaranSertifikasi{}).
			Where("batch_id = ? AND status IN ? AND is_deleted = ?",
				batch.ID, []string{models.StatusPengajuan, models.StatusDisetujui}, false).
			Count(&count)
		jumlahPendaftar[batch.ID] = count
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sertifikasi fetched successfully!", fiber.Map{
		"sertifikasi":      sertifikasi,
		"jumlah_pendaftar": jumlahPendaftar,
	})
}

// GetPosisiList lists active internship positions, paginated.
func GetPosisiList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*katalogValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db.Model(&models.PosisiPKL{}).
		Where("status = ? AND is_deleted = ?", models.ProgramAktif, false)

	var total int64
	db.Count(&total)

	var daftarPosisi []models.PosisiPKL
	if err := db.Offset(offset).Limit(reqData.Limit).Order("created_at desc").
		Find(&daftarPosisi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posisi!", nil)
	}

	response := map[string]interface{}{
		"posisi": daftarPosisi,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posisi fetched successfully!", response)
}

// GetPosisiDetail returns one internship position with its registrant
// count.
func GetPosisiDetail(c *fiber.Ctx) error {
	posisiID := c.Locals("paramID").(uint)

	var posisi models.PosisiPKL
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", posisiID, false).First(&posisi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Posisi not found!", nil)
	}

	var jumlahPendaftar int64
	database.Database.Db.Model(&models.PendaftaranPKL{}).
		Where("posisi_pkl_id = ? AND status IN ? AND is_deleted = ?",
			posisi.ID, []string{models.StatusPengajuan, models.StatusDisetujui}, false).
		Count(&jumlahPendaftar)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posisi fetched successfully!", fiber.Map{
		"posisi":           posisi,
		"jumlah_pendaftar": jumlahPendaftar,
	})
}
