package pendaftaranController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"pkl/database"
	"pkl/middleware"
	"pkl/models"
	"pkl/services"
	"pkl/utils"
	pendaftaranValidator "pkl/validators/pendaftaran"
)

// AdminGetPendaftaranSertifikasi lists certification registrations with
// an optional status filter.
func AdminGetPendaftaranSertifikasi(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPendaftaranList").(*pendaftaranValidator.PendaftaranListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db.Model(&models.PendaftaranSertifikasi{}).
		Where("is_deleted = ?", false)
	if reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}

	var total int64
	db.Count(&total)

	var daftarPendaftaran []models.PendaftaranSertifikasi
	if err := db.Preload("User").Preload("Sertifikasi").Preload("Batch").
		Offset(offset).Limit(reqData.Limit).Order("created_at desc").
		Find(&daftarPendaftaran).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	response := map[string]interface{}{
		"pendaftaran": daftarPendaftaran,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", response)
}

// AdminGetPendaftaranPKL lists internship registrations with an
// optional status filter.
func AdminGetPendaftaranPKL(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPendaftaranList").(*pendaftaranValidator.PendaftaranListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db.Model(&models.PendaftaranPKL{}).
		Where("is_deleted = ?", false)
	if reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}

	var total int64
	db.Count(&total)

	var daftarPendaftaran []models.PendaftaranPKL
	if err := db.Preload("User").Preload("PosisiPKL").
		Offset(offset).Limit(reqData.Limit).Order("created_at desc").
		Find(&daftarPendaftaran).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	response := map[string]interface{}{
		"pendaftaran": daftarPendaftaran,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", response)
}

// AdminUpdateStatusSertifikasi applies an admin decision and notifies
// the student.
func AdminUpdateStatusSertifikasi(c *fiber.Ctx) error {
	pendaftaranID := c.Locals("pendaftaranID").(uint)
	reqData := c.Locals("validatedStatus").(*pendaftaranValidator.StatusRequest)

	pendaftaran, err := services.UpdateSertifikasiStatus(database.Database.Db, pendaftaranID, reqData.Status, reqData.Catatan)
	if err != nil {
		return serviceError(c, err)
	}

	go notifyStatusSertifikasi(pendaftaran)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Status updated successfully!", pendaftaran)
}

// AdminUpdateStatusPKL applies an admin decision and notifies the
// student.
func AdminUpdateStatusPKL(c *fiber.Ctx) error {
	pendaftaranID := c.Locals("pendaftaranID").(uint)
	reqData := c.Locals("validatedStatus").(*pendaftaranValidator.StatusRequest)

	pendaftaran, err := services.UpdatePKLStatus(database.Database.Db, pendaftaranID, reqData.Status, reqData.Catatan)
	if err != nil {
		return serviceError(c, err)
	}

	go notifyStatusPKL(pendaftaran)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Status updated successfully!", pendaftaran)
}

func notifyStatusSertifikasi(pendaftaran *models.PendaftaranSertifikasi) {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", pendaftaran.UserID).First(&user).Error; err != nil {
		log.Printf("Error fetching user %d for notification: %v", pendaftaran.UserID, err)
		return
	}
	var sertifikasi models.Sertifikasi
	if err := db.Where("id = ?", pendaftaran.SertifikasiID).First(&sertifikasi).Error; err != nil {
		log.Printf("Error fetching sertifikasi %d for notification: %v", pendaftaran.SertifikasiID, err)
		return
	}

	if err := utils.SendStatusNotification(user.Email, user.Nama, sertifikasi.Nama, pendaftaran.Status, pendaftaran.CatatanAdmin); err != nil {
		log.Printf("Error sending status notification to %s: %v", user.Email, err)
	}
}

func notifyStatusPKL(pendaftaran *models.PendaftaranPKL) {
	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", pendaftaran.UserID).First(&user).Error; err != nil {
		log.Printf("Error fetching user %d for notification: %v", pendaftaran.UserID, err)
		return
	}
	var posisi models.PosisiPKL
	if err := db.Where("id = ?", pendaftaran.PosisiPKLID).First(&posisi).Error; err != nil {
		log.Printf("Error fetching posisi %d for notification: %v", pendaftaran.PosisiPKLID, err)
		return
	}

	if err := utils.SendStatusNotification(user.Email, user.Nama, posisi.Nama, pendaftaran.Status, pendaftaran.CatatanAdmin); err != nil {
		log.Printf("Error sending status notification to %s: %v", user.Email, err)
	}
}
