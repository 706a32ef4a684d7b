package penilaianController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"pkl/database"
	"pkl/middleware"
	"pkl/models"
	"pkl/services"
	"pkl/utils"
	penilaianValidator "pkl/validators/penilaian"
)

// serviceError maps workflow errors to the response envelope.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidStatus):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	log.Printf("Unexpected service error: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
}

// AdminNilaiSertifikasi grades one certification registration.
// Re-grading overwrites the existing assessment.
func AdminNilaiSertifikasi(c *fiber.Ctx) error {
	penilaiID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	pendaftaranID := c.Locals("pendaftaranID").(uint)
	reqData := c.Locals("validatedNilai").(*penilaianValidator.NilaiRequest)

	penilaian, err := services.GradeSertifikasi(database.Database.Db, pendaftaranID, penilaiID, services.NilaiSertifikasi{
		Hasil:        reqData.Hasil,
		Catatan:      reqData.Catatan,
		NilaiTeori:   reqData.NilaiTeori,
		NilaiPraktik: reqData.NilaiPraktik,
	})
	if err != nil {
		return serviceError(c, err)
	}

	go notifyPenilaianSertifikasi(penilaian)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Penilaian saved successfully!", penilaian)
}

// AdminNilaiSertifikasiBatch grades a list of certification
// registrations as one unit.
func AdminNilaiSertifikasiBatch(c *fiber.Ctx) error {
	penilaiID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedNilaiBatch").(*penilaianValidator.NilaiBatchRequest)

	entries := make([]services.NilaiBatchEntry, 0, len(reqData.Penilaian))
	for _, entry := range reqData.Penilaian {
		entries = append(entries, services.NilaiBatchEntry{
			PendaftaranID: entry.PendaftaranID,
			Hasil:         entry.Hasil,
			Catatan:       entry.Catatan,
		})
	}

	hasil, err := services.GradeSertifikasiBatch(database.Database.Db, penilaiID, entries)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Penilaian batch saved successfully!", hasil)
}

// AdminNilaiPKL grades one internship registration.
func AdminNilaiPKL(c *fiber.Ctx) error {
	penilaiID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	pendaftaranID := c.Locals("pendaftaranID").(uint)
	reqData := c.Locals("validatedNilai").(*penilaianValidator.NilaiRequest)

	penilaian, err := services.GradePKL(database.Database.Db, pendaftaranID, penilaiID, services.NilaiPKL{
		Hasil:   reqData.Hasil,
		Catatan: reqData.Catatan,
	})
	if err != nil {
		return serviceError(c, err)
	}

	go notifyPenilaianPKL(penilaian)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Penilaian saved successfully!", penilaian)
}

// AdminNilaiPKLBatch grades a list of internship registrations as one
// unit.
func AdminNilaiPKLBatch(c *fiber.Ctx) error {
	penilaiID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedNilaiBatch").(*penilaianValidator.NilaiBatchRequest)

	entries := make([]services.NilaiBatchEntry, 0, len(reqData.Penilaian))
	for _, entry := range reqData.Penilaian {
		entries = append(entries, services.NilaiBatchEntry{
			PendaftaranID: entry.PendaftaranID,
			Hasil:         entry.Hasil,
			Catatan:       entry.Catatan,
		})
	}

	hasil, err := services.GradePKLBatch(database.Database.Db, penilaiID, entries)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Penilaian batch saved successfully!", hasil)
}

// AdminTerbitkanSertifikatSertifikasi issues a certificate from a
// passed certification assessment.
func AdminTerbitkanSertifikatSertifikasi(c *fiber.Ctx) error {
	pendaftaranID := c.Locals("pendaftaranID").(uint)

	sertifikat, err := services.IssueSertifikatSertifikasi(database.Database.Db, pendaftaranID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Sertifikat issued successfully!", sertifikat)
}

// AdminTerbitkanSertifikatPKL issues a certificate from a passed
// internship assessment.
func AdminTerbitkanSertifikatPKL(c *fiber.Ctx) error {
	pendaftaranID := c.Locals("pendaftaranID").(uint)

	sertifikat, err := services.IssueSertifikatPKL(database.Database.Db, pendaftaranID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Sertifikat issued successfully!", sertifikat)
}

func notifyPenilaianSertifikasi(penilaian *models.PenilaianSertifikasi) {
	db := database.Database.Db

	var pendaftaran models.PendaftaranSertifikasi
	if err := db.Where("id = ?", penilaian.PendaftaranID).First(&pendaftaran).Error; err != nil {
		log.Printf("Error fetching pendaftaran %d for notification: %v", penilaian.PendaftaranID, err)
		return
	}
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

	if err := utils.SendPenilaianNotification(user.Email, user.Nama, sertifikasi.Nama, penilaian.Hasil); err != nil {
		log.Printf("Error sending penilaian notification to %s: %v", user.Email, err)
	}
}

func notifyPenilaianPKL(penilaian *models.PenilaianPKL) {
	db := database.Database.Db

	var pendaftaran models.PendaftaranPKL
	if err := db.Where("id = ?", penilaian.PendaftaranID).First(&pendaftaran).Error; err != nil {
		log.Printf("Error fetching pendaftaran %d for notification: %v", penilaian.PendaftaranID, err)
		return
	}
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

	if err := utils.SendPenilaianNotification(user.Email, user.Nama, posisi.Nama, penilaian.Hasil); err != nil {
		log.Printf("Error sending penilaian notification to %s: %v", user.Email, err)
	}
}
