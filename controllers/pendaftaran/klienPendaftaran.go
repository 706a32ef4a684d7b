package pendaftaranController

import (
	"errors"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"pkl/config"
	"pkl/database"
	"pkl/middleware"
	"pkl/models"
	"pkl/services"
	"pkl/utils"
)

// Document keys accepted on registration forms. Unknown parts are
// ignored.
var dokumenKeys = []string{"cv", "ktp", "surat_pengantar", "transkrip_nilai", "pas_foto", "laporan_akhir"}

// serviceError maps workflow errors to the response envelope.
func serviceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return middleware.ValidationErrorResponse(c, validationErr.Fields)
	}

	var activeErr *services.ActiveRegistrationError
	if errors.As(err, &activeErr) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, activeErr.Reason, nil)
	}

	switch {
	case errors.Is(err, services.ErrDuplicateRegistration):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, services.ErrProgramUnavailable):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, services.ErrForbidden):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this registration!", nil)
	case errors.Is(err, services.ErrNotCancellable):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only submitted registrations can be cancelled!", nil)
	case errors.Is(err, services.ErrInvalidStatus):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	log.Printf("Unexpected service error: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
}

// buildForm collects applicant fields and stores uploaded documents,
// returning their metadata for the registration record.
func buildForm(c *fiber.Ctx, subDir string) (services.FormPendaftaran, error) {
	form := services.FormPendaftaran{
		NoTelepon:     c.FormValue("no_telepon"),
		Alamat:        c.FormValue("alamat"),
		Motivasi:      c.FormValue("motivasi"),
		InstitusiAsal: c.FormValue("institusi_asal"),
		Jurusan:       c.FormValue("jurusan"),
		Kelas:         c.FormValue("kelas"),
		ProgramStudi:  c.FormValue("program_studi"),
		Semester:      c.FormValue("semester"),
		Dokumen:       make(map[string]models.DokumenInfo),
	}

	multipartForm, err := c.MultipartForm()
	if err != nil {
		// No files attached is fine, the form fields were already read.
		return form, nil
	}

	destDir := filepath.Join(config.AppConfig.UploadDir, subDir)
	for _, key := range dokumenKeys {
		files := multipartForm.File[key]
		if len(files) == 0 {
			continue
		}
		info, err := utils.SaveDokumen(files[0], destDir)
		if err != nil {
			return form, err
		}
		form.Dokumen[key] = info
	}

	return form, nil
}

// DaftarSertifikasi submits a certification registration for the
// logged-in student.
func DaftarSertifikasi(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sertifikasiID := c.Locals("sertifikasiID").(uint)
	batchID := c.Locals("batchID").(uint)

	form, err := buildForm(c, "sertifikasi")
	if err != nil {
		log.Printf("Error saving uploaded documents: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store uploaded documents!", nil)
	}

	pendaftaran, err := services.CreateSertifikasiRegistration(database.Database.Db, userID, sertifikasiID, batchID, form)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Pendaftaran sertifikasi berhasil diajukan!", pendaftaran)
}

// DaftarPKL submits an internship registration for the logged-in
// student.
func DaftarPKL(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	posisiID := c.Locals("posisiID").(uint)

	form, err := buildForm(c, "pkl")
	if err != nil {
		log.Printf("Error saving uploaded documents: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store uploaded documents!", nil)
	}

	pendaftaran, err := services.CreatePKLRegistration(database.Database.Db, userID, posisiID, form)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Pendaftaran PKL berhasil diajukan!", pendaftaran)
}

// dokumenLinks resolves stored document metadata to download URLs.
func dokumenLinks(raw datatypes.JSON) map[string]string {
	dokumen, err := services.DecodeDokumen(raw)
	if err != nil || len(dokumen) == 0 {
		return nil
	}

	links := make(map[string]string, len(dokumen))
	for key, info := range dokumen {
		links[key] = utils.GetFileURL(info.Path)
	}
	return links
}

// GetPendaftaranSaya lists both registration kinds for the logged-in
// student.
func GetPendaftaranSaya(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var pendaftaranSertifikasi []models.PendaftaranSertifikasi
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Sertifikasi").Preload("Batch").
		Order("created_at desc").
		Find(&pendaftaranSertifikasi).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	var pendaftaranPKL []models.PendaftaranPKL
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("PosisiPKL").
		Order("created_at desc").
		Find(&pendaftaranPKL).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch registrations!", nil)
	}

	itemsSertifikasi := make([]fiber.Map, 0, len(pendaftaranSertifikasi))
	for _, p := range pendaftaranSertifikasi {
		itemsSertifikasi = append(itemsSertifikasi, fiber.Map{
			"pendaftaran": p,
			"dokumen_url": dokumenLinks(p.Dokumen),
		})
	}

	itemsPKL := make([]fiber.Map, 0, len(pendaftaranPKL))
	for _, p := range pendaftaranPKL {
		itemsPKL = append(itemsPKL, fiber.Map{
			"pendaftaran": p,
			"dokumen_url": dokumenLinks(p.Dokumen),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registrations fetched successfully!", fiber.Map{
		"sertifikasi": itemsSertifikasi,
		"pkl":         itemsPKL,
	})
}

// BatalkanSertifikasi withdraws a submitted certification registration.
func BatalkanSertifikasi(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	pendaftaranID := c.Locals("pendaftaranID").(uint)

	pendaftaran, err := services.CancelSertifikasiRegistration(database.Database.Db, pendaftaranID, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pendaftaran dibatalkan.", pendaftaran)
}

// BatalkanPKL withdraws a submitted internship registration.
func BatalkanPKL(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	pendaftaranID := c.Locals("pendaftaranID").(uint)

	pendaftaran, err := services.CancelPKLRegistration(database.Database.Db, pendaftaranID, userID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pendaftaran dibatalkan.", pendaftaran)
}
