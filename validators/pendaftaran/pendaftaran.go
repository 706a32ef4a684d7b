package pendaftaranValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pkl/middleware"
	"pkl/models"
)

// PendaftaranListRequest is the validated admin list query.
type PendaftaranListRequest struct {
	Page   int
	Limit  int
	Status string
}

// StatusRequest is the validated admin decision body.
type StatusRequest struct {
	Status  string `json:"status"`
	Catatan string `json:"catatan"`
}

func paramUint(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, false
	}
	return uint(value), true
}

// DaftarSertifikasi validates the program and batch path parameters and
// the basic multipart form fields of a certification registration. The
// institution-conditional field rules are re-checked by the service.
func DaftarSertifikasi() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sertifikasiID, ok := paramUint(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid sertifikasi ID!", nil)
		}
		batchID, ok := paramUint(c, "batchId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid batch ID!", nil)
		}

		if err := validateFormFields(c); err != nil {
			return err
		}

		c.Locals("sertifikasiID", sertifikasiID)
		c.Locals("batchID", batchID)
		return c.Next()
	}
}

// DaftarPKL validates the position path parameter and the basic
// multipart form fields of an internship registration.
func DaftarPKL() fiber.Handler {
	return func(c *fiber.Ctx) error {
		posisiID, ok := paramUint(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid posisi ID!", nil)
		}

		if err := validateFormFields(c); err != nil {
			return err
		}

		c.Locals("posisiID", posisiID)
		return c.Next()
	}
}

func validateFormFields(c *fiber.Ctx) error {
	errors := make(map[string]string)

	if strings.TrimSpace(c.FormValue("no_telepon")) == "" {
		errors["no_telepon"] = "No telepon wajib diisi!"
	}
	if strings.TrimSpace(c.FormValue("alamat")) == "" {
		errors["alamat"] = "Alamat wajib diisi!"
	}

	institusi := c.FormValue("institusi_asal")
	if institusi != models.InstitusiSekolah && institusi != models.InstitusiUniversitas {
		errors["institusi_asal"] = "Institusi asal harus Sekolah atau Universitas!"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}
	return nil
}

// Batalkan validates the :id path parameter of a cancel request.
func Batalkan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pendaftaranID, ok := paramUint(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pendaftaran ID!", nil)
		}

		c.Locals("pendaftaranID", pendaftaranID)
		return c.Next()
	}
}

// PendaftaranList validates the admin list query with an optional
// status filter.
func PendaftaranList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int   `query:"page"`
			Limit  *int   `query:"limit"`
			Status string `query:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		list := &PendaftaranListRequest{Page: 1, Limit: 10}
		if reqData.Page != nil {
			if *reqData.Page < 1 {
				return middleware.ValidationErrorResponse(c, map[string]string{"page": "Page must be greater than 0!"})
			}
			list.Page = *reqData.Page
		}
		if reqData.Limit != nil {
			if *reqData.Limit < 1 {
				return middleware.ValidationErrorResponse(c, map[string]string{"limit": "Limit must be greater than 0!"})
			}
			list.Limit = *reqData.Limit
		}

		if reqData.Status != "" {
			switch reqData.Status {
			case models.StatusPengajuan, models.StatusDisetujui, models.StatusDitolak, models.StatusDibatalkan:
				list.Status = reqData.Status
			default:
				return middleware.ValidationErrorResponse(c, map[string]string{"status": "Invalid status filter!"})
			}
		}

		c.Locals("validatedPendaftaranList", list)
		return c.Next()
	}
}

// UpdateStatus validates the admin decision body. The status value
// itself is re-checked by the service against the closed vocabulary.
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pendaftaranID, ok := paramUint(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pendaftaran ID!", nil)
		}

		reqData := new(StatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Status) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"status": "Status is required!"})
		}

		c.Locals("pendaftaranID", pendaftaranID)
		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
