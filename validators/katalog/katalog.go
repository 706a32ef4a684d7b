package katalogValidator

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"pkl/middleware"
	"pkl/models"
)

// ProgramRequest is the validated payload for creating or updating a
// certification program or an internship position. Empty fields mean
// "leave unchanged" on update.
type ProgramRequest struct {
	Nama      string `json:"nama"`
	Kategori  string `json:"kategori"`
	Divisi    string `json:"divisi"`
	Deskripsi string `json:"deskripsi"`
	Status    string `json:"status"`
	Kuota     int    `json:"kuota"`

	TanggalMulai   time.Time `json:"-"`
	TanggalSelesai time.Time `json:"-"`
	MulaiRaw       string    `json:"tanggal_mulai"`
	SelesaiRaw     string    `json:"tanggal_selesai"`
}

// BatchRequest is the validated payload for creating or updating a
// certification batch.
type BatchRequest struct {
	Nama           string    `json:"nama"`
	Kuota          int       `json:"kuota"`
	Status         string    `json:"status"`
	TanggalMulai   time.Time `json:"-"`
	TanggalSelesai time.Time `json:"-"`
	MulaiRaw       string    `json:"tanggal_mulai"`
	SelesaiRaw     string    `json:"tanggal_selesai"`
}

// ListRequest is pagination after defaults are applied.
type ListRequest struct {
	Page  int
	Limit int
}

var statusProgramValid = map[string]bool{
	models.ProgramDraft:   true,
	models.ProgramAktif:   true,
	models.ProgramPenuh:   true,
	models.ProgramSelesai: true,
}

// IDParam validates the :id path parameter and stores it as uint.
func IDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		c.Locals("paramID", uint(id))
		return c.Next()
	}
}

// CreateSertifikasi validates the program creation body.
func CreateSertifikasi() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgramRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Nama) == "" {
			errors["nama"] = "Nama is required!"
		} else if len(strings.TrimSpace(reqData.Nama)) < 3 {
			errors["nama"] = "Nama must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Kategori) == "" {
			errors["kategori"] = "Kategori is required!"
		}

		if reqData.Status != "" && !statusProgramValid[reqData.Status] {
			errors["status"] = "Invalid status value!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgram", reqData)
		return c.Next()
	}
}

// UpdateSertifikasi validates the partial-update body.
func UpdateSertifikasi() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgramRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != "" && !statusProgramValid[reqData.Status] {
			errors["status"] = "Invalid status value!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgram", reqData)
		return c.Next()
	}
}

// Batch validates a batch create/update body, including date parsing
// and ordering.
func Batch(requireDates bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BatchRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if requireDates && strings.TrimSpace(reqData.Nama) == "" {
			errors["nama"] = "Nama is required!"
		}
		if reqData.Kuota < 0 {
			errors["kuota"] = "Kuota cannot be negative!"
		}
		if reqData.Status != "" && !statusProgramValid[reqData.Status] {
			errors["status"] = "Invalid status value!"
		}

		parseDates(reqData.MulaiRaw, reqData.SelesaiRaw, requireDates, errors,
			&reqData.TanggalMulai, &reqData.TanggalSelesai)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBatch", reqData)
		return c.Next()
	}
}

// Posisi validates an internship position create/update body.
func Posisi(requireDates bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgramRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if requireDates {
			if strings.TrimSpace(reqData.Nama) == "" {
				errors["nama"] = "Nama is required!"
			}
			if strings.TrimSpace(reqData.Divisi) == "" {
				errors["divisi"] = "Divisi is required!"
			}
		}
		if reqData.Kuota < 0 {
			errors["kuota"] = "Kuota cannot be negative!"
		}
		if reqData.Status != "" && !statusProgramValid[reqData.Status] {
			errors["status"] = "Invalid status value!"
		}

		parseDates(reqData.MulaiRaw, reqData.SelesaiRaw, requireDates, errors,
			&reqData.TanggalMulai, &reqData.TanggalSelesai)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgram", reqData)
		return c.Next()
	}
}

// List applies pagination defaults (page 1, limit 10).
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		list := &ListRequest{Page: 1, Limit: 10}
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

		c.Locals("validatedList", list)
		return c.Next()
	}
}

func parseDates(mulaiRaw, selesaiRaw string, required bool, errors map[string]string, mulai, selesai *time.Time) {
	const layout = "2006-01-02"

	if mulaiRaw != "" {
		t, err := time.Parse(layout, mulaiRaw)
		if err != nil {
			errors["tanggal_mulai"] = "Invalid date, expected YYYY-MM-DD!"
		} else {
			*mulai = t
		}
	} else if required {
		errors["tanggal_mulai"] = "Tanggal mulai is required!"
	}

	if selesaiRaw != "" {
		t, err := time.Parse(layout, selesaiRaw)
		if err != nil {
			errors["tanggal_selesai"] = "Invalid date, expected YYYY-MM-DD!"
		} else {
			*selesai = t
		}
	} else if required {
		errors["tanggal_selesai"] = "Tanggal selesai is required!"
	}

	if !mulai.IsZero() && !selesai.IsZero() && !selesai.After(*mulai) {
		errors["tanggal_selesai"] = "Tanggal selesai must be after tanggal mulai!"
	}
}
