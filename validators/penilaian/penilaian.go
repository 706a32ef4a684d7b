package penilaianValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pkl/middleware"
)

// NilaiRequest is the validated grading body for one registration.
type NilaiRequest struct {
	Hasil        string   `json:"hasil"`
	Catatan      string   `json:"catatan"`
	NilaiTeori   *float64 `json:"nilai_teori"`
	NilaiPraktik *float64 `json:"nilai_praktik"`
}

// NilaiBatchRequest is the validated bulk grading body.
type NilaiBatchRequest struct {
	Penilaian []struct {
		PendaftaranID uint   `json:"pendaftaran_id"`
		Hasil         string `json:"hasil"`
		Catatan       string `json:"catatan"`
	} `json:"penilaian"`
}

// IDParam validates the :id path parameter and stores it as uint.
func IDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Pendaftaran ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid pendaftaran ID!", nil)
		}

		c.Locals("pendaftaranID", uint(id))
		return c.Next()
	}
}

// Nilai validates a single grading body. The outcome vocabulary itself
// is enforced by the service.
func Nilai(withScores bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(NilaiRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Hasil) == "" {
			errors["hasil"] = "Hasil is required!"
		}

		if withScores {
			if reqData.NilaiTeori != nil && (*reqData.NilaiTeori < 0 || *reqData.NilaiTeori > 100) {
				errors["nilai_teori"] = "Nilai teori must be between 0 and 100!"
			}
			if reqData.NilaiPraktik != nil && (*reqData.NilaiPraktik < 0 || *reqData.NilaiPraktik > 100) {
				errors["nilai_praktik"] = "Nilai praktik must be between 0 and 100!"
			}
		} else {
			reqData.NilaiTeori = nil
			reqData.NilaiPraktik = nil
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNilai", reqData)
		return c.Next()
	}
}

// NilaiBatch validates a bulk grading body.
func NilaiBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(NilaiBatchRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Penilaian) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"penilaian": "At least one entry is required!"})
		}

		errors := make(map[string]string)
		for i, entry := range reqData.Penilaian {
			if entry.PendaftaranID == 0 {
				errors["penilaian."+strconv.Itoa(i)+".pendaftaran_id"] = "Pendaftaran ID is required!"
			}
			if strings.TrimSpace(entry.Hasil) == "" {
				errors["penilaian."+strconv.Itoa(i)+".hasil"] = "Hasil is required!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNilaiBatch", reqData)
		return c.Next()
	}
}
