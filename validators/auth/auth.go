package authValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pkl/middleware"
)

var validate = validator.New()

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Nama      string `json:"nama" validate:"required,min=3"`
			Email     string `json:"email" validate:"required,email"`
			NoTelepon string `json:"no_telepon" validate:"required,min=8"`
			Password  string `json:"password" validate:"required,min=8"`
			Alamat    string `json:"alamat"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// validationMessages flattens validator.ValidationErrors into the
// field->message map the response envelope expects.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["request"] = "Invalid request data!"
		return messages
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			messages[fieldErr.Field()] = "This field is required!"
		case "email":
			messages[fieldErr.Field()] = "Invalid email address!"
		case "min":
			messages[fieldErr.Field()] = "Value is too short!"
		default:
			messages[fieldErr.Field()] = "Invalid value!"
		}
	}
	return messages
}
