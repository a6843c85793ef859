package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Success Response tanpa custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Error Response sederhana
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// Alias lama (beberapa controller memakai nama ini)
func JsonError(c *fiber.Ctx, code int, message string) error {
	return Error(c, code, message)
}

// ✅ Error Response advance (opsional), bisa kirim multiple field error
func ErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  details,
	})
}

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag() // bisa diganti jadi pesan kustom
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", errorsMap)
}

// FromFiberError menerjemahkan *fiber.Error ke envelope standar
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
}
