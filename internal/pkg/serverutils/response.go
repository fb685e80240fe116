package serverutils

import "github.com/gofiber/fiber/v2"

func ErrorResponse(code int, message string) fiber.Map {
	return fiber.Map{
		"code":  code,
		"error": message,
	}
}
