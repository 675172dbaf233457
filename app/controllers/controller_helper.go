package controllers

import (
	"github.com/gofiber/fiber/v2"
)

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": message})
}

// requestID returns the id set by the requestid middleware, if any.
func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
