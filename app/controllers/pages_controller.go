package controllers

import "github.com/gofiber/fiber/v2"

// Thin marketing page handlers. The rendered front end lives elsewhere; these
// return the page payloads consumed by it.

func HandleHome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"page":    "home",
		"title":   "Codevine - Software Craft & Training",
	})
}

func HandleAbout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"page":    "about",
		"title":   "About Codevine",
	})
}

func HandleContact(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"page":    "contact",
		"title":   "Contact",
		"email":   "hello@codevine.dev",
	})
}
