// handlers/shade.go
package handlers

import (
	"fmt"

	"roast-game-service/middleware"
	"roast-game-service/services"

	"github.com/gofiber/fiber/v2"
)

// ShadeCostUSD is what an attacker pays per throw-shade attack. The
// payment itself clears upstream; the cost is recorded in the attack log.
const ShadeCostUSD = 0.50

func SetupShadeRoutes(app *fiber.App, attackService *services.AttackService) {
	app.Post("/shade", middleware.WalletContextMiddleware(), func(c *fiber.Ctx) error {
		attacker := c.Locals("wallet_address").(string)

		type Req struct {
			Victim string `json:"victim"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		if req.Victim == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "victim address is required"})
		}
		if !middleware.IsWalletAddress(req.Victim) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid victim address format"})
		}
		victim := middleware.NormalizeWallet(req.Victim)
		if victim == attacker {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "you cannot throw shade at yourself"})
		}

		stolen, err := attackService.PerformAttack(attacker, victim, ShadeCostUSD)
		if err != nil {
			return mapActionError(c, err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"stolen":  stolen,
			"message": fmt.Sprintf("Successfully stole %d points!", stolen),
		})
	})
}
