// handlers/roast.go
package handlers

import (
	"errors"
	"strconv"

	"roast-game-service/middleware"
	"roast-game-service/models"
	"roast-game-service/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoastRoutes(app *fiber.App, roastService *services.RoastService, playerService *services.PlayerService) {
	// Submit a generated roast for scoring. The roast text arrives from
	// the generation service; this endpoint owns only the game side.
	// Wallet context is per-route: share-link reads below stay public.
	app.Post("/roast", middleware.WalletContextMiddleware(), func(c *fiber.Ctx) error {
		roaster := c.Locals("wallet_address").(string)

		type Req struct {
			Address             string             `json:"address"` // the roasted wallet
			Type                string             `json:"type"`
			SubmitToLeaderboard bool               `json:"submit_to_leaderboard"`
			Roast               models.RoastRecord `json:"roast"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}

		if req.Address == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "wallet address is required"})
		}
		if !middleware.IsWalletAddress(req.Address) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid wallet address format"})
		}
		target := middleware.NormalizeWallet(req.Address)

		roastType := req.Type
		if roastType == "" {
			roastType = models.RoastTypeFree
		}
		switch roastType {
		case models.RoastTypeFree, models.RoastTypePremium, models.RoastTypeFriend:
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid roast type"})
		}

		record := req.Roast
		record.WalletAddress = target
		record.RoastType = roastType

		outcome, err := roastService.SubmitScoredRoast(roaster, target, &record, req.SubmitToLeaderboard)
		if err != nil {
			if errors.Is(err, services.ErrCooldown) {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "you already roasted this wallet — try again in 24 hours",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save roast"})
		}

		return c.JSON(outcome)
	})

	app.Get("/roast/:id", func(c *fiber.Ctx) error {
		record, err := roastService.GetRoastByID(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "roast not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load roast"})
		}
		return c.JSON(record)
	})

	app.Get("/roast/address/:address", func(c *fiber.Ctx) error {
		address := c.Params("address")
		if !middleware.IsWalletAddress(address) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid wallet address format"})
		}
		record, err := roastService.GetLatestRoastByAddress(address)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no roast for this wallet"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load roast"})
		}
		return c.JSON(record)
	})

	app.Post("/roast/:id/submit", func(c *fiber.Ctx) error {
		if err := roastService.SubmitToLeaderboard(c.Params("id")); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "roast not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to submit roast"})
		}
		return c.JSON(fiber.Map{"success": true})
	})

	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "10"))
		records, err := roastService.GetRoastLeaderboard(limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load leaderboard"})
		}
		return c.JSON(records)
	})

	app.Get("/roasts/recent", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "5"))
		records, err := roastService.GetRecentRoasts(limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load recent roasts"})
		}
		return c.JSON(records)
	})

	app.Get("/players/top", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "50"))
		players, err := playerService.TopPlayers(limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load players"})
		}
		return c.JSON(players)
	})
}
