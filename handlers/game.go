// handlers/game.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"roast-game-service/middleware"
	"roast-game-service/models"
	"roast-game-service/services"

	"github.com/gofiber/fiber/v2"
)

// leagueState is the cacheable half of the game-state response; the
// profile itself is always read fresh.
type leagueState struct {
	Jackpot     float64              `json:"jackpot"`
	Leaderboard []models.GameProfile `json:"leaderboard"`
}

// mapActionError converts service outcomes to HTTP per the error
// contract: business preconditions are 400, missing targets 404,
// cooldowns 429, anything else a generic 500.
func mapActionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInsufficientBalance),
		errors.Is(err, services.ErrSelfTarget),
		errors.Is(err, services.ErrNegligibleValue):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrCooldown):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("❌ [GAME] action failed on %s: %v", c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "game action failed"})
	}
}

func SetupGameRoutes(
	app *fiber.App,
	profileService *services.ProfileService,
	actionService *services.ActionService,
	seasonService *services.SeasonService,
	cache *services.GameStateCache,
) {
	// 🔐 Wallet-context middleware goes per-route: /game/leaderboard and
	// /season are readable without a wallet.
	walletCtx := middleware.WalletContextMiddleware()

	app.Get("/game/state", walletCtx, func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)

		prof, err := profileService.GetOrCreateProfile(wallet)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load profile",
			})
		}

		var state leagueState
		if payload, ok := cache.GetLeagueState(c.Context(), prof.League); ok {
			if err := json.Unmarshal(payload, &state); err == nil {
				return c.JSON(fiber.Map{
					"profile":     prof,
					"jackpot":     state.Jackpot,
					"leaderboard": state.Leaderboard,
				})
			}
		}

		jackpot, err := profileService.GetJackpot(prof.League)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load jackpot",
			})
		}
		leaderboard, err := profileService.GetGameLeaderboard(prof.League, 50)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load leaderboard",
			})
		}

		state = leagueState{Jackpot: jackpot, Leaderboard: leaderboard}
		if payload, err := json.Marshal(state); err == nil {
			cache.SetLeagueState(c.Context(), prof.League, payload)
		}

		return c.JSON(fiber.Map{
			"profile":     prof,
			"jackpot":     state.Jackpot,
			"leaderboard": state.Leaderboard,
		})
	})

	app.Post("/game/action", walletCtx, func(c *fiber.Ctx) error {
		actor := c.Locals("wallet_address").(string)

		type Req struct {
			Action string `json:"action"`
			Target string `json:"target"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}

		var result *services.ActionResult
		var err error

		switch req.Action {
		case "stoke":
			result, err = actionService.Stoke(actor)
		case "shade":
			if req.Target == "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "target required for shade"})
			}
			if !middleware.IsWalletAddress(req.Target) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid target address format"})
			}
			target := middleware.NormalizeWallet(req.Target)
			if target == actor {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "you cannot throw shade at yourself"})
			}
			result, err = actionService.Shade(actor, target)
		case "cope":
			result, err = actionService.Cope(actor)
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid action"})
		}

		if err != nil {
			return mapActionError(c, err)
		}

		// A shield block is a business outcome, not a failure.
		return c.JSON(fiber.Map{
			"success":     !result.Blocked,
			"blocked":     result.Blocked,
			"message":     result.Message,
			"new_score":   result.NewScore,
			"new_balance": result.NewBalance,
		})
	})

	app.Post("/game/claim", walletCtx, func(c *fiber.Ctx) error {
		wallet := c.Locals("wallet_address").(string)

		result, err := profileService.ClaimDailyMatches(wallet)
		if err != nil {
			return mapActionError(c, err)
		}
		return c.JSON(fiber.Map{
			"success":     true,
			"message":     result.Message,
			"new_balance": result.NewBalance,
		})
	})

	app.Get("/game/leaderboard", func(c *fiber.Ctx) error {
		league := c.Query("league", models.LeagueShrimp)
		switch league {
		case models.LeagueShrimp, models.LeagueDolphin, models.LeagueWhale:
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid league"})
		}
		limit, _ := strconv.Atoi(c.Query("limit", "50"))

		leaderboard, err := profileService.GetGameLeaderboard(league, limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load leaderboard",
			})
		}
		return c.JSON(fiber.Map{"league": league, "leaderboard": leaderboard})
	})

	app.Get("/season", func(c *fiber.Ctx) error {
		season, err := seasonService.GetActiveSeason()
		if err != nil {
			if errors.Is(err, services.ErrNoActiveSeason) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load season",
			})
		}
		return c.JSON(season)
	})
}
