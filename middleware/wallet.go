// middleware/wallet.go
package middleware

import (
	"log"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var walletAddressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// IsWalletAddress reports whether s is a well-formed EVM wallet address.
func IsWalletAddress(s string) bool {
	return walletAddressPattern.MatchString(s)
}

// NormalizeWallet lowercases an address; stored wallet keys are always
// lowercase hex.
func NormalizeWallet(s string) string {
	return strings.ToLower(s)
}

// WalletContextMiddleware extracts the authenticated wallet set by the
// Gateway (X-Wallet-Address) and attaches the normalized form to the
// request context. Routes behind it act on behalf of this wallet.
func WalletContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		wallet := c.Get("X-Wallet-Address")
		if wallet == "" {
			log.Printf("❌ [WALLET_CTX] X-Wallet-Address missing on secured route: %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing X-Wallet-Address — request must come through gateway with wallet context",
			})
		}
		if !IsWalletAddress(wallet) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid wallet address format",
			})
		}

		c.Locals("wallet_address", NormalizeWallet(wallet))
		return c.Next()
	}
}
