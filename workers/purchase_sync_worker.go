package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"roast-game-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JackpotCutRate is the share of every match purchase that funds the
// buyer's league jackpot. Matches themselves are credits; real money
// entering the system is what grows the prize pools.
const JackpotCutRate = 0.5

// PurchaseSyncClient polls the payment service for settled match
// purchases and applies them to profiles and jackpots.
type PurchaseSyncClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	DB         *gorm.DB
}

// NewPurchaseSyncClient returns nil when PAYMENT_SERVICE_URL is unset;
// the service then runs without purchase syncing.
func NewPurchaseSyncClient(db *gorm.DB) *PurchaseSyncClient {
	baseURL := os.Getenv("PAYMENT_SERVICE_URL")
	if baseURL == "" {
		log.Println("⚠️  PAYMENT_SERVICE_URL not set — purchase sync disabled")
		return nil
	}
	token := os.Getenv("GAME_SERVICE_TOKEN")
	if token == "" {
		log.Fatal("GAME_SERVICE_TOKEN environment variable is required for purchase sync")
	}

	return &PurchaseSyncClient{
		BaseURL: baseURL,
		Token:   token,
		DB:      db,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *PurchaseSyncClient) GetSettledPurchases(ctx context.Context, since time.Time) ([]models.MatchPurchase, error) {
	since = since.UTC()

	u, err := url.Parse(fmt.Sprintf("%s/api/v1/public/purchases", c.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("since", since.Format(time.RFC3339))
	q.Set("status", "settled")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Service-Token", c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call payment service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("payment service returned status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		Purchases []models.MatchPurchase `json:"purchases"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode payment service response: %w", err)
	}

	return response.Purchases, nil
}

// ApplyPurchase credits the matches and funds the league jackpot. The
// purchase mirror insert is the idempotency gate: a purchase ID seen
// before inserts nothing and the credits are skipped.
func (c *PurchaseSyncClient) ApplyPurchase(purchase models.MatchPurchase) error {
	return c.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&purchase)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil // already processed
		}

		var prof models.GameProfile
		err := tx.Where("wallet_address = ?", purchase.WalletAddress).First(&prof).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			prof = models.GameProfile{
				WalletAddress:  purchase.WalletAddress,
				MatchesBalance: purchase.MatchesGranted,
				League:         models.LeagueShrimp,
			}
			if err := tx.Create(&prof).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			if err := tx.Model(&models.GameProfile{}).
				Where("wallet_address = ?", purchase.WalletAddress).
				UpdateColumn("matches_balance", gorm.Expr("matches_balance + ?", purchase.MatchesGranted)).Error; err != nil {
				return err
			}
		}

		cut := purchase.AmountUSD * JackpotCutRate
		result = tx.Model(&models.Jackpot{}).
			Where("league = ?", prof.League).
			UpdateColumn("amount", gorm.Expr("amount + ?", cut))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return tx.Create(&models.Jackpot{League: prof.League, Amount: cut}).Error
		}
		return nil
	})
}

// PollPurchases runs the sync loop until ctx is cancelled.
func PollPurchases(ctx context.Context, client *PurchaseSyncClient, pollInterval time.Duration) {
	if client == nil {
		return
	}
	log.Println("Starting purchase polling...")
	lastSyncTime := time.Now().UTC().Add(-24 * time.Hour)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Purchase polling stopped.")
			return
		case <-ticker.C:
			syncStart := time.Now().UTC()
			purchases, err := client.GetSettledPurchases(ctx, lastSyncTime)
			if err != nil {
				log.Printf("[PurchaseSync] fetch failed: %v", err)
				continue
			}

			applied := 0
			for _, p := range purchases {
				if err := client.ApplyPurchase(p); err != nil {
					log.Printf("[PurchaseSync] failed to apply purchase %s: %v", p.ID, err)
					continue
				}
				applied++
			}
			if applied > 0 {
				log.Printf("✅ Applied %d match purchases", applied)
			}
			lastSyncTime = syncStart
		}
	}
}
