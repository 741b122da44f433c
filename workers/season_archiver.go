package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"roast-game-service/models"
	"roast-game-service/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// SeasonArchiver exports the final standings of ended seasons to R2
// once per season, then marks the season archived.
type SeasonArchiver struct {
	DB *gorm.DB
}

func NewSeasonArchiver(db *gorm.DB) *SeasonArchiver {
	return &SeasonArchiver{DB: db}
}

type seasonArchive struct {
	Season    models.Season   `json:"season"`
	Standings []models.Player `json:"standings"`
}

// Start schedules the hourly archive pass. No-op when R2 is not
// configured.
func (a *SeasonArchiver) Start() {
	if !utils.R2Configured() {
		log.Println("⚠️  R2 not configured — season archiving disabled")
		return
	}

	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			var seasons []models.Season
			err := a.DB.Where("is_active = ? AND end_time <= ? AND archived_at IS NULL", false, time.Now()).
				Find(&seasons).Error
			if err != nil {
				log.Printf("[Archiver] DB error: %v", err)
				return
			}

			for _, season := range seasons {
				if err := a.archiveSeason(season); err != nil {
					log.Printf("[Archiver] Failed to archive season %s: %v", season.ID, err)
				} else {
					log.Printf("✅ Archived season: %s", season.Name)
				}
			}
		}),
	)
}

func (a *SeasonArchiver) archiveSeason(season models.Season) error {
	var standings []models.Player
	if err := a.DB.Order("current_season_points DESC").Limit(100).Find(&standings).Error; err != nil {
		return err
	}

	payload, err := json.Marshal(seasonArchive{Season: season, Standings: standings})
	if err != nil {
		return err
	}

	key := fmt.Sprintf("seasons/%s-%s.json", slug.Make(season.Name), season.ID)
	if _, err := utils.UploadJSONToR2(context.Background(), key, payload); err != nil {
		return err
	}

	now := time.Now()
	season.ArchivedAt = &now
	return a.DB.Save(&season).Error
}
