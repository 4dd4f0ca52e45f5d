// Package schedule runs the recurring background jobs.
package schedule

import (
	"github.com/pema-app/backend/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// monthlySpec runs at midnight on the first day of every month.
const monthlySpec = "0 0 1 * *"

// Start schedules the monthly income credit and starts the scheduler in its
// own goroutine. The returned cron can be stopped with Stop.
func Start(db *gorm.DB) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(monthlySpec, func() {
		err := models.AddMonthlyIncome(db)
		if err != nil {
			log.Error().Err(err).Msg("scheduled monthly income credit failed")
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info().Str("spec", monthlySpec).Msg("scheduler started")

	return c, nil
}
