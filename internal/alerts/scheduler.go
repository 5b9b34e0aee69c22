package alerts

import (
	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/bizkhata/bizkhata-backend/pkg/email"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Scheduler runs the daily low-stock digest for every business
type Scheduler struct {
	db    *gorm.DB
	email *email.EmailService
	cron  *cron.Cron
	log   zerolog.Logger
}

func NewScheduler(db *gorm.DB, emailService *email.EmailService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		db:    db,
		email: emailService,
		cron:  cron.New(),
		log:   log,
	}
}

// Start registers the digest job and starts the cron loop
func (s *Scheduler) Start(cronSpec string) error {
	if _, err := s.cron.AddFunc(cronSpec, s.RunLowStockDigest); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("cron", cronSpec).Msg("low-stock digest scheduled")
	return nil
}

// Stop halts the cron loop. Running jobs finish first.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunLowStockDigest emails each business a list of its products at or
// below the configured minimum stock level
func (s *Scheduler) RunLowStockDigest() {
	if !s.email.IsConfigured() {
		s.log.Warn().Msg("email not configured, skipping low-stock digest")
		return
	}

	var businesses []database.Business
	if err := s.db.Find(&businesses).Error; err != nil {
		s.log.Error().Err(err).Msg("failed to load businesses for low-stock digest")
		return
	}

	for _, business := range businesses {
		var lowStock []database.Product
		if err := s.db.Where("business_id = ? AND is_active = ? AND stock <= min_stock_level", business.ID, true).
			Order("stock ASC").
			Find(&lowStock).Error; err != nil {
			s.log.Error().Err(err).Str("business", business.Name).Msg("failed to query low-stock products")
			continue
		}

		if len(lowStock) == 0 {
			continue
		}

		if business.Email == "" {
			continue
		}

		if err := s.email.SendLowStockDigest(business.Email, business.Name, lowStock); err != nil {
			s.log.Error().Err(err).Str("business", business.Name).Msg("failed to send low-stock digest")
			continue
		}
		s.log.Info().Str("business", business.Name).Int("products", len(lowStock)).Msg("low-stock digest sent")
	}
}
