package rates

import (
	"context"
	"errors"
	"fmt"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	ratesRepo "github.com/peterjohnpitcher/anchor-parking/internal/infra/storage/rates"
)

// Service provides the current rate card. When no card has been loaded
// into the database yet it falls back to the configured defaults, so a
// rate card is always available and a booking can always be priced.
type Service struct {
	repo         RateCardRepository
	defaults     domain.RateCard
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the rates service
func NewService(repo RateCardRepository, defaults domain.RateCard, logger Logger) *Service {
	return &Service{
		repo:         repo,
		defaults:     defaults,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetCurrent returns the rate card effective now
func (s *Service) GetCurrent(ctx context.Context) (*domain.RateCard, error) {
	now := s.timeProvider.Now()

	card, err := s.repo.GetCurrent(ctx, now)
	if err != nil {
		if errors.Is(err, ratesRepo.ErrRateCardNotFound) {
			s.logger.Info("GetCurrent: no rate card in storage, using configured defaults")
			defaults := s.defaults
			return &defaults, nil
		}
		s.logger.Error("GetCurrent: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCurrent - repository error: %v", ErrInternal, err)
	}

	return card, nil
}
