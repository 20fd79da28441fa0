package marketplace

import (
	"time"

	"auction-marketplace/internal/repository"
)

// MarketplaceService implements the marketplace use cases on top of a Store.
// Every operation receives the acting principal explicitly; nil means anonymous.
type MarketplaceService struct {
	repo repository.Store
	now  func() time.Time
}

// Option configures a MarketplaceService
type Option func(*MarketplaceService)

// WithClock replaces the wall clock used for timestamps and open/closed status
func WithClock(now func() time.Time) Option {
	return func(s *MarketplaceService) {
		s.now = now
	}
}

// NewMarketplaceService creates a new MarketplaceService instance
func NewMarketplaceService(repo repository.Store, opts ...Option) *MarketplaceService {
	s := &MarketplaceService{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MarketplaceService) clock() time.Time {
	return s.now().UTC().Truncate(time.Second)
}
