package marketplace

import (
	"context"
	"fmt"

	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/permissions"
)

func validateBidPrice(price float64) error {
	switch {
	case price <= 0:
		return marketplaceerrors.NewValidationError("price", "Ensure this value is greater than 0.")
	case price >= auctionPriceMax:
		return marketplaceerrors.NewValidationError("price", "Ensure that there are no more than 10 digits in total.")
	}
	return nil
}

// ListBids returns the bids placed on an auction
func (s *MarketplaceService) ListBids(ctx context.Context, auctionID uint) ([]model.Bid, error) {
	if _, err := s.repo.GetAuction(ctx, auctionID); err != nil {
		return nil, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}
	bids, err := s.repo.ListBids(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for auction %d: %w", auctionID, err)
	}
	return bids, nil
}

// PlaceBid records a bid by the principal on an auction
func (s *MarketplaceService) PlaceBid(ctx context.Context, p *model.Principal, auctionID uint, price float64) (model.Bid, error) {
	if err := permissions.RequireAuthenticated(p); err != nil {
		return model.Bid{}, err
	}
	if err := validateBidPrice(price); err != nil {
		return model.Bid{}, err
	}

	bid := model.Bid{
		AuctionID:    auctionID,
		Price:        model.RoundCents(price),
		CreationDate: s.clock(),
		BidderID:     p.UserID,
	}
	if err := s.repo.CreateBid(ctx, &bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid for auction %d by user %d: %w", auctionID, p.UserID, err)
	}
	return bid, nil
}

// GetBid returns one bid of an auction; open to anyone
func (s *MarketplaceService) GetBid(ctx context.Context, auctionID, id uint) (model.Bid, error) {
	bid, err := s.repo.GetBid(ctx, auctionID, id)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get bid %d: %w", id, err)
	}
	return bid, nil
}

// UpdateBid changes the price of a bid; bidder or staff only
func (s *MarketplaceService) UpdateBid(ctx context.Context, p *model.Principal, auctionID, id uint, price float64) (model.Bid, error) {
	bid, err := s.repo.GetBid(ctx, auctionID, id)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get bid %d: %w", id, err)
	}
	if err := permissions.Authorize(p, permissions.BidOwnerOrAdmin{}, &bid); err != nil {
		return model.Bid{}, err
	}
	if err := validateBidPrice(price); err != nil {
		return model.Bid{}, err
	}

	bid.Price = model.RoundCents(price)
	if err := s.repo.UpdateBid(ctx, &bid); err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to update bid %d: %w", id, err)
	}
	return bid, nil
}

// DeleteBid withdraws a bid; bidder or staff only
func (s *MarketplaceService) DeleteBid(ctx context.Context, p *model.Principal, auctionID, id uint) error {
	bid, err := s.repo.GetBid(ctx, auctionID, id)
	if err != nil {
		return fmt.Errorf("service: failed to get bid %d: %w", id, err)
	}
	if err := permissions.Authorize(p, permissions.BidOwnerOrAdmin{}, &bid); err != nil {
		return err
	}
	if err := s.repo.DeleteBid(ctx, auctionID, id); err != nil {
		return fmt.Errorf("service: failed to delete bid %d: %w", id, err)
	}
	return nil
}
