package marketplace

import (
	"context"
	"fmt"

	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/permissions"
)

// Bounds of a rating value
const (
	RatingMin = 1
	RatingMax = 5
)

// RatingRangeMessage is reported for a rating value outside the bounds
var RatingRangeMessage = fmt.Sprintf("Ensure this value is between %d and %d.", RatingMin, RatingMax)

func validateRatingValue(value int) error {
	if value < RatingMin || value > RatingMax {
		return marketplaceerrors.NewValidationError("value", RatingRangeMessage)
	}
	return nil
}

// ListRatings returns the ratings of an auction
func (s *MarketplaceService) ListRatings(ctx context.Context, auctionID uint) ([]model.Rating, error) {
	if _, err := s.repo.GetAuction(ctx, auctionID); err != nil {
		return nil, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}
	ratings, err := s.repo.ListRatings(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list ratings for auction %d: %w", auctionID, err)
	}
	return ratings, nil
}

// RateAuction stores the principal's rating for an auction, replacing any previous
// one, and returns it with the auction's recomputed mean.
func (s *MarketplaceService) RateAuction(ctx context.Context, p *model.Principal, auctionID uint, value int) (model.RatingResult, error) {
	if err := permissions.RequireAuthenticated(p); err != nil {
		return model.RatingResult{}, err
	}
	if err := validateRatingValue(value); err != nil {
		return model.RatingResult{}, err
	}

	result, err := s.repo.UpsertRating(ctx, model.Rating{AuctionID: auctionID, UserID: p.UserID, Value: value})
	if err != nil {
		return model.RatingResult{}, fmt.Errorf("service: failed to rate auction %d by user %d: %w", auctionID, p.UserID, err)
	}
	return result, nil
}

// GetRating returns one rating of an auction; authenticated users only
func (s *MarketplaceService) GetRating(ctx context.Context, p *model.Principal, auctionID, id uint) (model.Rating, error) {
	if err := permissions.RequireAuthenticated(p); err != nil {
		return model.Rating{}, err
	}
	rating, err := s.repo.GetRating(ctx, auctionID, id)
	if err != nil {
		return model.Rating{}, fmt.Errorf("service: failed to get rating %d: %w", id, err)
	}
	return rating, nil
}

// UpdateRating changes a rating's value; author or staff only
func (s *MarketplaceService) UpdateRating(ctx context.Context, p *model.Principal, auctionID, id uint, value int) (model.RatingResult, error) {
	if err := permissions.RequireAuthenticated(p); err != nil {
		return model.RatingResult{}, err
	}
	rating, err := s.repo.GetRating(ctx, auctionID, id)
	if err != nil {
		return model.RatingResult{}, fmt.Errorf("service: failed to get rating %d: %w", id, err)
	}
	if err := permissions.Authorize(p, permissions.OwnerOrAdmin{}, &rating); err != nil {
		return model.RatingResult{}, err
	}
	if err := validateRatingValue(value); err != nil {
		return model.RatingResult{}, err
	}

	rating.Value = value
	result, err := s.repo.UpdateRating(ctx, rating)
	if err != nil {
		return model.RatingResult{}, fmt.Errorf("service: failed to update rating %d: %w", id, err)
	}
	return result, nil
}

// DeleteRating removes a rating and returns the auction's recomputed mean; author or staff only
func (s *MarketplaceService) DeleteRating(ctx context.Context, p *model.Principal, auctionID, id uint) (float64, error) {
	if err := permissions.RequireAuthenticated(p); err != nil {
		return 0, err
	}
	rating, err := s.repo.GetRating(ctx, auctionID, id)
	if err != nil {
		return 0, fmt.Errorf("service: failed to get rating %d: %w", id, err)
	}
	if err := permissions.Authorize(p, permissions.OwnerOrAdmin{}, &rating); err != nil {
		return 0, err
	}

	avg, err := s.repo.DeleteRating(ctx, auctionID, id)
	if err != nil {
		return 0, fmt.Errorf("service: failed to delete rating %d: %w", id, err)
	}
	return avg, nil
}

// GetUserRating returns the principal's own rating for an auction
func (s *MarketplaceService) GetUserRating(ctx context.Context, p *model.Principal, auctionID uint) (model.Rating, error) {
	if err := permissions.RequireAuthenticated(p); err != nil {
		return model.Rating{}, err
	}
	rating, err := s.repo.GetUserRating(ctx, auctionID, p.UserID)
	if err != nil {
		return model.Rating{}, fmt.Errorf("service: failed to get rating of user %d for auction %d: %w", p.UserID, auctionID, err)
	}
	return rating, nil
}
