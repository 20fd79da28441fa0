package marketplace

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/permissions"
)

// MinAuctionDuration is the shortest time an auction may stay open
const MinAuctionDuration = 15 * 24 * time.Hour

const (
	searchMinLen    = 3
	auctionTitleMax = 150
	auctionBrandMax = 100
	auctionPriceMax = 100000000
)

// AuctionInput carries the client-writable fields of an auction
type AuctionInput struct {
	Title       string
	Description string
	Price       float64
	Stock       int
	Brand       string
	CategoryID  uint
	Thumbnail   *string
	ClosingDate time.Time
}

// AuctionQuery holds the raw listing query parameters; empty values are not applied.
type AuctionQuery struct {
	Search   string
	Category string
	PriceMin string
	PriceMax string
}

// validateClosingDate requires closing to be after now and at least
// MinAuctionDuration after reference (creation time, or now when unknown).
func validateClosingDate(closing, reference, now time.Time) error {
	if !closing.After(now) {
		return marketplaceerrors.NewValidationError("closing_date", "Closing date must be greater than now.")
	}
	if reference.IsZero() {
		reference = now
	}
	if closing.Before(reference.Add(MinAuctionDuration)) {
		return marketplaceerrors.NewValidationError("closing_date", "Closing date must be at least 15 days after the creation date.")
	}
	return nil
}

func validateAuctionFields(in AuctionInput) *marketplaceerrors.ValidationError {
	verr := &marketplaceerrors.ValidationError{}

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		verr.Add("title", "This field may not be blank.")
	case len([]rune(title)) > auctionTitleMax:
		verr.Add("title", fmt.Sprintf("Ensure this field has no more than %d characters.", auctionTitleMax))
	}
	if strings.TrimSpace(in.Description) == "" {
		verr.Add("description", "This field may not be blank.")
	}
	brand := strings.TrimSpace(in.Brand)
	switch {
	case brand == "":
		verr.Add("brand", "This field may not be blank.")
	case len([]rune(brand)) > auctionBrandMax:
		verr.Add("brand", fmt.Sprintf("Ensure this field has no more than %d characters.", auctionBrandMax))
	}
	switch {
	case in.Price < 0:
		verr.Add("price", "Ensure this value is greater than or equal to 0.")
	case in.Price >= auctionPriceMax:
		verr.Add("price", "Ensure that there are no more than 10 digits in total.")
	}
	if in.Stock < 1 {
		verr.Add("stock", "Ensure this value is greater than or equal to 1.")
	}
	if in.Thumbnail != nil && *in.Thumbnail != "" {
		if u, err := url.ParseRequestURI(*in.Thumbnail); err != nil || u.Host == "" {
			verr.Add("thumbnail", "Enter a valid URL.")
		}
	}
	return verr
}

func (s *MarketplaceService) validateAuction(ctx context.Context, in AuctionInput, reference, now time.Time) error {
	verr := validateAuctionFields(in)
	if err := validateClosingDate(in.ClosingDate, reference, now); err != nil {
		if cd, ok := marketplaceerrors.AsValidation(err); ok {
			verr.Add("closing_date", cd.Fields["closing_date"])
		}
	}
	if _, err := s.repo.GetCategory(ctx, in.CategoryID); err != nil {
		if !errors.Is(err, marketplaceerrors.ErrCategoryNotFound) {
			return fmt.Errorf("service: failed to check category %d: %w", in.CategoryID, err)
		}
		verr.Add("category", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", in.CategoryID))
	}
	return verr.OrNil()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseBound(raw, field, message string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	if !isDigits(raw) {
		return nil, marketplaceerrors.NewValidationError(field, message)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, marketplaceerrors.NewValidationError(field, message)
	}
	return &v, nil
}

// buildFilter validates the listing parameters in order and stops at the first failure.
func (s *MarketplaceService) buildFilter(ctx context.Context, q AuctionQuery) (model.AuctionFilter, error) {
	var filter model.AuctionFilter

	if q.Search != "" {
		if len([]rune(q.Search)) < searchMinLen {
			return filter, marketplaceerrors.NewValidationError("search", "Search query must be at least 3 characters long.")
		}
		filter.Search = q.Search
	}

	if q.Category != "" {
		invalid := marketplaceerrors.NewValidationError("category", "Category must be a valid category id.")
		id, err := strconv.ParseUint(q.Category, 10, 0)
		if err != nil {
			return filter, invalid
		}
		if _, err := s.repo.GetCategory(ctx, uint(id)); err != nil {
			if errors.Is(err, marketplaceerrors.ErrCategoryNotFound) {
				return filter, invalid
			}
			return filter, fmt.Errorf("service: failed to check category %d: %w", id, err)
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	priceMin, err := parseBound(q.PriceMin, "price_min", "Price minimum must be a natural number greater than 0.")
	if err != nil {
		return filter, err
	}
	priceMax, err := parseBound(q.PriceMax, "price_max", "Price maximum must be a natural number greater than 0.")
	if err != nil {
		return filter, err
	}
	if priceMin != nil && priceMax != nil && *priceMin >= *priceMax {
		return filter, marketplaceerrors.NewValidationError("price_max", "Price maximum must be greater than price minimum.")
	}
	filter.PriceMin = priceMin
	filter.PriceMax = priceMax

	return filter, nil
}

func (s *MarketplaceService) withStatus(auctions []model.Auction) []model.Auction {
	now := s.now()
	for i := range auctions {
		auctions[i].IsOpen = auctions[i].Open(now)
	}
	return auctions
}

// ListAuctions returns the auctions matching the query
func (s *MarketplaceService) ListAuctions(ctx context.Context, q AuctionQuery) ([]model.Auction, error) {
	filter, err := s.buildFilter(ctx, q)
	if err != nil {
		return nil, err
	}

	auctions, err := s.repo.ListAuctions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return s.withStatus(auctions), nil
}

// CreateAuction lists a new auction owned by the principal
func (s *MarketplaceService) CreateAuction(ctx context.Context, p *model.Principal, in AuctionInput) (model.Auction, error) {
	if err := permissions.RequireAuthenticated(p); err != nil {
		return model.Auction{}, err
	}
	now := s.clock()
	if err := s.validateAuction(ctx, in, now, now); err != nil {
		return model.Auction{}, err
	}

	auction := model.Auction{
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Price:        model.RoundCents(in.Price),
		Stock:        in.Stock,
		Brand:        strings.TrimSpace(in.Brand),
		CategoryID:   in.CategoryID,
		Thumbnail:    in.Thumbnail,
		CreationDate: now,
		ClosingDate:  in.ClosingDate.UTC(),
		AuctioneerID: p.UserID,
	}
	if err := s.repo.CreateAuction(ctx, &auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}
	auction.IsOpen = auction.Open(s.now())
	return auction, nil
}

// GetAuction returns one auction; open to anyone
func (s *MarketplaceService) GetAuction(ctx context.Context, id uint) (model.Auction, error) {
	auction, err := s.repo.GetAuction(ctx, id)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %d: %w", id, err)
	}
	auction.IsOpen = auction.Open(s.now())
	return auction, nil
}

// UpdateAuction replaces the editable fields of an auction; auctioneer or staff only
func (s *MarketplaceService) UpdateAuction(ctx context.Context, p *model.Principal, id uint, in AuctionInput) (model.Auction, error) {
	auction, err := s.repo.GetAuction(ctx, id)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %d: %w", id, err)
	}
	if err := permissions.Authorize(p, permissions.OwnerOrAdmin{}, &auction); err != nil {
		return model.Auction{}, err
	}
	if err := s.validateAuction(ctx, in, auction.CreationDate, s.clock()); err != nil {
		return model.Auction{}, err
	}

	auction.Title = strings.TrimSpace(in.Title)
	auction.Description = in.Description
	auction.Price = model.RoundCents(in.Price)
	auction.Stock = in.Stock
	auction.Brand = strings.TrimSpace(in.Brand)
	auction.CategoryID = in.CategoryID
	auction.Thumbnail = in.Thumbnail
	auction.ClosingDate = in.ClosingDate.UTC()

	if err := s.repo.UpdateAuction(ctx, &auction); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to update auction %d: %w", id, err)
	}
	auction.IsOpen = auction.Open(s.now())
	return auction, nil
}

// DeleteAuction removes an auction with its bids, ratings and comments; auctioneer or staff only
func (s *MarketplaceService) DeleteAuction(ctx context.Context, p *model.Principal, id uint) error {
	auction, err := s.repo.GetAuction(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to get auction %d: %w", id, err)
	}
	if err := permissions.Authorize(p, permissions.OwnerOrAdmin{}, &auction); err != nil {
		return err
	}
	if err := s.repo.DeleteAuction(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete auction %d: %w", id, err)
	}
	return nil
}

// ListUserAuctions returns the auctions created by the principal
func (s *MarketplaceService) ListUserAuctions(ctx context.Context, p *model.Principal) ([]model.Auction, error) {
	if err := permissions.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	filter := model.AuctionFilter{AuctioneerID: &p.UserID}
	auctions, err := s.repo.ListAuctions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions of user %d: %w", p.UserID, err)
	}
	return s.withStatus(auctions), nil
}
