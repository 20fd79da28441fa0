package handler

import (
	"context"

	marketplace "auction-marketplace/internal/marketplaceService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/marketplace/helpers"
)

type MarketplaceServiceInterface interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, p *model.Principal, name string) (model.Category, error)
	GetCategory(ctx context.Context, p *model.Principal, id uint) (model.Category, error)
	UpdateCategory(ctx context.Context, p *model.Principal, id uint, name string) (model.Category, error)
	DeleteCategory(ctx context.Context, p *model.Principal, id uint) error

	ListAuctions(ctx context.Context, q marketplace.AuctionQuery) ([]model.Auction, error)
	CreateAuction(ctx context.Context, p *model.Principal, in marketplace.AuctionInput) (model.Auction, error)
	GetAuction(ctx context.Context, id uint) (model.Auction, error)
	UpdateAuction(ctx context.Context, p *model.Principal, id uint, in marketplace.AuctionInput) (model.Auction, error)
	DeleteAuction(ctx context.Context, p *model.Principal, id uint) error
	ListUserAuctions(ctx context.Context, p *model.Principal) ([]model.Auction, error)

	ListBids(ctx context.Context, auctionID uint) ([]model.Bid, error)
	PlaceBid(ctx context.Context, p *model.Principal, auctionID uint, price float64) (model.Bid, error)
	GetBid(ctx context.Context, auctionID, id uint) (model.Bid, error)
	UpdateBid(ctx context.Context, p *model.Principal, auctionID, id uint, price float64) (model.Bid, error)
	DeleteBid(ctx context.Context, p *model.Principal, auctionID, id uint) error

	ListComments(ctx context.Context, auctionID uint) ([]model.Comment, error)
	CreateComment(ctx context.Context, p *model.Principal, auctionID uint, in marketplace.CommentInput) (model.Comment, error)
	GetComment(ctx context.Context, auctionID, id uint) (model.Comment, error)
	UpdateComment(ctx context.Context, p *model.Principal, auctionID, id uint, in marketplace.CommentInput) (model.Comment, error)
	DeleteComment(ctx context.Context, p *model.Principal, auctionID, id uint) error

	ListRatings(ctx context.Context, auctionID uint) ([]model.Rating, error)
	RateAuction(ctx context.Context, p *model.Principal, auctionID uint, value int) (model.RatingResult, error)
	GetRating(ctx context.Context, p *model.Principal, auctionID, id uint) (model.Rating, error)
	UpdateRating(ctx context.Context, p *model.Principal, auctionID, id uint, value int) (model.RatingResult, error)
	DeleteRating(ctx context.Context, p *model.Principal, auctionID, id uint) (float64, error)
	GetUserRating(ctx context.Context, p *model.Principal, auctionID uint) (model.Rating, error)
}

type MarketplaceHandler struct {
	service MarketplaceServiceInterface
}

func NewMarketplaceHandler(service MarketplaceServiceInterface) *MarketplaceHandler {
	helpers.RegisterValidation()
	return &MarketplaceHandler{service: service}
}

// userID is the log value for the acting principal
func userID(p *model.Principal) any {
	if p == nil {
		return nil
	}
	return p.UserID
}
