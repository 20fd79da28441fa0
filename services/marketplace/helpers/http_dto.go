package helpers

import (
	"time"

	marketplace "auction-marketplace/internal/marketplaceService"
	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"
)

// DateTimeFormat is the wire format of every timestamp in responses
const DateTimeFormat = "2006-01-02T15:04:05Z"

// closingDateLayouts are accepted for closing_date input, most specific last
var closingDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// FormatTime renders t in UTC using DateTimeFormat
func FormatTime(t time.Time) string {
	return t.UTC().Format(DateTimeFormat)
}

// ParseClosingDate accepts "YYYY-MM-DDThh:mm", optional seconds, or a full RFC 3339
// timestamp. Values without an offset are taken as UTC.
func ParseClosingDate(raw string) (time.Time, error) {
	for _, layout := range closingDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, marketplaceerrors.NewValidationError("closing_date",
		"Datetime has wrong format. Use one of these formats instead: YYYY-MM-DDThh:mm[:ss][+HH:MM|-HH:MM|Z].")
}

// Request DTOs
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type AuctionRequest struct {
	Title       string   `json:"title" binding:"required,max=150"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"required,gte=1"`
	Brand       string   `json:"brand" binding:"required,max=100"`
	Category    uint     `json:"category" binding:"required"`
	Thumbnail   *string  `json:"thumbnail" binding:"omitempty,url"`
	ClosingDate string   `json:"closing_date" binding:"required"`
}

// ToInput converts the request into service input, parsing closing_date
func (r AuctionRequest) ToInput() (marketplace.AuctionInput, error) {
	closing, err := ParseClosingDate(r.ClosingDate)
	if err != nil {
		return marketplace.AuctionInput{}, err
	}
	in := marketplace.AuctionInput{
		Title:       r.Title,
		Description: r.Description,
		Stock:       *r.Stock,
		Brand:       r.Brand,
		CategoryID:  r.Category,
		Thumbnail:   r.Thumbnail,
		ClosingDate: closing,
	}
	if r.Price != nil {
		in.Price = *r.Price
	}
	return in, nil
}

type BidRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type CommentRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

// ToInput converts the request into service input
func (r CommentRequest) ToInput() marketplace.CommentInput {
	return marketplace.CommentInput{Title: r.Title, Content: r.Content}
}

type RatingRequest struct {
	Value *int `json:"value" binding:"required,rating"`
}

// Response DTOs
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AuctionResponse struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Rating       float64 `json:"rating"`
	Stock        int     `json:"stock"`
	Brand        string  `json:"brand"`
	Category     uint    `json:"category"`
	Thumbnail    *string `json:"thumbnail"`
	CreationDate string  `json:"creation_date"`
	ClosingDate  string  `json:"closing_date"`
	Auctioneer   uint    `json:"auctioneer"`
	IsOpen       bool    `json:"isOpen"`
}

// BidSummaryResponse is the list representation of a bid
type BidSummaryResponse struct {
	ID     uint    `json:"id"`
	Bidder uint    `json:"bidder"`
	Price  float64 `json:"price"`
}

type BidResponse struct {
	ID           uint    `json:"id"`
	Auction      uint    `json:"auction"`
	Price        float64 `json:"price"`
	CreationDate string  `json:"creation_date"`
	Bidder       uint    `json:"bidder"`
}

type CommentResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	User      uint   `json:"user"`
	Auction   uint   `json:"auction"`
}

// RatingResponse carries the auction's new mean on write responses only
type RatingResponse struct {
	ID            uint     `json:"id"`
	Auction       uint     `json:"auction"`
	User          uint     `json:"user"`
	Value         int      `json:"value"`
	AuctionRating *float64 `json:"auction_rating,omitempty"`
}

func NewCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func NewCategoryResponses(categories []model.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

func NewAuctionResponse(a model.Auction) AuctionResponse {
	return AuctionResponse{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Price:        a.Price,
		Rating:       a.Rating,
		Stock:        a.Stock,
		Brand:        a.Brand,
		Category:     a.CategoryID,
		Thumbnail:    a.Thumbnail,
		CreationDate: FormatTime(a.CreationDate),
		ClosingDate:  FormatTime(a.ClosingDate),
		Auctioneer:   a.AuctioneerID,
		IsOpen:       a.IsOpen,
	}
}

func NewAuctionResponses(auctions []model.Auction) []AuctionResponse {
	out := make([]AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, NewAuctionResponse(a))
	}
	return out
}

func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		ID:           b.ID,
		Auction:      b.AuctionID,
		Price:        b.Price,
		CreationDate: FormatTime(b.CreationDate),
		Bidder:       b.BidderID,
	}
}

func NewBidSummaryResponses(bids []model.Bid) []BidSummaryResponse {
	out := make([]BidSummaryResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, BidSummaryResponse{ID: b.ID, Bidder: b.BidderID, Price: b.Price})
	}
	return out
}

func NewCommentResponse(c model.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Title:     c.Title,
		Content:   c.Content,
		CreatedAt: FormatTime(c.CreatedAt),
		UpdatedAt: FormatTime(c.UpdatedAt),
		User:      c.UserID,
		Auction:   c.AuctionID,
	}
}

func NewCommentResponses(comments []model.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentResponse(c))
	}
	return out
}

func NewRatingResponse(r model.Rating) RatingResponse {
	return RatingResponse{ID: r.ID, Auction: r.AuctionID, User: r.UserID, Value: r.Value}
}

// NewRatingWriteResponse includes the auction mean produced by the write
func NewRatingWriteResponse(res model.RatingResult) RatingResponse {
	resp := NewRatingResponse(res.Rating)
	avg := res.AuctionRating
	resp.AuctionRating = &avg
	return resp
}

func NewRatingResponses(ratings []model.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, NewRatingResponse(r))
	}
	return out
}
