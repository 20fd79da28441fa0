package models

import (
	"math"
	"strconv"
	"time"
)

// Principal is the actor behind a request. A nil *Principal is the anonymous user.
type Principal struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
}

// Category groups auctions
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(50);uniqueIndex;not null"`
}

// Auction is an item listed for sale. Rating is maintained by the store from the
// auction's ratings and is never written by clients.
type Auction struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"type:varchar(150);not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Price        float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Rating       float64   `json:"rating" gorm:"type:decimal(3,2);not null;default:0"`
	Stock        int       `json:"stock" gorm:"not null;check:stock >= 1"`
	Brand        string    `json:"brand" gorm:"type:varchar(100);not null"`
	CategoryID   uint      `json:"category" gorm:"not null;index"`
	Thumbnail    *string   `json:"thumbnail"`
	CreationDate time.Time `json:"creation_date" gorm:"not null;<-:create"`
	ClosingDate  time.Time `json:"closing_date" gorm:"not null"`
	AuctioneerID uint      `json:"auctioneer" gorm:"not null;index;<-:create"`

	Category *Category `json:"-" gorm:"constraint:OnDelete:CASCADE;"`

	// IsOpen is derived when the auction is read; it is never stored.
	IsOpen bool `json:"isOpen" gorm:"-"`
}

// Open reports whether the auction still accepts activity at the given instant.
func (a *Auction) Open(now time.Time) bool {
	return a.ClosingDate.After(now)
}

// OwnerID returns the auctioneer
func (a *Auction) OwnerID() uint {
	return a.AuctioneerID
}

// Bid is a price offered on an auction
type Bid struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	AuctionID    uint      `json:"auction" gorm:"not null;index"`
	Price        float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	CreationDate time.Time `json:"creation_date" gorm:"not null;<-:create"`
	BidderID     uint      `json:"bidder" gorm:"not null;index;<-:create"`

	Auction *Auction `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}

// Rating is one user's score for an auction. (UserID, AuctionID) is unique.
type Rating struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	AuctionID uint `json:"auction" gorm:"not null;uniqueIndex:idx_rating_user_auction"`
	UserID    uint `json:"user" gorm:"not null;uniqueIndex:idx_rating_user_auction"`
	Value     int  `json:"value" gorm:"not null;check:value >= 1 AND value <= 5"`

	Auction *Auction `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}

// OwnerID returns the rating's author
func (r *Rating) OwnerID() uint {
	return r.UserID
}

// Comment is a user note on an auction
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(100);not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"<-:create"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `json:"user" gorm:"not null;index;<-:create"`
	AuctionID uint      `json:"auction" gorm:"not null;index;<-:create"`

	Auction *Auction `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}

// OwnerID returns the comment's author
func (c *Comment) OwnerID() uint {
	return c.UserID
}

// AuctionFilter narrows an auction listing. Nil fields are not applied.
type AuctionFilter struct {
	Search       string
	CategoryID   *uint
	PriceMin     *int
	PriceMax     *int
	AuctioneerID *uint
}

// RatingResult is a stored rating together with the auction mean it produced.
type RatingResult struct {
	Rating        Rating
	AuctionRating float64
	Created       bool
}

// AverageRating returns the mean of values rounded to two decimals, or 0 when empty.
func AverageRating(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return RoundRating(float64(sum) / float64(len(values)))
}

// RoundRating rounds to two decimal places with exact ties going to the even digit.
// Rounding the decimal rendering avoids the drift of scaling v by 100 first.
func RoundRating(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return RoundCents(v)
	}
	return r
}

// RoundCents rounds half away from zero to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
