package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"
)

// CategoryStore persists categories
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id uint) (model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	UpdateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id uint) error
}

// AuctionStore persists auctions. UpdateAuction never touches rating, creation date or
// auctioneer, and refreshes the argument with the stored record.
type AuctionStore interface {
	ListAuctions(ctx context.Context, filter model.AuctionFilter) ([]model.Auction, error)
	GetAuction(ctx context.Context, id uint) (model.Auction, error)
	CreateAuction(ctx context.Context, a *model.Auction) error
	UpdateAuction(ctx context.Context, a *model.Auction) error
	DeleteAuction(ctx context.Context, id uint) error
}

// BidStore persists bids scoped to their auction
type BidStore interface {
	ListBids(ctx context.Context, auctionID uint) ([]model.Bid, error)
	GetBid(ctx context.Context, auctionID, id uint) (model.Bid, error)
	CreateBid(ctx context.Context, b *model.Bid) error
	UpdateBid(ctx context.Context, b *model.Bid) error
	DeleteBid(ctx context.Context, auctionID, id uint) error
}

// CommentStore persists comments scoped to their auction, newest first
type CommentStore interface {
	ListComments(ctx context.Context, auctionID uint) ([]model.Comment, error)
	GetComment(ctx context.Context, auctionID, id uint) (model.Comment, error)
	CreateComment(ctx context.Context, c *model.Comment) error
	UpdateComment(ctx context.Context, c *model.Comment) error
	DeleteComment(ctx context.Context, auctionID, id uint) error
}

// RatingStore persists ratings. Every write recomputes the auction's mean rating
// in the same atomic step and reports the value it stored.
type RatingStore interface {
	ListRatings(ctx context.Context, auctionID uint) ([]model.Rating, error)
	GetRating(ctx context.Context, auctionID, id uint) (model.Rating, error)
	GetUserRating(ctx context.Context, auctionID, userID uint) (model.Rating, error)
	UpsertRating(ctx context.Context, r model.Rating) (model.RatingResult, error)
	UpdateRating(ctx context.Context, r model.Rating) (model.RatingResult, error)
	DeleteRating(ctx context.Context, auctionID, id uint) (float64, error)
}

// Store is the full persistence surface of the marketplace
type Store interface {
	CategoryStore
	AuctionStore
	BidStore
	CommentStore
	RatingStore
}

// MemoryRepo is a concurrency-safe in-memory implementation of Store
type MemoryRepo struct {
	mu         sync.RWMutex
	categories map[uint]model.Category
	auctions   map[uint]model.Auction
	bids       map[uint]model.Bid
	ratings    map[uint]model.Rating
	comments   map[uint]model.Comment

	// last issued id per table
	seq map[string]uint
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		categories: make(map[uint]model.Category),
		auctions:   make(map[uint]model.Auction),
		bids:       make(map[uint]model.Bid),
		ratings:    make(map[uint]model.Rating),
		comments:   make(map[uint]model.Comment),
		seq:        make(map[string]uint),
	}
}

func (r *MemoryRepo) nextID(table string) uint {
	r.seq[table]++
	return r.seq[table]
}

func sortedKeys[V any](m map[uint]V) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ListCategories returns all categories ordered by id
func (r *MemoryRepo) ListCategories(_ context.Context) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Category, 0, len(r.categories))
	for _, id := range sortedKeys(r.categories) {
		out = append(out, r.categories[id])
	}
	return out, nil
}

// GetCategory returns a single category
func (r *MemoryRepo) GetCategory(_ context.Context, id uint) (model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return model.Category{}, fmt.Errorf("get category %d: %w", id, marketplaceerrors.ErrCategoryNotFound)
	}
	return c, nil
}

func (r *MemoryRepo) nameTaken(name string, except uint) bool {
	for id, c := range r.categories {
		if id != except && c.Name == name {
			return true
		}
	}
	return false
}

// CreateCategory stores a category and assigns its id
func (r *MemoryRepo) CreateCategory(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(c.Name, 0) {
		return fmt.Errorf("create category %q: %w", c.Name, marketplaceerrors.ErrDuplicateName)
	}
	c.ID = r.nextID("categories")
	r.categories[c.ID] = *c
	return nil
}

// UpdateCategory renames a category
func (r *MemoryRepo) UpdateCategory(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[c.ID]; !ok {
		return fmt.Errorf("update category %d: %w", c.ID, marketplaceerrors.ErrCategoryNotFound)
	}
	if r.nameTaken(c.Name, c.ID) {
		return fmt.Errorf("update category %q: %w", c.Name, marketplaceerrors.ErrDuplicateName)
	}
	r.categories[c.ID] = *c
	return nil
}

// DeleteCategory removes a category together with its auctions
func (r *MemoryRepo) DeleteCategory(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return fmt.Errorf("delete category %d: %w", id, marketplaceerrors.ErrCategoryNotFound)
	}
	delete(r.categories, id)
	for auctionID, a := range r.auctions {
		if a.CategoryID == id {
			r.deleteAuctionLocked(auctionID)
		}
	}
	return nil
}

func matchesFilter(a model.Auction, f model.AuctionFilter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Description), needle) {
			return false
		}
	}
	if f.CategoryID != nil && a.CategoryID != *f.CategoryID {
		return false
	}
	if f.PriceMin != nil && a.Price < float64(*f.PriceMin) {
		return false
	}
	if f.PriceMax != nil && a.Price > float64(*f.PriceMax) {
		return false
	}
	if f.AuctioneerID != nil && a.AuctioneerID != *f.AuctioneerID {
		return false
	}
	return true
}

// ListAuctions returns the auctions matching filter ordered by id
func (r *MemoryRepo) ListAuctions(_ context.Context, filter model.AuctionFilter) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Auction, 0)
	for _, id := range sortedKeys(r.auctions) {
		if a := r.auctions[id]; matchesFilter(a, filter) {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetAuction returns a single auction
func (r *MemoryRepo) GetAuction(_ context.Context, id uint) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %d: %w", id, marketplaceerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// CreateAuction stores an auction with a zero rating
func (r *MemoryRepo) CreateAuction(_ context.Context, a *model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[a.CategoryID]; !ok {
		return fmt.Errorf("create auction: category %d: %w", a.CategoryID, marketplaceerrors.ErrCategoryNotFound)
	}
	a.ID = r.nextID("auctions")
	a.Rating = 0
	r.auctions[a.ID] = *a
	return nil
}

// UpdateAuction writes the client-editable fields of an auction
func (r *MemoryRepo) UpdateAuction(_ context.Context, a *model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.auctions[a.ID]
	if !ok {
		return fmt.Errorf("update auction %d: %w", a.ID, marketplaceerrors.ErrAuctionNotFound)
	}
	if _, ok := r.categories[a.CategoryID]; !ok {
		return fmt.Errorf("update auction %d: category %d: %w", a.ID, a.CategoryID, marketplaceerrors.ErrCategoryNotFound)
	}

	stored.Title = a.Title
	stored.Description = a.Description
	stored.Price = a.Price
	stored.Stock = a.Stock
	stored.Brand = a.Brand
	stored.CategoryID = a.CategoryID
	stored.Thumbnail = a.Thumbnail
	stored.ClosingDate = a.ClosingDate
	r.auctions[a.ID] = stored

	*a = stored
	return nil
}

// DeleteAuction removes an auction with its bids, ratings and comments
func (r *MemoryRepo) DeleteAuction(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[id]; !ok {
		return fmt.Errorf("delete auction %d: %w", id, marketplaceerrors.ErrAuctionNotFound)
	}
	r.deleteAuctionLocked(id)
	return nil
}

func (r *MemoryRepo) deleteAuctionLocked(id uint) {
	delete(r.auctions, id)
	for bidID, b := range r.bids {
		if b.AuctionID == id {
			delete(r.bids, bidID)
		}
	}
	for ratingID, rt := range r.ratings {
		if rt.AuctionID == id {
			delete(r.ratings, ratingID)
		}
	}
	for commentID, c := range r.comments {
		if c.AuctionID == id {
			delete(r.comments, commentID)
		}
	}
}

// ListBids returns an auction's bids ordered by id
func (r *MemoryRepo) ListBids(_ context.Context, auctionID uint) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Bid, 0)
	for _, id := range sortedKeys(r.bids) {
		if b := r.bids[id]; b.AuctionID == auctionID {
			out = append(out, b)
		}
	}
	return out, nil
}

// GetBid returns a bid of the given auction
func (r *MemoryRepo) GetBid(_ context.Context, auctionID, id uint) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bids[id]
	if !ok || b.AuctionID != auctionID {
		return model.Bid{}, fmt.Errorf("get bid %d of auction %d: %w", id, auctionID, marketplaceerrors.ErrBidNotFound)
	}
	return b, nil
}

// CreateBid records a bid on an existing auction
func (r *MemoryRepo) CreateBid(_ context.Context, b *model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[b.AuctionID]; !ok {
		return fmt.Errorf("create bid for auction %d: %w", b.AuctionID, marketplaceerrors.ErrAuctionNotFound)
	}
	b.ID = r.nextID("bids")
	r.bids[b.ID] = *b
	return nil
}

// UpdateBid changes the price of a bid
func (r *MemoryRepo) UpdateBid(_ context.Context, b *model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bids[b.ID]
	if !ok || stored.AuctionID != b.AuctionID {
		return fmt.Errorf("update bid %d: %w", b.ID, marketplaceerrors.ErrBidNotFound)
	}
	stored.Price = b.Price
	r.bids[b.ID] = stored

	*b = stored
	return nil
}

// DeleteBid removes a bid of the given auction
func (r *MemoryRepo) DeleteBid(_ context.Context, auctionID, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bids[id]
	if !ok || b.AuctionID != auctionID {
		return fmt.Errorf("delete bid %d of auction %d: %w", id, auctionID, marketplaceerrors.ErrBidNotFound)
	}
	delete(r.bids, id)
	return nil
}

// ListComments returns an auction's comments, newest first
func (r *MemoryRepo) ListComments(_ context.Context, auctionID uint) ([]model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Comment, 0)
	for _, c := range r.comments {
		if c.AuctionID == auctionID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetComment returns a comment of the given auction
func (r *MemoryRepo) GetComment(_ context.Context, auctionID, id uint) (model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.comments[id]
	if !ok || c.AuctionID != auctionID {
		return model.Comment{}, fmt.Errorf("get comment %d of auction %d: %w", id, auctionID, marketplaceerrors.ErrCommentNotFound)
	}
	return c, nil
}

// CreateComment records a comment on an existing auction
func (r *MemoryRepo) CreateComment(_ context.Context, c *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[c.AuctionID]; !ok {
		return fmt.Errorf("create comment for auction %d: %w", c.AuctionID, marketplaceerrors.ErrAuctionNotFound)
	}
	c.ID = r.nextID("comments")
	r.comments[c.ID] = *c
	return nil
}

// UpdateComment writes title, content and updated_at
func (r *MemoryRepo) UpdateComment(_ context.Context, c *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.comments[c.ID]
	if !ok || stored.AuctionID != c.AuctionID {
		return fmt.Errorf("update comment %d: %w", c.ID, marketplaceerrors.ErrCommentNotFound)
	}
	stored.Title = c.Title
	stored.Content = c.Content
	stored.UpdatedAt = c.UpdatedAt
	r.comments[c.ID] = stored

	*c = stored
	return nil
}

// DeleteComment removes a comment of the given auction
func (r *MemoryRepo) DeleteComment(_ context.Context, auctionID, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.comments[id]
	if !ok || c.AuctionID != auctionID {
		return fmt.Errorf("delete comment %d of auction %d: %w", id, auctionID, marketplaceerrors.ErrCommentNotFound)
	}
	delete(r.comments, id)
	return nil
}

// ListRatings returns an auction's ratings ordered by id
func (r *MemoryRepo) ListRatings(_ context.Context, auctionID uint) ([]model.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Rating, 0)
	for _, id := range sortedKeys(r.ratings) {
		if rt := r.ratings[id]; rt.AuctionID == auctionID {
			out = append(out, rt)
		}
	}
	return out, nil
}

// GetRating returns a rating of the given auction
func (r *MemoryRepo) GetRating(_ context.Context, auctionID, id uint) (model.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rt, ok := r.ratings[id]
	if !ok || rt.AuctionID != auctionID {
		return model.Rating{}, fmt.Errorf("get rating %d of auction %d: %w", id, auctionID, marketplaceerrors.ErrRatingNotFound)
	}
	return rt, nil
}

// GetUserRating returns the rating a user gave an auction
func (r *MemoryRepo) GetUserRating(_ context.Context, auctionID, userID uint) (model.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rt, ok := r.findRatingLocked(auctionID, userID); ok {
		return rt, nil
	}
	return model.Rating{}, fmt.Errorf("get rating of user %d for auction %d: %w", userID, auctionID, marketplaceerrors.ErrRatingNotFound)
}

func (r *MemoryRepo) findRatingLocked(auctionID, userID uint) (model.Rating, bool) {
	for _, rt := range r.ratings {
		if rt.AuctionID == auctionID && rt.UserID == userID {
			return rt, true
		}
	}
	return model.Rating{}, false
}

// UpsertRating finds the (user, auction) rating and updates its value, creating it
// when absent, then recomputes the auction mean.
func (r *MemoryRepo) UpsertRating(_ context.Context, rt model.Rating) (model.RatingResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[rt.AuctionID]; !ok {
		return model.RatingResult{}, fmt.Errorf("upsert rating for auction %d: %w", rt.AuctionID, marketplaceerrors.ErrAuctionNotFound)
	}

	created := false
	if existing, ok := r.findRatingLocked(rt.AuctionID, rt.UserID); ok {
		existing.Value = rt.Value
		rt = existing
	} else {
		rt.ID = r.nextID("ratings")
		created = true
	}
	r.ratings[rt.ID] = rt

	return model.RatingResult{
		Rating:        rt,
		AuctionRating: r.recalculateLocked(rt.AuctionID),
		Created:       created,
	}, nil
}

// UpdateRating changes the value of an existing rating and recomputes the auction mean
func (r *MemoryRepo) UpdateRating(_ context.Context, rt model.Rating) (model.RatingResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.ratings[rt.ID]
	if !ok || stored.AuctionID != rt.AuctionID {
		return model.RatingResult{}, fmt.Errorf("update rating %d: %w", rt.ID, marketplaceerrors.ErrRatingNotFound)
	}
	stored.Value = rt.Value
	r.ratings[rt.ID] = stored

	return model.RatingResult{
		Rating:        stored,
		AuctionRating: r.recalculateLocked(stored.AuctionID),
	}, nil
}

// DeleteRating removes a rating and returns the auction's new mean
func (r *MemoryRepo) DeleteRating(_ context.Context, auctionID, id uint) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rt, ok := r.ratings[id]
	if !ok || rt.AuctionID != auctionID {
		return 0, fmt.Errorf("delete rating %d of auction %d: %w", id, auctionID, marketplaceerrors.ErrRatingNotFound)
	}
	delete(r.ratings, id)
	return r.recalculateLocked(auctionID), nil
}

func (r *MemoryRepo) recalculateLocked(auctionID uint) float64 {
	values := make([]int, 0)
	for _, rt := range r.ratings {
		if rt.AuctionID == auctionID {
			values = append(values, rt.Value)
		}
	}
	avg := model.AverageRating(values)

	if a, ok := r.auctions[auctionID]; ok {
		a.Rating = avg
		r.auctions[auctionID] = a
	}
	return avg
}
