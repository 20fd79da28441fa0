package marketplace

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var (
	staff   = &model.Principal{UserID: 1, Username: "admin", IsStaff: true}
	alice   = &model.Principal{UserID: 2, Username: "alice"}
	bob     = &model.Principal{UserID: 3, Username: "bob"}
	baseNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*MarketplaceService, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: baseNow}
	return NewMarketplaceService(repository.NewMemoryRepo(), WithClock(clock.Now)), clock
}

func validAuctionInput(categoryID uint) AuctionInput {
	return AuctionInput{
		Title:       "Vintage camera",
		Description: "Leica M3 in working condition",
		Price:       350.5,
		Stock:       1,
		Brand:       "Leica",
		CategoryID:  categoryID,
		ClosingDate: baseNow.Add(20 * 24 * time.Hour),
	}
}

func seedAuction(t *testing.T, s *MarketplaceService, owner *model.Principal) (model.Category, model.Auction) {
	t.Helper()
	ctx := context.Background()
	category, err := s.CreateCategory(ctx, staff, "Cameras")
	require.NoError(t, err)
	auction, err := s.CreateAuction(ctx, owner, validAuctionInput(category.ID))
	require.NoError(t, err)
	return category, auction
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	verr, ok := marketplaceerrors.AsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	require.Contains(t, verr.Fields, field)
}

func TestMarketplaceService_Categories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestService(t)

	_, err := s.CreateCategory(ctx, nil, "Books")
	require.ErrorIs(t, err, marketplaceerrors.ErrUnauthenticated)

	_, err = s.CreateCategory(ctx, alice, "Books")
	require.ErrorIs(t, err, marketplaceerrors.ErrForbidden)

	books, err := s.CreateCategory(ctx, staff, "Books")
	require.NoError(t, err)
	require.NotZero(t, books.ID)

	_, err = s.CreateCategory(ctx, staff, "Books")
	requireFieldError(t, err, "name")

	_, err = s.CreateCategory(ctx, staff, "   ")
	requireFieldError(t, err, "name")

	_, err = s.GetCategory(ctx, alice, books.ID)
	require.ErrorIs(t, err, marketplaceerrors.ErrForbidden)

	renamed, err := s.UpdateCategory(ctx, staff, books.ID, "Rare books")
	require.NoError(t, err)
	require.Equal(t, "Rare books", renamed.Name)

	_, err = s.UpdateCategory(ctx, staff, 999, "Ghost")
	require.ErrorIs(t, err, marketplaceerrors.ErrCategoryNotFound)

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	require.NoError(t, s.DeleteCategory(ctx, staff, books.ID))
	_, err = s.GetCategory(ctx, staff, books.ID)
	require.ErrorIs(t, err, marketplaceerrors.ErrCategoryNotFound)
}

func TestMarketplaceService_CreateAuction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		principal   *model.Principal
		mutate      func(in *AuctionInput)
		expectErr   error
		expectField string
	}{
		{name: "valid_auction", principal: alice, mutate: func(in *AuctionInput) {}},
		{name: "anonymous", principal: nil, mutate: func(in *AuctionInput) {}, expectErr: marketplaceerrors.ErrUnauthenticated},
		{
			name:        "closing_date_in_past",
			principal:   alice,
			mutate:      func(in *AuctionInput) { in.ClosingDate = baseNow.Add(-time.Hour) },
			expectField: "closing_date",
		},
		{
			name:        "closing_date_equal_now",
			principal:   alice,
			mutate:      func(in *AuctionInput) { in.ClosingDate = baseNow },
			expectField: "closing_date",
		},
		{
			name:        "closing_date_under_fifteen_days",
			principal:   alice,
			mutate:      func(in *AuctionInput) { in.ClosingDate = baseNow.Add(14 * 24 * time.Hour) },
			expectField: "closing_date",
		},
		{
			name:      "closing_date_exactly_fifteen_days",
			principal: alice,
			mutate:    func(in *AuctionInput) { in.ClosingDate = baseNow.Add(MinAuctionDuration) },
		},
		{
			name:        "unknown_category",
			principal:   alice,
			mutate:      func(in *AuctionInput) { in.CategoryID = 999 },
			expectField: "category",
		},
		{
			name:        "zero_stock",
			principal:   alice,
			mutate:      func(in *AuctionInput) { in.Stock = 0 },
			expectField: "stock",
		},
		{
			name:        "negative_price",
			principal:   alice,
			mutate:      func(in *AuctionInput) { in.Price = -1 },
			expectField: "price",
		},
		{
			name:        "blank_title",
			principal:   alice,
			mutate:      func(in *AuctionInput) { in.Title = "" },
			expectField: "title",
		},
		{
			name:      "invalid_thumbnail",
			principal: alice,
			mutate: func(in *AuctionInput) {
				thumb := "not a url"
				in.Thumbnail = &thumb
			},
			expectField: "thumbnail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			s, _ := newTestService(t)
			category, err := s.CreateCategory(ctx, staff, "Cameras")
			require.NoError(t, err)

			in := validAuctionInput(category.ID)
			tt.mutate(&in)
			auction, err := s.CreateAuction(ctx, tt.principal, in)

			switch {
			case tt.expectErr != nil:
				require.ErrorIs(t, err, tt.expectErr)
			case tt.expectField != "":
				requireFieldError(t, err, tt.expectField)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.principal.UserID, auction.AuctioneerID)
				require.Equal(t, baseNow, auction.CreationDate)
				require.Zero(t, auction.Rating)
				require.True(t, auction.IsOpen)
			}
		})
	}
}

func TestMarketplaceService_AuctionOpenStatusFollowsClock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, clock := newTestService(t)
	_, auction := seedAuction(t, s, alice)

	got, err := s.GetAuction(ctx, auction.ID)
	require.NoError(t, err)
	require.True(t, got.IsOpen)

	clock.Advance(21 * 24 * time.Hour)

	got, err = s.GetAuction(ctx, auction.ID)
	require.NoError(t, err)
	require.False(t, got.IsOpen)
}

func TestMarketplaceService_UpdateAuction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, clock := newTestService(t)
	category, auction := seedAuction(t, s, alice)

	in := validAuctionInput(category.ID)
	in.Title = "Leica M3 with lens"

	_, err := s.UpdateAuction(ctx, nil, auction.ID, in)
	require.ErrorIs(t, err, marketplaceerrors.ErrUnauthenticated)

	_, err = s.UpdateAuction(ctx, bob, auction.ID, in)
	require.ErrorIs(t, err, marketplaceerrors.ErrForbidden)

	_, err = s.UpdateAuction(ctx, alice, 999, in)
	require.ErrorIs(t, err, marketplaceerrors.ErrAuctionNotFound)

	updated, err := s.UpdateAuction(ctx, alice, auction.ID, in)
	require.NoError(t, err)
	require.Equal(t, "Leica M3 with lens", updated.Title)
	require.Equal(t, alice.UserID, updated.AuctioneerID)
	require.Equal(t, auction.CreationDate, updated.CreationDate)

	// fifteen days are counted from the creation date, not from now
	clock.Advance(10 * 24 * time.Hour)
	in.ClosingDate = baseNow.Add(16 * 24 * time.Hour)
	_, err = s.UpdateAuction(ctx, staff, auction.ID, in)
	require.NoError(t, err)

	in.ClosingDate = baseNow.Add(14 * 24 * time.Hour)
	_, err = s.UpdateAuction(ctx, staff, auction.ID, in)
	requireFieldError(t, err, "closing_date")
}

func TestMarketplaceService_ListAuctionsFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestService(t)

	cameras, err := s.CreateCategory(ctx, staff, "Cameras")
	require.NoError(t, err)
	watches, err := s.CreateCategory(ctx, staff, "Watches")
	require.NoError(t, err)

	for _, in := range []AuctionInput{
		{Title: "Leica M3", Description: "rangefinder", Price: 100, Stock: 1, Brand: "Leica", CategoryID: cameras.ID},
		{Title: "Nikon F", Description: "SLR body", Price: 50, Stock: 1, Brand: "Nikon", CategoryID: cameras.ID},
		{Title: "Omega", Description: "A classic LEICA-era watch", Price: 500, Stock: 2, Brand: "Omega", CategoryID: watches.ID},
	} {
		in.ClosingDate = baseNow.Add(30 * 24 * time.Hour)
		_, err := s.CreateAuction(ctx, alice, in)
		require.NoError(t, err)
	}

	tests := []struct {
		name        string
		query       AuctionQuery
		expectCount int
		expectField string
	}{
		{name: "no_filters", query: AuctionQuery{}, expectCount: 3},
		{name: "search_title_or_description", query: AuctionQuery{Search: "leica"}, expectCount: 2},
		{name: "search_too_short", query: AuctionQuery{Search: "le"}, expectField: "search"},
		{name: "category", query: AuctionQuery{Category: "1"}, expectCount: 2},
		{name: "unknown_category", query: AuctionQuery{Category: "42"}, expectField: "category"},
		{name: "non_numeric_category", query: AuctionQuery{Category: "abc"}, expectField: "category"},
		{name: "price_range_inclusive", query: AuctionQuery{PriceMin: "50", PriceMax: "100"}, expectCount: 2},
		{name: "price_min_only", query: AuctionQuery{PriceMin: "101"}, expectCount: 1},
		{name: "price_min_not_digits", query: AuctionQuery{PriceMin: "-5"}, expectField: "price_min"},
		{name: "price_max_not_digits", query: AuctionQuery{PriceMax: "1.5"}, expectField: "price_max"},
		{name: "price_min_above_max", query: AuctionQuery{PriceMin: "100", PriceMax: "50"}, expectField: "price_max"},
		{name: "price_min_equal_max", query: AuctionQuery{PriceMin: "100", PriceMax: "100"}, expectField: "price_max"},
		{name: "combined", query: AuctionQuery{Search: "leica", Category: "2", PriceMax: "1000"}, expectCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auctions, err := s.ListAuctions(ctx, tt.query)
			if tt.expectField != "" {
				requireFieldError(t, err, tt.expectField)
				return
			}
			require.NoError(t, err)
			require.Len(t, auctions, tt.expectCount)
		})
	}
}

func TestMarketplaceService_ListUserAuctions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestService(t)
	category, _ := seedAuction(t, s, alice)
	_, err := s.CreateAuction(ctx, bob, validAuctionInput(category.ID))
	require.NoError(t, err)

	_, err = s.ListUserAuctions(ctx, nil)
	require.ErrorIs(t, err, marketplaceerrors.ErrUnauthenticated)

	mine, err := s.ListUserAuctions(ctx, bob)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, bob.UserID, mine[0].AuctioneerID)
}

func TestMarketplaceService_Bids(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestService(t)
	_, auction := seedAuction(t, s, alice)

	_, err := s.PlaceBid(ctx, nil, auction.ID, 10)
	require.ErrorIs(t, err, marketplaceerrors.ErrUnauthenticated)

	_, err = s.PlaceBid(ctx, bob, auction.ID, 0)
	requireFieldError(t, err, "price")

	_, err = s.PlaceBid(ctx, bob, 999, 10)
	require.ErrorIs(t, err, marketplaceerrors.ErrAuctionNotFound)

	bid, err := s.PlaceBid(ctx, bob, auction.ID, 120.456)
	require.NoError(t, err)
	require.Equal(t, bob.UserID, bid.BidderID)
	require.Equal(t, auction.ID, bid.AuctionID)
	require.Equal(t, 120.46, bid.Price)

	// the auctioneer does not own the bid
	_, err = s.UpdateBid(ctx, alice, auction.ID, bid.ID, 130)
	require.ErrorIs(t, err, marketplaceerrors.ErrForbidden)

	updated, err := s.UpdateBid(ctx, bob, auction.ID, bid.ID, 130)
	require.NoError(t, err)
	require.Equal(t, 130.0, updated.Price)

	_, err = s.GetBid(ctx, auction.ID+1, bid.ID)
	require.ErrorIs(t, err, marketplaceerrors.ErrBidNotFound)

	bids, err := s.ListBids(ctx, auction.ID)
	require.NoError(t, err)
	require.Len(t, bids, 1)

	require.NoError(t, s.DeleteBid(ctx, staff, auction.ID, bid.ID))
	_, err = s.GetBid(ctx, auction.ID, bid.ID)
	require.ErrorIs(t, err, marketplaceerrors.ErrBidNotFound)
}

func TestMarketplaceService_Comments(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, clock := newTestService(t)
	_, auction := seedAuction(t, s, alice)

	_, err := s.CreateComment(ctx, bob, auction.ID, CommentInput{Title: "", Content: "x"})
	requireFieldError(t, err, "title")

	first, err := s.CreateComment(ctx, bob, auction.ID, CommentInput{Title: "Question", Content: "Does it work?"})
	require.NoError(t, err)
	require.Equal(t, bob.UserID, first.UserID)

	clock.Advance(time.Minute)
	second, err := s.CreateComment(ctx, alice, auction.ID, CommentInput{Title: "Answer", Content: "Yes"})
	require.NoError(t, err)

	comments, err := s.ListComments(ctx, auction.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, second.ID, comments[0].ID)

	_, err = s.UpdateComment(ctx, alice, auction.ID, first.ID, CommentInput{Title: "Edited", Content: "x"})
	require.ErrorIs(t, err, marketplaceerrors.ErrForbidden)

	clock.Advance(time.Minute)
	edited, err := s.UpdateComment(ctx, bob, auction.ID, first.ID, CommentInput{Title: "Edited", Content: "Still working?"})
	require.NoError(t, err)
	require.Equal(t, "Edited", edited.Title)
	require.True(t, edited.UpdatedAt.After(edited.CreatedAt))

	require.ErrorIs(t, s.DeleteComment(ctx, nil, auction.ID, first.ID), marketplaceerrors.ErrUnauthenticated)
	require.NoError(t, s.DeleteComment(ctx, bob, auction.ID, first.ID))
}

func TestMarketplaceService_RatingAggregation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestService(t)
	_, auction := seedAuction(t, s, alice)

	_, err := s.RateAuction(ctx, nil, auction.ID, 4)
	require.ErrorIs(t, err, marketplaceerrors.ErrUnauthenticated)

	_, err = s.RateAuction(ctx, bob, auction.ID, 6)
	requireFieldError(t, err, "value")

	_, err = s.RateAuction(ctx, bob, 999, 3)
	require.ErrorIs(t, err, marketplaceerrors.ErrAuctionNotFound)

	bobRating, err := s.RateAuction(ctx, bob, auction.ID, 4)
	require.NoError(t, err)
	require.True(t, bobRating.Created)
	require.Equal(t, 4.0, bobRating.AuctionRating)

	aliceRating, err := s.RateAuction(ctx, alice, auction.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, aliceRating.AuctionRating)

	// a second submission by the same user replaces the first
	again, err := s.RateAuction(ctx, bob, auction.ID, 5)
	require.NoError(t, err)
	require.False(t, again.Created)
	require.Equal(t, bobRating.Rating.ID, again.Rating.ID)
	require.Equal(t, 3.5, again.AuctionRating)

	ratings, err := s.ListRatings(ctx, auction.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 2)

	mine, err := s.GetUserRating(ctx, alice, auction.ID)
	require.NoError(t, err)
	require.Equal(t, 2, mine.Value)

	_, err = s.UpdateRating(ctx, bob, auction.ID, aliceRating.Rating.ID, 1)
	require.ErrorIs(t, err, marketplaceerrors.ErrForbidden)

	updated, err := s.UpdateRating(ctx, alice, auction.ID, aliceRating.Rating.ID, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, updated.AuctionRating)

	avg, err := s.DeleteRating(ctx, alice, auction.ID, aliceRating.Rating.ID)
	require.NoError(t, err)
	require.Equal(t, 5.0, avg)

	avg, err = s.DeleteRating(ctx, staff, auction.ID, bobRating.Rating.ID)
	require.NoError(t, err)
	require.Zero(t, avg)

	stored, err := s.GetAuction(ctx, auction.ID)
	require.NoError(t, err)
	require.Zero(t, stored.Rating)

	_, err = s.GetUserRating(ctx, alice, auction.ID)
	require.ErrorIs(t, err, marketplaceerrors.ErrRatingNotFound)
}

func TestMarketplaceService_RatingRoundsToCents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestService(t)
	category, auction := seedAuction(t, s, alice)

	var last model.RatingResult
	for i, v := range []int{5, 4, 4} {
		var err error
		last, err = s.RateAuction(ctx, &model.Principal{UserID: uint(100 + i)}, auction.ID, v)
		require.NoError(t, err)
	}
	require.Equal(t, 4.33, last.AuctionRating)

	// exact ties round to the even cent
	ties := []struct {
		values []int
		want   float64
	}{
		{values: []int{1, 1, 1, 1, 1, 1, 1, 2}, want: 1.12},
		{values: []int{1, 1, 1, 1, 1, 2, 3, 3}, want: 1.62},
		{values: []int{1, 1, 1, 1, 1, 1, 1, 4}, want: 1.38},
	}
	for i, tt := range ties {
		tied, err := s.CreateAuction(ctx, alice, validAuctionInput(category.ID))
		require.NoError(t, err)
		for j, v := range tt.values {
			last, err = s.RateAuction(ctx, &model.Principal{UserID: uint(200 + 10*i + j)}, tied.ID, v)
			require.NoError(t, err)
		}
		require.Equal(t, tt.want, last.AuctionRating, "values %v", tt.values)

		stored, err := s.GetAuction(ctx, tied.ID)
		require.NoError(t, err)
		require.Equal(t, tt.want, stored.Rating)
	}
}

func TestMarketplaceService_DeleteAuctionCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := newTestService(t)
	_, auction := seedAuction(t, s, alice)

	_, err := s.PlaceBid(ctx, bob, auction.ID, 10)
	require.NoError(t, err)
	_, err = s.RateAuction(ctx, bob, auction.ID, 3)
	require.NoError(t, err)

	require.ErrorIs(t, s.DeleteAuction(ctx, bob, auction.ID), marketplaceerrors.ErrForbidden)
	require.NoError(t, s.DeleteAuction(ctx, alice, auction.ID))

	_, err = s.ListBids(ctx, auction.ID)
	require.ErrorIs(t, err, marketplaceerrors.ErrAuctionNotFound)
	_, err = s.ListRatings(ctx, auction.ID)
	require.ErrorIs(t, err, marketplaceerrors.ErrAuctionNotFound)
}

func TestMarketplaceService_RepositoryFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockStore(ctrl)
	service := NewMarketplaceService(mockRepo, WithClock(func() time.Time { return baseNow }))
	ctx := context.Background()
	repoErr := errors.New("connection reset")

	tests := []struct {
		name      string
		mockSetup func()
		call      func() error
	}{
		{
			name: "list_categories",
			mockSetup: func() {
				mockRepo.EXPECT().ListCategories(gomock.Any()).Return(nil, repoErr)
			},
			call: func() error {
				_, err := service.ListCategories(ctx)
				return err
			},
		},
		{
			name: "filter_category_lookup",
			mockSetup: func() {
				mockRepo.EXPECT().GetCategory(gomock.Any(), uint(7)).Return(model.Category{}, repoErr)
			},
			call: func() error {
				_, err := service.ListAuctions(ctx, AuctionQuery{Category: "7"})
				return err
			},
		},
		{
			name: "place_bid",
			mockSetup: func() {
				mockRepo.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(repoErr)
			},
			call: func() error {
				_, err := service.PlaceBid(ctx, bob, 1, 25)
				return err
			},
		},
		{
			name: "rate_auction",
			mockSetup: func() {
				mockRepo.EXPECT().
					UpsertRating(gomock.Any(), model.Rating{AuctionID: 1, UserID: bob.UserID, Value: 4}).
					Return(model.RatingResult{}, repoErr)
			},
			call: func() error {
				_, err := service.RateAuction(ctx, bob, 1, 4)
				return err
			},
		},
		{
			name: "delete_rating",
			mockSetup: func() {
				mockRepo.EXPECT().GetRating(gomock.Any(), uint(1), uint(2)).Return(model.Rating{ID: 2, AuctionID: 1, UserID: bob.UserID, Value: 3}, nil)
				mockRepo.EXPECT().DeleteRating(gomock.Any(), uint(1), uint(2)).Return(0.0, repoErr)
			},
			call: func() error {
				_, err := service.DeleteRating(ctx, bob, 1, 2)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := tt.call()
			require.Error(t, err)
			require.ErrorIs(t, err, repoErr)
		})
	}
}
