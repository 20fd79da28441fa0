package repository

import (
	"context"
	"os"
	"sync"
	"testing"

	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"

	"github.com/stretchr/testify/require"
)

// newGormTestRepo connects to TEST_DATABASE_DSN and starts from empty tables.
func newGormTestRepo(t *testing.T) *GormRepo {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set; skipping PostgreSQL repository tests")
	}

	db, err := OpenPostgres(dsn)
	require.NoError(t, err)
	repo := NewGormRepo(db)
	require.NoError(t, repo.AutoMigrate())
	require.NoError(t, db.Exec("TRUNCATE comments, ratings, bids, auctions, categories RESTART IDENTITY CASCADE").Error)

	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

func TestGormRepo_CategoriesAndCascade(t *testing.T) {
	ctx := context.Background()
	repo := newGormTestRepo(t)
	category, auction := seedAuction(t, repo)

	dup := model.Category{Name: category.Name}
	require.ErrorIs(t, repo.CreateCategory(ctx, &dup), marketplaceerrors.ErrDuplicateName)

	orphan := newAuction("Ghost", 4242, 1, 10)
	require.ErrorIs(t, repo.CreateAuction(ctx, orphan), marketplaceerrors.ErrCategoryNotFound)

	bid := model.Bid{AuctionID: auction.ID, Price: 10, BidderID: 2}
	require.NoError(t, repo.CreateBid(ctx, &bid))
	_, err := repo.UpsertRating(ctx, model.Rating{AuctionID: auction.ID, UserID: 2, Value: 5})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteCategory(ctx, category.ID))
	_, err = repo.GetAuction(ctx, auction.ID)
	require.ErrorIs(t, err, marketplaceerrors.ErrAuctionNotFound)
	_, err = repo.GetBid(ctx, auction.ID, bid.ID)
	require.ErrorIs(t, err, marketplaceerrors.ErrBidNotFound)
}

func TestGormRepo_ListAuctionsFilters(t *testing.T) {
	ctx := context.Background()
	repo := newGormTestRepo(t)
	category, _ := seedAuction(t, repo)
	require.NoError(t, repo.CreateAuction(ctx, newAuction("Nikon 100%_off", category.ID, 2, 50)))

	auctions, err := repo.ListAuctions(ctx, model.AuctionFilter{Search: "leica"})
	require.NoError(t, err)
	require.Len(t, auctions, 1)

	// wildcards in the search text match literally
	auctions, err = repo.ListAuctions(ctx, model.AuctionFilter{Search: "100%_"})
	require.NoError(t, err)
	require.Len(t, auctions, 1)

	auctions, err = repo.ListAuctions(ctx, model.AuctionFilter{PriceMin: intPtr(50), PriceMax: intPtr(100)})
	require.NoError(t, err)
	require.Len(t, auctions, 2)

	auctions, err = repo.ListAuctions(ctx, model.AuctionFilter{AuctioneerID: uintPtr(2)})
	require.NoError(t, err)
	require.Len(t, auctions, 1)
}

func TestGormRepo_RatingAggregation(t *testing.T) {
	ctx := context.Background()
	repo := newGormTestRepo(t)
	_, auction := seedAuction(t, repo)

	first, err := repo.UpsertRating(ctx, model.Rating{AuctionID: auction.ID, UserID: 2, Value: 4})
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := repo.UpsertRating(ctx, model.Rating{AuctionID: auction.ID, UserID: 3, Value: 2})
	require.NoError(t, err)
	require.Equal(t, 3.0, second.AuctionRating)

	replaced, err := repo.UpsertRating(ctx, model.Rating{AuctionID: auction.ID, UserID: 2, Value: 5})
	require.NoError(t, err)
	require.False(t, replaced.Created)
	require.Equal(t, 3.5, replaced.AuctionRating)

	avg, err := repo.DeleteRating(ctx, auction.ID, first.Rating.ID)
	require.NoError(t, err)
	require.Equal(t, 2.0, avg)

	avg, err = repo.DeleteRating(ctx, auction.ID, second.Rating.ID)
	require.NoError(t, err)
	require.Zero(t, avg)

	stored, err := repo.GetAuction(ctx, auction.ID)
	require.NoError(t, err)
	require.Zero(t, stored.Rating)
}

func TestGormRepo_ConcurrentRatings(t *testing.T) {
	ctx := context.Background()
	repo := newGormTestRepo(t)
	_, auction := seedAuction(t, repo)

	const users = 20
	var wg sync.WaitGroup
	wg.Add(users)
	for i := 0; i < users; i++ {
		go func(userID uint) {
			defer wg.Done()
			_, err := repo.UpsertRating(ctx, model.Rating{AuctionID: auction.ID, UserID: userID, Value: int(userID%5) + 1})
			require.NoError(t, err)
		}(uint(i + 1))
	}
	wg.Wait()

	stored, err := repo.GetAuction(ctx, auction.ID)
	require.NoError(t, err)
	require.Equal(t, 3.0, stored.Rating)
}
