package permissions

import (
	"testing"

	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"

	"github.com/stretchr/testify/require"
)

func TestOwnerOrAdmin_Allows(t *testing.T) {
	t.Parallel()

	owner := &model.Principal{UserID: 1, Username: "owner"}
	stranger := &model.Principal{UserID: 2, Username: "stranger"}
	staff := &model.Principal{UserID: 3, Username: "admin", IsStaff: true}

	tests := []struct {
		name      string
		principal *model.Principal
		resource  any
		want      bool
	}{
		{name: "auction_owner", principal: owner, resource: &model.Auction{AuctioneerID: 1}, want: true},
		{name: "auction_stranger", principal: stranger, resource: &model.Auction{AuctioneerID: 1}, want: false},
		{name: "auction_staff", principal: staff, resource: &model.Auction{AuctioneerID: 1}, want: true},
		{name: "comment_author", principal: owner, resource: &model.Comment{UserID: 1}, want: true},
		{name: "comment_stranger", principal: stranger, resource: &model.Comment{UserID: 1}, want: false},
		{name: "rating_author", principal: owner, resource: &model.Rating{UserID: 1}, want: true},
		{name: "anonymous", principal: nil, resource: &model.Auction{AuctioneerID: 1}, want: false},
		{name: "unowned_resource", principal: owner, resource: &model.Category{ID: 1}, want: false},
		{name: "unowned_resource_staff", principal: staff, resource: &model.Category{ID: 1}, want: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, OwnerOrAdmin{}.Allows(tc.principal, tc.resource))
		})
	}
}

func TestBidOwnerOrAdmin_Allows(t *testing.T) {
	t.Parallel()

	bid := &model.Bid{ID: 7, BidderID: 1, AuctionID: 3}

	require.True(t, BidOwnerOrAdmin{}.Allows(&model.Principal{UserID: 1}, bid))
	require.False(t, BidOwnerOrAdmin{}.Allows(&model.Principal{UserID: 2}, bid))
	require.True(t, BidOwnerOrAdmin{}.Allows(&model.Principal{UserID: 2, IsStaff: true}, bid))
	require.False(t, BidOwnerOrAdmin{}.Allows(nil, bid))
	// an auction is not a bid, even when owned by the principal
	require.False(t, BidOwnerOrAdmin{}.Allows(&model.Principal{UserID: 1}, &model.Auction{AuctioneerID: 1}))
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	auction := &model.Auction{AuctioneerID: 1}

	require.ErrorIs(t, Authorize(nil, OwnerOrAdmin{}, auction), marketplaceerrors.ErrUnauthenticated)
	require.ErrorIs(t, Authorize(&model.Principal{UserID: 2}, OwnerOrAdmin{}, auction), marketplaceerrors.ErrForbidden)
	require.NoError(t, Authorize(&model.Principal{UserID: 1}, OwnerOrAdmin{}, auction))
}

func TestRequireStaff(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, RequireStaff(nil), marketplaceerrors.ErrUnauthenticated)
	require.ErrorIs(t, RequireStaff(&model.Principal{UserID: 1}), marketplaceerrors.ErrForbidden)
	require.NoError(t, RequireStaff(&model.Principal{UserID: 1, IsStaff: true}))
	require.ErrorIs(t, RequireAuthenticated(nil), marketplaceerrors.ErrUnauthenticated)
	require.NoError(t, RequireAuthenticated(&model.Principal{UserID: 1}))
}
