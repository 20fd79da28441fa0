package permissions

import (
	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"
)

// Policy decides whether a principal may act on a resource instance
type Policy interface {
	Allows(p *model.Principal, resource any) bool
}

// Owned is implemented by resources that have an owning user
type Owned interface {
	OwnerID() uint
}

// OwnerOrAdmin allows staff, or the principal owning the resource
// (auctioneer for auctions, author for comments and ratings).
type OwnerOrAdmin struct{}

func (OwnerOrAdmin) Allows(p *model.Principal, resource any) bool {
	if p == nil {
		return false
	}
	if p.IsStaff {
		return true
	}
	owned, ok := resource.(Owned)
	return ok && owned.OwnerID() == p.UserID
}

// BidOwnerOrAdmin allows staff, or the bidder of the bid.
type BidOwnerOrAdmin struct{}

func (BidOwnerOrAdmin) Allows(p *model.Principal, resource any) bool {
	if p == nil {
		return false
	}
	if p.IsStaff {
		return true
	}
	bid, ok := resource.(*model.Bid)
	return ok && bid.BidderID == p.UserID
}

// Authorize turns a policy decision into ErrUnauthenticated for anonymous principals
// and ErrForbidden for authenticated ones.
func Authorize(p *model.Principal, policy Policy, resource any) error {
	if p == nil {
		return marketplaceerrors.ErrUnauthenticated
	}
	if !policy.Allows(p, resource) {
		return marketplaceerrors.ErrForbidden
	}
	return nil
}

// RequireAuthenticated rejects the anonymous principal
func RequireAuthenticated(p *model.Principal) error {
	if p == nil {
		return marketplaceerrors.ErrUnauthenticated
	}
	return nil
}

// RequireStaff rejects anyone but staff
func RequireStaff(p *model.Principal) error {
	if p == nil {
		return marketplaceerrors.ErrUnauthenticated
	}
	if !p.IsStaff {
		return marketplaceerrors.ErrForbidden
	}
	return nil
}
