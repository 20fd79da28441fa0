package marketplace

import (
	"context"
	"fmt"
	"strings"

	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/permissions"
)

const commentTitleMax = 100

// CommentInput carries the client-writable fields of a comment
type CommentInput struct {
	Title   string
	Content string
}

func validateComment(in CommentInput) error {
	verr := &marketplaceerrors.ValidationError{}
	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		verr.Add("title", "This field may not be blank.")
	case len([]rune(title)) > commentTitleMax:
		verr.Add("title", fmt.Sprintf("Ensure this field has no more than %d characters.", commentTitleMax))
	}
	if strings.TrimSpace(in.Content) == "" {
		verr.Add("content", "This field may not be blank.")
	}
	return verr.OrNil()
}

// ListComments returns an auction's comments, newest first
func (s *MarketplaceService) ListComments(ctx context.Context, auctionID uint) ([]model.Comment, error) {
	if _, err := s.repo.GetAuction(ctx, auctionID); err != nil {
		return nil, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}
	comments, err := s.repo.ListComments(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list comments for auction %d: %w", auctionID, err)
	}
	return comments, nil
}

// CreateComment posts a comment by the principal on an auction
func (s *MarketplaceService) CreateComment(ctx context.Context, p *model.Principal, auctionID uint, in CommentInput) (model.Comment, error) {
	if err := permissions.RequireAuthenticated(p); err != nil {
		return model.Comment{}, err
	}
	if err := validateComment(in); err != nil {
		return model.Comment{}, err
	}

	now := s.clock()
	comment := model.Comment{
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    p.UserID,
		AuctionID: auctionID,
	}
	if err := s.repo.CreateComment(ctx, &comment); err != nil {
		return model.Comment{}, fmt.Errorf("service: failed to create comment for auction %d: %w", auctionID, err)
	}
	return comment, nil
}

// GetComment returns one comment of an auction; open to anyone
func (s *MarketplaceService) GetComment(ctx context.Context, auctionID, id uint) (model.Comment, error) {
	comment, err := s.repo.GetComment(ctx, auctionID, id)
	if err != nil {
		return model.Comment{}, fmt.Errorf("service: failed to get comment %d: %w", id, err)
	}
	return comment, nil
}

// UpdateComment edits a comment; author or staff only
func (s *MarketplaceService) UpdateComment(ctx context.Context, p *model.Principal, auctionID, id uint, in CommentInput) (model.Comment, error) {
	comment, err := s.repo.GetComment(ctx, auctionID, id)
	if err != nil {
		return model.Comment{}, fmt.Errorf("service: failed to get comment %d: %w", id, err)
	}
	if err := permissions.Authorize(p, permissions.OwnerOrAdmin{}, &comment); err != nil {
		return model.Comment{}, err
	}
	if err := validateComment(in); err != nil {
		return model.Comment{}, err
	}

	comment.Title = strings.TrimSpace(in.Title)
	comment.Content = in.Content
	comment.UpdatedAt = s.clock()
	if err := s.repo.UpdateComment(ctx, &comment); err != nil {
		return model.Comment{}, fmt.Errorf("service: failed to update comment %d: %w", id, err)
	}
	return comment, nil
}

// DeleteComment removes a comment; author or staff only
func (s *MarketplaceService) DeleteComment(ctx context.Context, p *model.Principal, auctionID, id uint) error {
	comment, err := s.repo.GetComment(ctx, auctionID, id)
	if err != nil {
		return fmt.Errorf("service: failed to get comment %d: %w", id, err)
	}
	if err := permissions.Authorize(p, permissions.OwnerOrAdmin{}, &comment); err != nil {
		return err
	}
	if err := s.repo.DeleteComment(ctx, auctionID, id); err != nil {
		return fmt.Errorf("service: failed to delete comment %d: %w", id, err)
	}
	return nil
}
