package marketplace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/permissions"
)

const categoryNameMaxLen = 50

func validateCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", marketplaceerrors.NewValidationError("name", "This field may not be blank.")
	case len([]rune(name)) > categoryNameMaxLen:
		return "", marketplaceerrors.NewValidationError("name", fmt.Sprintf("Ensure this field has no more than %d characters.", categoryNameMaxLen))
	}
	return name, nil
}

func duplicateName(err error) error {
	if errors.Is(err, marketplaceerrors.ErrDuplicateName) {
		return marketplaceerrors.NewValidationError("name", "category with this name already exists.")
	}
	return err
}

// ListCategories returns every category; open to anyone
func (s *MarketplaceService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory adds a category; staff only
func (s *MarketplaceService) CreateCategory(ctx context.Context, p *model.Principal, name string) (model.Category, error) {
	if err := permissions.RequireStaff(p); err != nil {
		return model.Category{}, err
	}
	name, err := validateCategoryName(name)
	if err != nil {
		return model.Category{}, err
	}

	category := model.Category{Name: name}
	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return model.Category{}, fmt.Errorf("service: failed to create category: %w", duplicateName(err))
	}
	return category, nil
}

// GetCategory returns one category; staff only
func (s *MarketplaceService) GetCategory(ctx context.Context, p *model.Principal, id uint) (model.Category, error) {
	if err := permissions.RequireStaff(p); err != nil {
		return model.Category{}, err
	}
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return model.Category{}, fmt.Errorf("service: failed to get category %d: %w", id, err)
	}
	return category, nil
}

// UpdateCategory renames a category; staff only
func (s *MarketplaceService) UpdateCategory(ctx context.Context, p *model.Principal, id uint, name string) (model.Category, error) {
	if err := permissions.RequireStaff(p); err != nil {
		return model.Category{}, err
	}
	if _, err := s.repo.GetCategory(ctx, id); err != nil {
		return model.Category{}, fmt.Errorf("service: failed to get category %d: %w", id, err)
	}
	name, err := validateCategoryName(name)
	if err != nil {
		return model.Category{}, err
	}

	category := model.Category{ID: id, Name: name}
	if err := s.repo.UpdateCategory(ctx, &category); err != nil {
		return model.Category{}, fmt.Errorf("service: failed to update category %d: %w", id, duplicateName(err))
	}
	return category, nil
}

// DeleteCategory removes a category and, through the store, its auctions; staff only
func (s *MarketplaceService) DeleteCategory(ctx context.Context, p *model.Principal, id uint) error {
	if err := permissions.RequireStaff(p); err != nil {
		return err
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete category %d: %w", id, err)
	}
	return nil
}
