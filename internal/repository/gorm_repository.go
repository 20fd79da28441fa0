package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"auction-marketplace/internal/marketplaceerrors"
	model "auction-marketplace/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// GormRepo is the PostgreSQL implementation of Store
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo wraps an open gorm connection
func NewGormRepo(db *gorm.DB) *GormRepo {
	if db == nil {
		panic("database connection cannot be nil for GormRepo")
	}
	return &GormRepo{db: db}
}

// OpenPostgres connects to PostgreSQL and configures the pool
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates the marketplace tables
func (r *GormRepo) AutoMigrate() error {
	if err := r.db.AutoMigrate(&model.Category{}, &model.Auction{}, &model.Bid{}, &model.Rating{}, &model.Comment{}); err != nil {
		return fmt.Errorf("gorm: auto migrate: %w", err)
	}
	return nil
}

// Close releases the connection pool
func (r *GormRepo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// mapErr converts gorm errors to repository sentinels
func mapErr(err error, notFound error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return marketplaceerrors.ErrDuplicateName
	default:
		return err
	}
}

// ListCategories returns all categories ordered by id
func (r *GormRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("gorm: list categories: %w", err)
	}
	return out, nil
}

// GetCategory returns a single category
func (r *GormRepo) GetCategory(ctx context.Context, id uint) (model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return model.Category{}, fmt.Errorf("gorm: get category %d: %w", id, mapErr(err, marketplaceerrors.ErrCategoryNotFound))
	}
	return c, nil
}

// CreateCategory inserts a category, mapping a unique violation to a duplicate name
func (r *GormRepo) CreateCategory(ctx context.Context, c *model.Category) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("gorm: create category %q: %w", c.Name, mapErr(err, marketplaceerrors.ErrCategoryNotFound))
	}
	return nil
}

// UpdateCategory renames a category
func (r *GormRepo) UpdateCategory(ctx context.Context, c *model.Category) error {
	res := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", c.ID).Update("name", c.Name)
	if res.Error != nil {
		return fmt.Errorf("gorm: update category %d: %w", c.ID, mapErr(res.Error, marketplaceerrors.ErrCategoryNotFound))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("gorm: update category %d: %w", c.ID, marketplaceerrors.ErrCategoryNotFound)
	}
	return nil
}

// DeleteCategory relies on ON DELETE CASCADE to remove dependent auctions
func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, id)
	if res.Error != nil {
		return fmt.Errorf("gorm: delete category %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("gorm: delete category %d: %w", id, marketplaceerrors.ErrCategoryNotFound)
	}
	return nil
}

// likePattern escapes LIKE wildcards in a user supplied search string
func likePattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + s + "%"
}

// ListAuctions returns the auctions matching filter ordered by id
func (r *GormRepo) ListAuctions(ctx context.Context, f model.AuctionFilter) ([]model.Auction, error) {
	q := r.db.WithContext(ctx).Model(&model.Auction{})
	if f.Search != "" {
		p := likePattern(f.Search)
		q = q.Where("title ILIKE ? OR description ILIKE ?", p, p)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.PriceMin != nil {
		q = q.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("price <= ?", *f.PriceMax)
	}
	if f.AuctioneerID != nil {
		q = q.Where("auctioneer_id = ?", *f.AuctioneerID)
	}

	var out []model.Auction
	if err := q.Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("gorm: list auctions: %w", err)
	}
	return out, nil
}

// GetAuction returns a single auction
func (r *GormRepo) GetAuction(ctx context.Context, id uint) (model.Auction, error) {
	var a model.Auction
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return model.Auction{}, fmt.Errorf("gorm: get auction %d: %w", id, mapErr(err, marketplaceerrors.ErrAuctionNotFound))
	}
	return a, nil
}

// CreateAuction inserts an auction with a zero rating
func (r *GormRepo) CreateAuction(ctx context.Context, a *model.Auction) error {
	a.Rating = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("gorm: create auction: category %d: %w", a.CategoryID, marketplaceerrors.ErrCategoryNotFound)
		}
		return fmt.Errorf("gorm: create auction: %w", err)
	}
	return nil
}

// auctionEditable lists the columns a client may change
var auctionEditable = []string{"title", "description", "price", "stock", "brand", "category_id", "thumbnail", "closing_date"}

// UpdateAuction writes the client-editable fields of an auction
func (r *GormRepo) UpdateAuction(ctx context.Context, a *model.Auction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Auction{ID: a.ID}).Select(auctionEditable).Updates(a)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
				return fmt.Errorf("gorm: update auction %d: category %d: %w", a.ID, a.CategoryID, marketplaceerrors.ErrCategoryNotFound)
			}
			return fmt.Errorf("gorm: update auction %d: %w", a.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("gorm: update auction %d: %w", a.ID, marketplaceerrors.ErrAuctionNotFound)
		}
		if err := tx.First(a, a.ID).Error; err != nil {
			return fmt.Errorf("gorm: reload auction %d: %w", a.ID, mapErr(err, marketplaceerrors.ErrAuctionNotFound))
		}
		return nil
	})
}

// DeleteAuction removes an auction; bids, ratings and comments go with it
func (r *GormRepo) DeleteAuction(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Auction{}, id)
	if res.Error != nil {
		return fmt.Errorf("gorm: delete auction %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("gorm: delete auction %d: %w", id, marketplaceerrors.ErrAuctionNotFound)
	}
	return nil
}

// ListBids returns an auction's bids ordered by id
func (r *GormRepo) ListBids(ctx context.Context, auctionID uint) ([]model.Bid, error) {
	var out []model.Bid
	if err := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("gorm: list bids of auction %d: %w", auctionID, err)
	}
	return out, nil
}

// GetBid returns a bid of the given auction
func (r *GormRepo) GetBid(ctx context.Context, auctionID, id uint) (model.Bid, error) {
	var b model.Bid
	if err := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).First(&b, id).Error; err != nil {
		return model.Bid{}, fmt.Errorf("gorm: get bid %d: %w", id, mapErr(err, marketplaceerrors.ErrBidNotFound))
	}
	return b, nil
}

// CreateBid records a bid on an existing auction
func (r *GormRepo) CreateBid(ctx context.Context, b *model.Bid) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("gorm: create bid for auction %d: %w", b.AuctionID, marketplaceerrors.ErrAuctionNotFound)
		}
		return fmt.Errorf("gorm: create bid: %w", err)
	}
	return nil
}

// UpdateBid changes the price of a bid
func (r *GormRepo) UpdateBid(ctx context.Context, b *model.Bid) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Bid{}).Where("id = ? AND auction_id = ?", b.ID, b.AuctionID).Update("price", b.Price)
		if res.Error != nil {
			return fmt.Errorf("gorm: update bid %d: %w", b.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("gorm: update bid %d: %w", b.ID, marketplaceerrors.ErrBidNotFound)
		}
		return tx.First(b, b.ID).Error
	})
}

// DeleteBid removes a bid of the given auction
func (r *GormRepo) DeleteBid(ctx context.Context, auctionID, id uint) error {
	res := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).Delete(&model.Bid{}, id)
	if res.Error != nil {
		return fmt.Errorf("gorm: delete bid %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("gorm: delete bid %d: %w", id, marketplaceerrors.ErrBidNotFound)
	}
	return nil
}

// ListComments returns an auction's comments, newest first
func (r *GormRepo) ListComments(ctx context.Context, auctionID uint) ([]model.Comment, error) {
	var out []model.Comment
	err := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).Order("created_at DESC, id DESC").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list comments of auction %d: %w", auctionID, err)
	}
	return out, nil
}

// GetComment returns a comment of the given auction
func (r *GormRepo) GetComment(ctx context.Context, auctionID, id uint) (model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).First(&c, id).Error; err != nil {
		return model.Comment{}, fmt.Errorf("gorm: get comment %d: %w", id, mapErr(err, marketplaceerrors.ErrCommentNotFound))
	}
	return c, nil
}

// CreateComment records a comment on an existing auction
func (r *GormRepo) CreateComment(ctx context.Context, c *model.Comment) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("gorm: create comment for auction %d: %w", c.AuctionID, marketplaceerrors.ErrAuctionNotFound)
		}
		return fmt.Errorf("gorm: create comment: %w", err)
	}
	return nil
}

// UpdateComment writes title, content and updated_at
func (r *GormRepo) UpdateComment(ctx context.Context, c *model.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Comment{}).
			Where("id = ? AND auction_id = ?", c.ID, c.AuctionID).
			Updates(map[string]any{"title": c.Title, "content": c.Content, "updated_at": c.UpdatedAt})
		if res.Error != nil {
			return fmt.Errorf("gorm: update comment %d: %w", c.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("gorm: update comment %d: %w", c.ID, marketplaceerrors.ErrCommentNotFound)
		}
		return tx.First(c, c.ID).Error
	})
}

// DeleteComment removes a comment of the given auction
func (r *GormRepo) DeleteComment(ctx context.Context, auctionID, id uint) error {
	res := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).Delete(&model.Comment{}, id)
	if res.Error != nil {
		return fmt.Errorf("gorm: delete comment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("gorm: delete comment %d: %w", id, marketplaceerrors.ErrCommentNotFound)
	}
	return nil
}

// ListRatings returns an auction's ratings ordered by id
func (r *GormRepo) ListRatings(ctx context.Context, auctionID uint) ([]model.Rating, error) {
	var out []model.Rating
	if err := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("gorm: list ratings of auction %d: %w", auctionID, err)
	}
	return out, nil
}

// GetRating returns a rating of the given auction
func (r *GormRepo) GetRating(ctx context.Context, auctionID, id uint) (model.Rating, error) {
	var rt model.Rating
	if err := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).First(&rt, id).Error; err != nil {
		return model.Rating{}, fmt.Errorf("gorm: get rating %d: %w", id, mapErr(err, marketplaceerrors.ErrRatingNotFound))
	}
	return rt, nil
}

// GetUserRating returns the rating a user gave an auction
func (r *GormRepo) GetUserRating(ctx context.Context, auctionID, userID uint) (model.Rating, error) {
	var rt model.Rating
	err := r.db.WithContext(ctx).Where("auction_id = ? AND user_id = ?", auctionID, userID).First(&rt).Error
	if err != nil {
		return model.Rating{}, fmt.Errorf("gorm: get rating of user %d: %w", userID, mapErr(err, marketplaceerrors.ErrRatingNotFound))
	}
	return rt, nil
}

// lockAuction takes a row lock on the auction so rating writes on it serialize
func lockAuction(tx *gorm.DB, auctionID uint) error {
	var a model.Auction
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&a, auctionID).Error
	if err != nil {
		return fmt.Errorf("gorm: lock auction %d: %w", auctionID, mapErr(err, marketplaceerrors.ErrAuctionNotFound))
	}
	return nil
}

// recalculate stores the rounded mean of the auction's ratings, 0 when there are none
func recalculate(tx *gorm.DB, auctionID uint) (float64, error) {
	var avg sql.NullFloat64
	row := tx.Model(&model.Rating{}).Where("auction_id = ?", auctionID).Select("AVG(value)::float8").Row()
	if err := row.Scan(&avg); err != nil {
		return 0, fmt.Errorf("gorm: average ratings of auction %d: %w", auctionID, err)
	}

	value := 0.0
	if avg.Valid {
		value = model.RoundRating(avg.Float64)
	}
	if err := tx.Model(&model.Auction{}).Where("id = ?", auctionID).Update("rating", value).Error; err != nil {
		return 0, fmt.Errorf("gorm: store rating of auction %d: %w", auctionID, err)
	}
	return value, nil
}

// UpsertRating creates or replaces the user's rating and recomputes the auction mean
// in the same transaction
func (r *GormRepo) UpsertRating(ctx context.Context, rt model.Rating) (model.RatingResult, error) {
	var result model.RatingResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockAuction(tx, rt.AuctionID); err != nil {
			return err
		}

		var existing model.Rating
		err := tx.Where("auction_id = ? AND user_id = ?", rt.AuctionID, rt.UserID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Model(&existing).Update("value", rt.Value).Error; err != nil {
				return fmt.Errorf("gorm: update rating %d: %w", existing.ID, err)
			}
			existing.Value = rt.Value
			result.Rating = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Omit(clause.Associations).Create(&rt).Error; err != nil {
				return fmt.Errorf("gorm: create rating: %w", err)
			}
			result.Rating = rt
			result.Created = true
		default:
			return fmt.Errorf("gorm: find rating: %w", err)
		}

		avg, err := recalculate(tx, rt.AuctionID)
		if err != nil {
			return err
		}
		result.AuctionRating = avg
		return nil
	})
	if err != nil {
		return model.RatingResult{}, err
	}
	return result, nil
}

// UpdateRating changes the value of an existing rating and recomputes the auction mean
func (r *GormRepo) UpdateRating(ctx context.Context, rt model.Rating) (model.RatingResult, error) {
	var result model.RatingResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockAuction(tx, rt.AuctionID); err != nil {
			return err
		}

		res := tx.Model(&model.Rating{}).Where("id = ? AND auction_id = ?", rt.ID, rt.AuctionID).Update("value", rt.Value)
		if res.Error != nil {
			return fmt.Errorf("gorm: update rating %d: %w", rt.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("gorm: update rating %d: %w", rt.ID, marketplaceerrors.ErrRatingNotFound)
		}
		if err := tx.First(&result.Rating, rt.ID).Error; err != nil {
			return fmt.Errorf("gorm: reload rating %d: %w", rt.ID, err)
		}

		avg, err := recalculate(tx, rt.AuctionID)
		if err != nil {
			return err
		}
		result.AuctionRating = avg
		return nil
	})
	if err != nil {
		return model.RatingResult{}, err
	}
	return result, nil
}

// DeleteRating removes a rating and returns the auction's new mean
func (r *GormRepo) DeleteRating(ctx context.Context, auctionID, id uint) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockAuction(tx, auctionID); err != nil {
			if errors.Is(err, marketplaceerrors.ErrAuctionNotFound) {
				return fmt.Errorf("gorm: delete rating %d: %w", id, marketplaceerrors.ErrRatingNotFound)
			}
			return err
		}

		res := tx.Where("auction_id = ?", auctionID).Delete(&model.Rating{}, id)
		if res.Error != nil {
			return fmt.Errorf("gorm: delete rating %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("gorm: delete rating %d: %w", id, marketplaceerrors.ErrRatingNotFound)
		}

		var err error
		avg, err = recalculate(tx, auctionID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return avg, nil
}
