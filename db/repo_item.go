package db

import (
	"Gin_postgres_redis_share_it/models"
	"context"
	"strings"
)

// Items

func (r *Repo) CreateItem(ctx context.Context, it *models.Item) error {
	return r.DB.WithContext(ctx).Create(it).Error
}

func (r *Repo) SaveItem(ctx context.Context, it *models.Item) error {
	return r.DB.WithContext(ctx).Save(it).Error
}

func (r *Repo) FindItemByID(ctx context.Context, id int64) (*models.Item, error) {
	var it models.Item
	if err := r.DB.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *Repo) ListItemsByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	return items, err
}

// SearchAvailableItems matches the text case-insensitively against name or
// description; only available items are returned.
func (r *Repo) SearchAvailableItems(ctx context.Context, text string, offset, limit int) ([]models.Item, error) {
	like := "%" + strings.ToLower(text) + "%"
	var items []models.Item
	err := r.DB.WithContext(ctx).
		Where("available = TRUE").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *Repo) ListItemsByRequestIDs(ctx context.Context, requestIDs []int64) ([]models.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	var items []models.Item
	err := r.DB.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// Comments

func (r *Repo) CreateComment(ctx context.Context, c *models.Comment) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *Repo) ListCommentsByItemIDs(ctx context.Context, itemIDs []int64) ([]models.Comment, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var cs []models.Comment
	err := r.DB.WithContext(ctx).
		Preload("Author").
		Where("item_id IN ?", itemIDs).
		Order("id ASC").
		Find(&cs).Error
	return cs, err
}
