package db

import (
	"Gin_postgres_redis_share_it/models"
	"context"
)

// Item requests

func (r *Repo) CreateRequest(ctx context.Context, req *models.ItemRequest) error {
	return r.DB.WithContext(ctx).Create(req).Error
}

func (r *Repo) FindRequestByID(ctx context.Context, id int64) (*models.ItemRequest, error) {
	var req models.ItemRequest
	if err := r.DB.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repo) ListRequestsByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	var reqs []models.ItemRequest
	err := r.DB.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// ListRequestsOfOthers returns requests created by anyone but the given user,
// newest first.
func (r *Repo) ListRequestsOfOthers(ctx context.Context, requesterID int64, offset, limit int) ([]models.ItemRequest, error) {
	var reqs []models.ItemRequest
	err := r.DB.WithContext(ctx).
		Where("requester_id <> ?", requesterID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reqs).Error
	return reqs, err
}
