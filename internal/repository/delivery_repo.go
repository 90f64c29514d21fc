package repository

import (
	"context"
	"time"

	"dapurstok/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryRepository interface {
	CreateTx(tx *gorm.DB, d *model.DeliveryQueue) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DeliveryQueue, error)
	List(ctx context.Context) ([]model.DeliveryQueue, error)
	Update(ctx context.Context, d *model.DeliveryQueue) error
	// DeleteOlderThan removes entries whose cook date precedes cutoff.
	// Used by the retention cron and the cleanup CLI.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type deliveryRepo struct{ db *gorm.DB }

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository { return &deliveryRepo{db: db} }

func (r *deliveryRepo) CreateTx(tx *gorm.DB, d *model.DeliveryQueue) error {
	return tx.Create(d).Error
}

func (r *deliveryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DeliveryQueue, error) {
	var d model.DeliveryQueue
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *deliveryRepo) List(ctx context.Context) ([]model.DeliveryQueue, error) {
	var items []model.DeliveryQueue
	err := r.db.WithContext(ctx).Order("cook_date DESC").Find(&items).Error
	return items, err
}

func (r *deliveryRepo) Update(ctx context.Context, d *model.DeliveryQueue) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *deliveryRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("cook_date < ?", cutoff).
		Delete(&model.DeliveryQueue{})
	return res.RowsAffected, res.Error
}
