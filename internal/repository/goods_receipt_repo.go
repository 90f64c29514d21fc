package repository

import (
	"context"

	"dapurstok/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoodsReceiptRepository interface {
	CreateTx(tx *gorm.DB, r *model.GoodsReceipt) error
	FindByPOID(ctx context.Context, poID uuid.UUID) (*model.GoodsReceipt, error)
	// ExistsForPOTx is the in-transaction duplicate guard; the unique index
	// on po_id is the schema-level backstop.
	ExistsForPOTx(tx *gorm.DB, poID uuid.UUID) (bool, error)
}

type goodsReceiptRepo struct{ db *gorm.DB }

func NewGoodsReceiptRepository(db *gorm.DB) GoodsReceiptRepository {
	return &goodsReceiptRepo{db: db}
}

func (r *goodsReceiptRepo) CreateTx(tx *gorm.DB, gr *model.GoodsReceipt) error {
	return tx.Create(gr).Error
}

func (r *goodsReceiptRepo) FindByPOID(ctx context.Context, poID uuid.UUID) (*model.GoodsReceipt, error) {
	var gr model.GoodsReceipt
	err := r.db.WithContext(ctx).Preload("Items").Where("po_id = ?", poID).First(&gr).Error
	return &gr, err
}

func (r *goodsReceiptRepo) ExistsForPOTx(tx *gorm.DB, poID uuid.UUID) (bool, error) {
	var n int64
	err := tx.Model(&model.GoodsReceipt{}).Where("po_id = ?", poID).Count(&n).Error
	return n > 0, err
}
