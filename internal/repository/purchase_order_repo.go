package repository

import (
	"context"

	"dapurstok/internal/dto"
	"dapurstok/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *model.PurchaseOrder) error
	CreateTx(tx *gorm.DB, po *model.PurchaseOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.PurchaseOrder, error)
	List(ctx context.Context, filter dto.POFilter) ([]model.PurchaseOrder, error)
	Recent(ctx context.Context, n int) ([]model.PurchaseOrder, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.POStatus) (int64, error)

	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status model.POStatus) error
	FindItemTx(tx *gorm.DB, itemID uuid.UUID) (*model.PurchaseOrderItem, error)
	ItemsByPOTx(tx *gorm.DB, poID uuid.UUID) ([]model.PurchaseOrderItem, error)
	UpdateItemTx(tx *gorm.DB, itemID uuid.UUID, quantity, total decimal.Decimal) error
	UpdateTotalTx(tx *gorm.DB, poID uuid.UUID, total decimal.Decimal) error
	UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error

	DB() *gorm.DB
}

type purchaseOrderRepo struct{ db *gorm.DB }

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(ctx context.Context, po *model.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(po).Error
}

func (r *purchaseOrderRepo) CreateTx(tx *gorm.DB, po *model.PurchaseOrder) error {
	return tx.Create(po).Error
}

func (r *purchaseOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items.Product").
		Preload("GoodsReceipt.Items").
		First(&po, id).Error
	return &po, err
}

func (r *purchaseOrderRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := tx.Preload("Items").First(&po, id).Error
	return &po, err
}

func (r *purchaseOrderRepo) List(ctx context.Context, filter dto.POFilter) ([]model.PurchaseOrder, error) {
	q := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items.Product")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var orders []model.PurchaseOrder
	err := q.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) Recent(ctx context.Context, n int) ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Order("created_at DESC").Limit(n).Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).Count(&n).Error
	return n, err
}

func (r *purchaseOrderRepo) CountByStatus(ctx context.Context, status model.POStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).
		Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *purchaseOrderRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status model.POStatus) error {
	return tx.Model(&model.PurchaseOrder{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *purchaseOrderRepo) FindItemTx(tx *gorm.DB, itemID uuid.UUID) (*model.PurchaseOrderItem, error) {
	var item model.PurchaseOrderItem
	err := tx.First(&item, itemID).Error
	return &item, err
}

func (r *purchaseOrderRepo) ItemsByPOTx(tx *gorm.DB, poID uuid.UUID) ([]model.PurchaseOrderItem, error) {
	var items []model.PurchaseOrderItem
	err := tx.Where("purchase_order_id = ?", poID).Find(&items).Error
	return items, err
}

func (r *purchaseOrderRepo) UpdateItemTx(tx *gorm.DB, itemID uuid.UUID, quantity, total decimal.Decimal) error {
	return tx.Model(&model.PurchaseOrderItem{}).Where("id = ?", itemID).
		Updates(map[string]interface{}{"quantity": quantity, "total": total}).Error
}

func (r *purchaseOrderRepo) UpdateTotalTx(tx *gorm.DB, poID uuid.UUID, total decimal.Decimal) error {
	return tx.Model(&model.PurchaseOrder{}).Where("id = ?", poID).
		Update("total_amount", total).Error
}

func (r *purchaseOrderRepo) UpdateDocumentPath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).Where("id = ?", id).
		Update("document_path", path).Error
}

func (r *purchaseOrderRepo) DB() *gorm.DB { return r.db }
