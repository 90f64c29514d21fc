package repository

import (
	"context"
	"time"

	"dapurstok/internal/dto"
	"dapurstok/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	CreateTx(tx *gorm.DB, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	FindBySKUTx(tx *gorm.DB, sku string) (*model.Product, error)
	FindByNameFold(ctx context.Context, name string) (*model.Product, error)
	FindByNameFoldTx(tx *gorm.DB, name string) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	Update(ctx context.Context, p *model.Product) error
	Categories(ctx context.Context) ([]string, error)

	// UpdateStockTx adjusts the cached quantity by a signed delta. Must only
	// be called inside the transaction that appends the matching movement.
	UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error

	// Activity dates used to enrich product listings.
	LatestPurchaseDate(ctx context.Context, productID uuid.UUID) (*time.Time, error)
	LatestUsageDate(ctx context.Context, productID uuid.UUID) (*time.Time, error)

	// Dashboard counters.
	Count(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold decimal.Decimal) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) CreateTx(tx *gorm.DB, p *model.Product) error {
	return tx.Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := tx.First(&p, id).Error
	return &p, err
}

func (r *productRepo) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&p).Error
	return &p, err
}

func (r *productRepo) FindBySKUTx(tx *gorm.DB, sku string) (*model.Product, error) {
	var p model.Product
	err := tx.Where("sku = ?", sku).First(&p).Error
	return &p, err
}

func (r *productRepo) FindByNameFold(ctx context.Context, name string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&p).Error
	return &p, err
}

func (r *productRepo) FindByNameFoldTx(tx *gorm.DB, name string) (*model.Product, error) {
	var p model.Product
	err := tx.Where("LOWER(name) = LOWER(?)", name).First(&p).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.SKU != "" {
		q = q.Where("sku = ?", filter.SKU)
	}
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("category IS NOT NULL").
		Distinct().Pluck("category", &categories).Error
	return categories, err
}

func (r *productRepo) UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	return tx.Model(&model.Product{}).Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *productRepo) LatestPurchaseDate(ctx context.Context, productID uuid.UUID) (*time.Time, error) {
	var date time.Time
	err := r.db.WithContext(ctx).Model(&model.PurchaseOrderItem{}).
		Select("purchase_orders.date").
		Joins("JOIN purchase_orders ON purchase_orders.id = purchase_order_items.purchase_order_id").
		Where("purchase_order_items.product_id = ?", productID).
		Order("purchase_orders.date DESC").Limit(1).Scan(&date).Error
	if err != nil || date.IsZero() {
		return nil, err
	}
	return &date, nil
}

func (r *productRepo) LatestUsageDate(ctx context.Context, productID uuid.UUID) (*time.Time, error) {
	var date time.Time
	err := r.db.WithContext(ctx).Model(&model.StockMovement{}).
		Select("created_at").
		Where("product_id = ? AND type = ?", productID, model.MovementOut).
		Order("created_at DESC").Limit(1).Scan(&date).Error
	if err != nil || date.IsZero() {
		return nil, err
	}
	return &date, nil
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}

func (r *productRepo) CountLowStock(ctx context.Context, threshold decimal.Decimal) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("quantity < ?", threshold).Count(&n).Error
	return n, err
}

func (r *productRepo) DB() *gorm.DB { return r.db }
