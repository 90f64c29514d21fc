package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"dapurstok/internal/dto"
	"dapurstok/internal/model"
	"dapurstok/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stubs return gorm.ErrRecordNotFound so the services' sentinel mapping
// behaves exactly as it does against the real repositories.
var errStubNotFound = gorm.ErrRecordNotFound

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	return r.Create(context.Background(), p)
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errStubNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubProductRepo) FindBySKUTx(_ *gorm.DB, sku string) (*model.Product, error) {
	return r.FindBySKU(context.Background(), sku)
}

func (r *stubProductRepo) FindByNameFold(_ context.Context, name string) (*model.Product, error) {
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubProductRepo) FindByNameFoldTx(_ *gorm.DB, name string) (*model.Product, error) {
	return r.FindByNameFold(context.Background(), name)
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	var result []model.Product
	for _, p := range r.products {
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range r.products {
		if p.Category != nil && !seen[*p.Category] {
			seen[*p.Category] = true
			out = append(out, *p.Category)
		}
	}
	return out, nil
}

func (r *stubProductRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	p, ok := r.products[id]
	if !ok {
		return errStubNotFound
	}
	p.Quantity = p.Quantity.Add(delta)
	return nil
}

func (r *stubProductRepo) LatestPurchaseDate(_ context.Context, _ uuid.UUID) (*time.Time, error) {
	return nil, nil
}

func (r *stubProductRepo) LatestUsageDate(_ context.Context, _ uuid.UUID) (*time.Time, error) {
	return nil, nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) CountLowStock(_ context.Context, threshold decimal.Decimal) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.Quantity.LessThan(threshold) {
			n++
		}
	}
	return n, nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── In-memory StockMovementRepository stub ───────────────────────────────────

type stubMovementRepo struct {
	movements []*model.StockMovement
}

func newStubMovementRepo() *stubMovementRepo { return &stubMovementRepo{} }

func (r *stubMovementRepo) Create(_ context.Context, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movements = append(r.movements, m)
	return nil
}

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	return r.Create(context.Background(), m)
}

func (r *stubMovementRepo) List(_ context.Context, _ dto.MovementFilter) ([]model.StockMovement, int64, error) {
	out := make([]model.StockMovement, 0, len(r.movements))
	for _, m := range r.movements {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

var _ repository.StockMovementRepository = (*stubMovementRepo)(nil)

// ── In-memory SupplierRepository stub ────────────────────────────────────────

type stubSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) CreateTx(_ *gorm.DB, s *model.Supplier) error {
	return r.Create(context.Background(), s)
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, errStubNotFound
	}
	return s, nil
}

func (r *stubSupplierRepo) FindByName(_ context.Context, name string) (*model.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubSupplierRepo) FindByNameTx(_ *gorm.DB, name string) (*model.Supplier, error) {
	return r.FindByName(context.Background(), name)
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	out := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.suppliers)), nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── In-memory PurchaseOrderRepository stub ───────────────────────────────────

type stubPORepo struct {
	orders map[uuid.UUID]*model.PurchaseOrder
}

func newStubPORepo() *stubPORepo {
	return &stubPORepo{orders: make(map[uuid.UUID]*model.PurchaseOrder)}
}

func (r *stubPORepo) Create(_ context.Context, po *model.PurchaseOrder) error {
	if po.ID == uuid.Nil {
		po.ID = uuid.New()
	}
	for i := range po.Items {
		if po.Items[i].ID == uuid.Nil {
			po.Items[i].ID = uuid.New()
		}
		po.Items[i].PurchaseOrderID = po.ID
	}
	r.orders[po.ID] = po
	return nil
}

func (r *stubPORepo) CreateTx(_ *gorm.DB, po *model.PurchaseOrder) error {
	return r.Create(context.Background(), po)
}

func (r *stubPORepo) FindByID(_ context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	po, ok := r.orders[id]
	if !ok {
		return nil, errStubNotFound
	}
	return po, nil
}

func (r *stubPORepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.PurchaseOrder, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubPORepo) List(_ context.Context, filter dto.POFilter) ([]model.PurchaseOrder, error) {
	var out []model.PurchaseOrder
	for _, po := range r.orders {
		if filter.Status != "" && string(po.Status) != filter.Status {
			continue
		}
		out = append(out, *po)
	}
	return out, nil
}

func (r *stubPORepo) Recent(_ context.Context, n int) ([]model.PurchaseOrder, error) {
	var out []model.PurchaseOrder
	for _, po := range r.orders {
		if len(out) >= n {
			break
		}
		out = append(out, *po)
	}
	return out, nil
}

func (r *stubPORepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *stubPORepo) CountByStatus(_ context.Context, status model.POStatus) (int64, error) {
	var n int64
	for _, po := range r.orders {
		if po.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubPORepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status model.POStatus) error {
	po, ok := r.orders[id]
	if !ok {
		return errStubNotFound
	}
	po.Status = status
	return nil
}

func (r *stubPORepo) FindItemTx(_ *gorm.DB, itemID uuid.UUID) (*model.PurchaseOrderItem, error) {
	for _, po := range r.orders {
		for i := range po.Items {
			if po.Items[i].ID == itemID {
				return &po.Items[i], nil
			}
		}
	}
	return nil, errStubNotFound
}

func (r *stubPORepo) ItemsByPOTx(_ *gorm.DB, poID uuid.UUID) ([]model.PurchaseOrderItem, error) {
	po, ok := r.orders[poID]
	if !ok {
		return nil, errStubNotFound
	}
	return po.Items, nil
}

func (r *stubPORepo) UpdateItemTx(_ *gorm.DB, itemID uuid.UUID, quantity, total decimal.Decimal) error {
	for _, po := range r.orders {
		for i := range po.Items {
			if po.Items[i].ID == itemID {
				po.Items[i].Quantity = quantity
				po.Items[i].Total = total
				return nil
			}
		}
	}
	return errStubNotFound
}

func (r *stubPORepo) UpdateTotalTx(_ *gorm.DB, poID uuid.UUID, total decimal.Decimal) error {
	po, ok := r.orders[poID]
	if !ok {
		return errStubNotFound
	}
	po.TotalAmount = total
	return nil
}

func (r *stubPORepo) UpdateDocumentPath(_ context.Context, id uuid.UUID, path string) error {
	po, ok := r.orders[id]
	if !ok {
		return errStubNotFound
	}
	po.DocumentPath = &path
	return nil
}

func (r *stubPORepo) DB() *gorm.DB { return nil }

var _ repository.PurchaseOrderRepository = (*stubPORepo)(nil)

// ── In-memory GoodsReceiptRepository stub ────────────────────────────────────

type stubReceiptRepo struct {
	receipts map[uuid.UUID]*model.GoodsReceipt // keyed by PO ID
}

func newStubReceiptRepo() *stubReceiptRepo {
	return &stubReceiptRepo{receipts: make(map[uuid.UUID]*model.GoodsReceipt)}
}

func (r *stubReceiptRepo) CreateTx(_ *gorm.DB, gr *model.GoodsReceipt) error {
	if _, exists := r.receipts[gr.POID]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	if gr.ID == uuid.Nil {
		gr.ID = uuid.New()
	}
	r.receipts[gr.POID] = gr
	return nil
}

func (r *stubReceiptRepo) FindByPOID(_ context.Context, poID uuid.UUID) (*model.GoodsReceipt, error) {
	gr, ok := r.receipts[poID]
	if !ok {
		return nil, errStubNotFound
	}
	return gr, nil
}

func (r *stubReceiptRepo) ExistsForPOTx(_ *gorm.DB, poID uuid.UUID) (bool, error) {
	_, ok := r.receipts[poID]
	return ok, nil
}

var _ repository.GoodsReceiptRepository = (*stubReceiptRepo)(nil)

// ── In-memory RecipeRepository stub ──────────────────────────────────────────

type stubRecipeRepo struct {
	recipes map[uuid.UUID]*model.Recipe
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{recipes: make(map[uuid.UUID]*model.Recipe)}
}

func (r *stubRecipeRepo) Create(_ context.Context, rec *model.Recipe) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.recipes[rec.ID] = rec
	return nil
}

func (r *stubRecipeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, errStubNotFound
	}
	return rec, nil
}

func (r *stubRecipeRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Recipe, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubRecipeRepo) FindByNameAndRequest(_ context.Context, name, requestID string) (*model.Recipe, error) {
	for _, rec := range r.recipes {
		if rec.Name == name && rec.RequestID != nil && *rec.RequestID == requestID {
			return rec, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubRecipeRepo) List(_ context.Context) ([]model.Recipe, error) {
	out := make([]model.Recipe, 0, len(r.recipes))
	for _, rec := range r.recipes {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *stubRecipeRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.recipes[id]; !ok {
		return 0, nil
	}
	delete(r.recipes, id)
	return 1, nil
}

func (r *stubRecipeRepo) DB() *gorm.DB { return nil }

var _ repository.RecipeRepository = (*stubRecipeRepo)(nil)

// ── In-memory DeliveryRepository stub ────────────────────────────────────────

type stubDeliveryRepo struct {
	entries map[uuid.UUID]*model.DeliveryQueue
}

func newStubDeliveryRepo() *stubDeliveryRepo {
	return &stubDeliveryRepo{entries: make(map[uuid.UUID]*model.DeliveryQueue)}
}

func (r *stubDeliveryRepo) CreateTx(_ *gorm.DB, d *model.DeliveryQueue) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.entries[d.ID] = d
	return nil
}

func (r *stubDeliveryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.DeliveryQueue, error) {
	d, ok := r.entries[id]
	if !ok {
		return nil, errStubNotFound
	}
	return d, nil
}

func (r *stubDeliveryRepo) List(_ context.Context) ([]model.DeliveryQueue, error) {
	out := make([]model.DeliveryQueue, 0, len(r.entries))
	for _, d := range r.entries {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDeliveryRepo) Update(_ context.Context, d *model.DeliveryQueue) error {
	r.entries[d.ID] = d
	return nil
}

func (r *stubDeliveryRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for id, d := range r.entries {
		if d.CookDate.Before(cutoff) {
			delete(r.entries, id)
			n++
		}
	}
	return n, nil
}

var _ repository.DeliveryRepository = (*stubDeliveryRepo)(nil)

// ── Shared helpers ───────────────────────────────────────────────────────────

func seedProduct(repo *stubProductRepo, name string, quantity float64) *model.Product {
	p := &model.Product{
		ID:       uuid.New(),
		SKU:      NormalizeSKU(name),
		Name:     name,
		Unit:     "kg",
		Price:    decimal.NewFromInt(10000),
		Quantity: decimal.NewFromFloat(quantity),
	}
	repo.products[p.ID] = p
	return p
}
