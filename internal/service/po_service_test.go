package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"dapurstok/internal/classify"
	"dapurstok/internal/dto"
	"dapurstok/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type poFixture struct {
	svc          PurchaseOrderService
	poRepo       *stubPORepo
	supplierRepo *stubSupplierRepo
	productRepo  *stubProductRepo
	receiptRepo  *stubReceiptRepo
	movementRepo *stubMovementRepo
}

func newPOFixture() *poFixture {
	f := &poFixture{
		poRepo:       newStubPORepo(),
		supplierRepo: newStubSupplierRepo(),
		productRepo:  newStubProductRepo(),
		receiptRepo:  newStubReceiptRepo(),
		movementRepo: newStubMovementRepo(),
	}
	inventory := NewInventoryService(f.movementRepo, f.productRepo)
	f.svc = NewPurchaseOrderService(f.poRepo, f.supplierRepo, f.productRepo, f.receiptRepo,
		inventory, classify.Default(), nil, nil, "")
	return f
}

func (f *poFixture) seedSupplier(name string) *model.Supplier {
	s := &model.Supplier{ID: uuid.New(), Name: name}
	f.supplierRepo.suppliers[s.ID] = s
	return s
}

func TestCreatePOComputesTotals(t *testing.T) {
	f := newPOFixture()
	supplier := f.seedSupplier("Supplier Sayur")
	p1 := seedProduct(f.productRepo, "Bayam", 0)
	p2 := seedProduct(f.productRepo, "Wortel", 0)

	resp, err := f.svc.Create(context.Background(), dto.CreatePORequest{
		SupplierID: supplier.ID.String(),
		Items: []dto.POItemRequest{
			{ProductID: p1.ID.String(), Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(5000), Unit: "kg"},
			{ProductID: p2.ID.String(), Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(7500), Unit: "kg"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("PO-%d-001", time.Now().Year()), resp.PONumber)
	assert.Equal(t, string(model.POPending), resp.Status)
	// 10×5000 + 4×7500 = 80000
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(80000)))
	for _, item := range resp.Items {
		assert.True(t, item.Total.Equal(item.Quantity.Mul(item.UnitPrice)))
	}
}

func TestCreatePORejectsUnknownSupplier(t *testing.T) {
	f := newPOFixture()
	_, err := f.svc.Create(context.Background(), dto.CreatePORequest{
		SupplierID: uuid.NewString(),
		Items: []dto.POItemRequest{
			{ProductID: uuid.NewString(), Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateFromRequestSplitsPerSupplierBucket(t *testing.T) {
	f := newPOFixture()

	resp, err := f.svc.GenerateFromRequest(context.Background(), dto.GeneratePOsRequest{
		RequestNumber: "REQ-2026-014",
		Items: []dto.RequestItem{
			{Name: "Ayam Potong", Quantity: decimal.NewFromInt(20), Price: decimal.NewFromInt(38000), Unit: "kg"},
			{Name: "Bayam Segar", Quantity: decimal.NewFromInt(5), Price: decimal.NewFromInt(4000), Unit: "ikat"},
			{Name: "Daging Ayam Fillet", Quantity: decimal.NewFromInt(10), Price: decimal.NewFromInt(52000), Unit: "kg"},
		},
	})
	require.NoError(t, err)

	// Ayam lines share one supplier bucket, bayam goes to the vegetable one.
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.POIDs, 2)

	// Suppliers and products were auto-created.
	suppliers, _ := f.supplierRepo.List(context.Background())
	assert.Len(t, suppliers, 2)
	products, total, _ := f.productRepo.List(context.Background(), dto.ProductFilter{})
	assert.EqualValues(t, 3, total)
	for _, p := range products {
		assert.True(t, p.Quantity.IsZero(), "generated products start with zero stock")
	}

	for _, po := range f.poRepo.orders {
		assert.Equal(t, model.POPending, po.Status)
		sum := decimal.Zero
		for _, item := range po.Items {
			sum = sum.Add(item.Total)
		}
		assert.True(t, po.TotalAmount.Equal(sum))
	}
}

func TestGenerateFromRequestReusesExistingProducts(t *testing.T) {
	f := newPOFixture()
	existing := seedProduct(f.productRepo, "Ayam Potong", 7)

	_, err := f.svc.GenerateFromRequest(context.Background(), dto.GeneratePOsRequest{
		RequestNumber: "REQ-2026-015",
		Items: []dto.RequestItem{
			{Name: "ayam potong", Quantity: decimal.NewFromInt(5), Price: decimal.NewFromInt(38000), Unit: "kg"},
		},
	})
	require.NoError(t, err)

	_, total, _ := f.productRepo.List(context.Background(), dto.ProductFilter{})
	assert.EqualValues(t, 1, total, "existing product must be reused, not duplicated")
	assert.True(t, existing.Quantity.Equal(decimal.NewFromInt(7)), "generation never touches stock")
}

func TestUpdateStatusEnforcesTransitionTable(t *testing.T) {
	f := newPOFixture()
	supplier := f.seedSupplier("Supplier Daging")
	po := &model.PurchaseOrder{
		ID:         uuid.New(),
		PONumber:   "PO-2026-009",
		SupplierID: supplier.ID,
		Status:     model.POCancelled,
	}
	f.poRepo.orders[po.ID] = po

	_, err := f.svc.UpdateStatus(context.Background(), po.ID, "KIRIM")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, model.POCancelled, po.Status)

	_, err = f.svc.UpdateStatus(context.Background(), po.ID, "MENUNGGU")
	assert.Error(t, err, "unknown status names are rejected outright")
}

func TestUpdateStatusToReceivedBooksStockWithoutReceipt(t *testing.T) {
	f := newPOFixture()
	supplier := f.seedSupplier("Supplier Beras")
	p := seedProduct(f.productRepo, "Beras", 10)
	po := &model.PurchaseOrder{
		ID:         uuid.New(),
		PONumber:   "PO-2026-010",
		SupplierID: supplier.ID,
		Status:     model.POKirim,
		Items: []model.PurchaseOrderItem{
			{ID: uuid.New(), ProductID: p.ID, Quantity: decimal.NewFromInt(50), UnitPrice: decimal.NewFromInt(12000)},
		},
	}
	f.poRepo.orders[po.ID] = po

	resp, err := f.svc.UpdateStatus(context.Background(), po.ID, "RECEIVED")
	require.NoError(t, err)
	assert.Equal(t, string(model.POReceived), resp.Status)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(60)))
	require.Len(t, f.movementRepo.movements, 1)
	assert.Equal(t, model.MovementIn, f.movementRepo.movements[0].Type)
	assert.Equal(t, "PO-2026-010", f.movementRepo.movements[0].Reference)
}

func TestUpdateStatusToReceivedSkipsStockWhenReceiptExists(t *testing.T) {
	f := newPOFixture()
	supplier := f.seedSupplier("Supplier Beras")
	p := seedProduct(f.productRepo, "Beras", 10)
	po := &model.PurchaseOrder{
		ID:         uuid.New(),
		PONumber:   "PO-2026-011",
		SupplierID: supplier.ID,
		Status:     model.POKirim,
		Items: []model.PurchaseOrderItem{
			{ID: uuid.New(), ProductID: p.ID, Quantity: decimal.NewFromInt(50)},
		},
	}
	f.poRepo.orders[po.ID] = po
	f.receiptRepo.receipts[po.ID] = &model.GoodsReceipt{ID: uuid.New(), POID: po.ID}

	_, err := f.svc.UpdateStatus(context.Background(), po.ID, "RECEIVED")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(10)), "receipt flow already booked the stock")
	assert.Empty(t, f.movementRepo.movements)
}

func TestUpdateItemsOnlyWhilePending(t *testing.T) {
	f := newPOFixture()
	supplier := f.seedSupplier("Supplier Telur")
	p := seedProduct(f.productRepo, "Telur", 0)
	itemID := uuid.New()
	po := &model.PurchaseOrder{
		ID:          uuid.New(),
		PONumber:    "PO-2026-012",
		SupplierID:  supplier.ID,
		Status:      model.POKirim,
		TotalAmount: decimal.NewFromInt(30000),
		Items: []model.PurchaseOrderItem{
			{ID: itemID, ProductID: p.ID, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(15000), Total: decimal.NewFromInt(30000)},
		},
	}
	po.Items[0].PurchaseOrderID = po.ID
	f.poRepo.orders[po.ID] = po

	req := dto.UpdatePOItemsRequest{}
	req.Items = append(req.Items, struct {
		ID       string          `json:"id"       validate:"required,uuid"`
		Quantity decimal.Decimal `json:"quantity" validate:"required"`
	}{ID: itemID.String(), Quantity: decimal.NewFromInt(5)})

	_, err := f.svc.UpdateItems(context.Background(), po.ID, req)
	assert.True(t, errors.Is(err, ErrNotEditable))

	po.Status = model.POPending
	resp, err := f.svc.UpdateItems(context.Background(), po.ID, req)
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(75000)))
	assert.True(t, po.Items[0].Total.Equal(decimal.NewFromInt(75000)))
}

func TestSupplierPrefix(t *testing.T) {
	assert.Equal(t, "SUP", supplierPrefix("Supplier Sayur"))
	assert.Equal(t, "AB", supplierPrefix("a b"))
	assert.Equal(t, "GEN", supplierPrefix(""))
}
