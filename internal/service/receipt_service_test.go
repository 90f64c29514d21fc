package service

import (
	"context"
	"testing"
	"time"

	"dapurstok/internal/dto"
	"dapurstok/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receiptFixture struct {
	svc          GoodsReceiptService
	poRepo       *stubPORepo
	receiptRepo  *stubReceiptRepo
	productRepo  *stubProductRepo
	movementRepo *stubMovementRepo
}

func newReceiptFixture() *receiptFixture {
	f := &receiptFixture{
		poRepo:       newStubPORepo(),
		receiptRepo:  newStubReceiptRepo(),
		productRepo:  newStubProductRepo(),
		movementRepo: newStubMovementRepo(),
	}
	inventory := NewInventoryService(f.movementRepo, f.productRepo)
	f.svc = NewGoodsReceiptService(f.receiptRepo, f.poRepo, inventory, nil, "")
	return f
}

func (f *receiptFixture) seedPO(status model.POStatus, items ...model.PurchaseOrderItem) *model.PurchaseOrder {
	po := &model.PurchaseOrder{
		ID:         uuid.New(),
		PONumber:   "PO-20260831-042-SAY",
		SupplierID: uuid.New(),
		Date:       time.Now(),
		Status:     status,
		Items:      items,
	}
	f.poRepo.orders[po.ID] = po
	return po
}

func receiveRequest(po *model.PurchaseOrder, items ...dto.ReceiptItemRequest) dto.ReceiveGoodsRequest {
	return dto.ReceiveGoodsRequest{
		POID:       po.ID.String(),
		DONumber:   "DO-7781",
		ReceivedAt: time.Now(),
		Receiver:   "Budi",
		Items:      items,
	}
}

func TestReceiveBooksAcceptedStock(t *testing.T) {
	f := newReceiptFixture()
	p := seedProduct(f.productRepo, "Cabai", 2)
	po := f.seedPO(model.POKirim, model.PurchaseOrderItem{
		ID: uuid.New(), ProductID: p.ID,
		Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(60000), Unit: "kg",
	})

	resp, err := f.svc.Receive(context.Background(), receiveRequest(po, dto.ReceiptItemRequest{
		ProductID: p.ID.String(), Quantity: decimal.NewFromInt(10),
	}))
	require.NoError(t, err)

	assert.Equal(t, model.POReceived, po.Status)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(12)))
	require.Len(t, f.movementRepo.movements, 1)
	assert.Equal(t, model.MovementIn, f.movementRepo.movements[0].Type)
	assert.Equal(t, "PO-20260831-042-SAY / DO-7781", f.movementRepo.movements[0].Reference)
	assert.Nil(t, resp.ReturnPONumber)
}

func TestReceiveIsRejectedTwice(t *testing.T) {
	f := newReceiptFixture()
	p := seedProduct(f.productRepo, "Cabai", 0)
	po := f.seedPO(model.POKirim, model.PurchaseOrderItem{
		ID: uuid.New(), ProductID: p.ID,
		Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(60000),
	})

	req := receiveRequest(po, dto.ReceiptItemRequest{
		ProductID: p.ID.String(), Quantity: decimal.NewFromInt(10),
	})
	_, err := f.svc.Receive(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.Receive(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(10)), "stock must not be double-applied")
	assert.Len(t, f.movementRepo.movements, 1)
}

func TestReceiveRejectedQuantitySpawnsReturnPO(t *testing.T) {
	f := newReceiptFixture()
	p := seedProduct(f.productRepo, "Tomat", 0)
	po := f.seedPO(model.POKirim, model.PurchaseOrderItem{
		ID: uuid.New(), ProductID: p.ID,
		Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(8000), Unit: "kg",
	})

	resp, err := f.svc.Receive(context.Background(), receiveRequest(po, dto.ReceiptItemRequest{
		ProductID:        p.ID.String(),
		Quantity:         decimal.NewFromInt(7),
		QuantityRejected: decimal.NewFromInt(3),
		Condition:        "busuk",
	}))
	require.NoError(t, err)

	// Only the accepted 7 enter stock.
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(7)))

	require.NotNil(t, resp.ReturnPONumber)
	assert.Equal(t, "PO-RET-20260831-042-SAY", *resp.ReturnPONumber)

	var returnPO *model.PurchaseOrder
	for _, order := range f.poRepo.orders {
		if order.PONumber == *resp.ReturnPONumber {
			returnPO = order
		}
	}
	require.NotNil(t, returnPO)
	assert.Equal(t, po.SupplierID, returnPO.SupplierID)
	assert.Equal(t, model.POPending, returnPO.Status)
	require.Len(t, returnPO.Items, 1)
	// Return is valued at the original purchase price.
	assert.True(t, returnPO.Items[0].UnitPrice.Equal(decimal.NewFromInt(8000)))
	assert.True(t, returnPO.TotalAmount.Equal(decimal.NewFromInt(24000)))
}

func TestReceiveRejectsUnknownProductLine(t *testing.T) {
	f := newReceiptFixture()
	p := seedProduct(f.productRepo, "Tomat", 0)
	po := f.seedPO(model.POKirim, model.PurchaseOrderItem{
		ID: uuid.New(), ProductID: p.ID, Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(8000),
	})

	_, err := f.svc.Receive(context.Background(), receiveRequest(po, dto.ReceiptItemRequest{
		ProductID: uuid.NewString(), Quantity: decimal.NewFromInt(1),
	}))
	require.Error(t, err)
	assert.Empty(t, f.movementRepo.movements)
	assert.Equal(t, model.POKirim, po.Status, "failed receive must not advance the PO")
}

func TestReceiveRequiresReceivablePOStatus(t *testing.T) {
	f := newReceiptFixture()
	p := seedProduct(f.productRepo, "Tomat", 0)
	po := f.seedPO(model.POCancelled, model.PurchaseOrderItem{
		ID: uuid.New(), ProductID: p.ID, Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(8000),
	})

	_, err := f.svc.Receive(context.Background(), receiveRequest(po, dto.ReceiptItemRequest{
		ProductID: p.ID.String(), Quantity: decimal.NewFromInt(10),
	}))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestReturnNumberFor(t *testing.T) {
	assert.Equal(t, "PO-RET-2026-001", returnNumberFor("PO-2026-001"))
	assert.Equal(t, "PO-RET-20260831-042-SAY", returnNumberFor("PO-20260831-042-SAY"))
}
