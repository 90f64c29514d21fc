package service

import (
	"context"
	"testing"

	"dapurstok/internal/dto"
	"dapurstok/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryFixture() (InventoryService, *stubProductRepo, *stubMovementRepo) {
	productRepo := newStubProductRepo()
	movementRepo := newStubMovementRepo()
	return NewInventoryService(movementRepo, productRepo), productRepo, movementRepo
}

func TestRecordMovementAdjustsCachedQuantity(t *testing.T) {
	svc, productRepo, movementRepo := newInventoryFixture()
	p := seedProduct(productRepo, "Beras", 100)

	err := svc.RecordMovementTx(nil, &model.StockMovement{
		ProductID: p.ID,
		Type:      model.MovementIn,
		Quantity:  decimal.NewFromInt(25),
		Reference: "PO-2026-001",
	})
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(125)))

	err = svc.RecordMovementTx(nil, &model.StockMovement{
		ProductID: p.ID,
		Type:      model.MovementOut,
		Quantity:  decimal.NewFromInt(40),
		Reference: "USAGE",
	})
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(85)))
	assert.Len(t, movementRepo.movements, 2)
}

func TestRecordMovementRejectsNonPositiveQuantity(t *testing.T) {
	svc, productRepo, movementRepo := newInventoryFixture()
	p := seedProduct(productRepo, "Gula", 10)

	err := svc.RecordMovementTx(nil, &model.StockMovement{
		ProductID: p.ID,
		Type:      model.MovementIn,
		Quantity:  decimal.Zero,
	})
	require.Error(t, err)

	err = svc.RecordMovementTx(nil, &model.StockMovement{
		ProductID: p.ID,
		Type:      model.MovementOut,
		Quantity:  decimal.NewFromInt(-5),
	})
	require.Error(t, err)

	assert.Empty(t, movementRepo.movements)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(10)))
}

func TestGoodsIssueChecksAvailability(t *testing.T) {
	svc, productRepo, movementRepo := newInventoryFixture()
	p := seedProduct(productRepo, "Minyak Goreng", 5)

	req := dto.GoodsIssueRequest{Description: "pemakaian dapur"}
	req.Items = append(req.Items, struct {
		ProductID string          `json:"product_id" validate:"required,uuid"`
		Quantity  decimal.Decimal `json:"quantity"   validate:"required"`
	}{ProductID: p.ID.String(), Quantity: decimal.NewFromInt(8)})

	err := svc.CreateGoodsIssue(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stok tidak mencukupi")
	assert.Empty(t, movementRepo.movements)
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(5)))
}

func TestGoodsIssueRecordsOutMovement(t *testing.T) {
	svc, productRepo, movementRepo := newInventoryFixture()
	p := seedProduct(productRepo, "Minyak Goreng", 5)

	req := dto.GoodsIssueRequest{Description: "pemakaian dapur"}
	req.Items = append(req.Items, struct {
		ProductID string          `json:"product_id" validate:"required,uuid"`
		Quantity  decimal.Decimal `json:"quantity"   validate:"required"`
	}{ProductID: p.ID.String(), Quantity: decimal.NewFromInt(3)})

	require.NoError(t, svc.CreateGoodsIssue(context.Background(), req))
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(2)))
	require.Len(t, movementRepo.movements, 1)
	assert.Equal(t, model.MovementOut, movementRepo.movements[0].Type)
	assert.Equal(t, "USAGE", movementRepo.movements[0].Reference)
}
