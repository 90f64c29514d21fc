package service

import (
	"context"
	"fmt"

	"dapurstok/internal/dto"
	"dapurstok/internal/model"
	"dapurstok/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryService is the stock ledger: every quantity change goes through
// RecordMovementTx so the movement log and the cached Product.Quantity can
// never diverge.
type InventoryService interface {
	// RecordMovementTx appends a movement row and adjusts the product's
	// cached quantity in the caller's transaction. For OUT movements the
	// caller must have verified sufficiency inside the same transaction —
	// the ledger does not second-guess the business reason for the change.
	RecordMovementTx(tx *gorm.DB, m *model.StockMovement) error

	// CreateGoodsIssue withdraws stock for kitchen usage or write-off.
	// Per-item availability is re-checked inside the transaction; any
	// shortage aborts the whole issue.
	CreateGoodsIssue(ctx context.Context, req dto.GoodsIssueRequest) error

	ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error)
}

type inventoryService struct {
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

func NewInventoryService(movementRepo repository.StockMovementRepository, productRepo repository.ProductRepository) InventoryService {
	return &inventoryService{movementRepo: movementRepo, productRepo: productRepo}
}

func (s *inventoryService) RecordMovementTx(tx *gorm.DB, m *model.StockMovement) error {
	if m.Quantity.IsNegative() || m.Quantity.IsZero() {
		return fmt.Errorf("movement quantity must be positive, got %s", m.Quantity)
	}

	if err := s.movementRepo.CreateTx(tx, m); err != nil {
		return err
	}

	delta := m.Quantity
	if m.Type == model.MovementOut {
		delta = delta.Neg()
	}
	return s.productRepo.UpdateStockTx(tx, m.ProductID, delta)
}

func (s *inventoryService) CreateGoodsIssue(ctx context.Context, req dto.GoodsIssueRequest) error {
	reference := "USAGE"
	if req.Reference != nil && *req.Reference != "" {
		reference = *req.Reference
	}

	return runTx(ctx, s.productRepo.DB(), func(tx *gorm.DB) error {
		for _, item := range req.Items {
			if !item.Quantity.IsPositive() {
				continue
			}
			pid, err := uuid.Parse(item.ProductID)
			if err != nil {
				return fmt.Errorf("product_id tidak valid: %w", err)
			}

			// Availability check must use the in-transaction read, not a
			// value fetched before the transaction opened.
			product, err := s.productRepo.FindByIDTx(tx, pid)
			if err != nil {
				return notFound(err)
			}
			if product.Quantity.LessThan(item.Quantity) {
				return fmt.Errorf("stok tidak mencukupi untuk %s (tersedia: %s)",
					product.Name, product.Quantity)
			}

			if err := s.RecordMovementTx(tx, &model.StockMovement{
				ProductID: pid,
				Type:      model.MovementOut,
				Quantity:  item.Quantity,
				Reference: reference,
				Notes:     req.Description,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *inventoryService) ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 100
	}

	movements, total, err := s.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		name := ""
		if m.Product != nil {
			name = m.Product.Name
		}
		data = append(data, dto.MovementResponse{
			ID:        m.ID.String(),
			ProductID: m.ProductID.String(),
			Product:   name,
			Type:      string(m.Type),
			Quantity:  m.Quantity,
			Reference: m.Reference,
			Notes:     m.Notes,
			CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return &dto.MovementListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}
