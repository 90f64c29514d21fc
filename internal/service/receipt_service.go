package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dapurstok/internal/dto"
	"dapurstok/internal/model"
	"dapurstok/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoodsReceiptService books arrived shipments against their PO. One receive
// call is one transaction: receipt row, PO status RECEIVED, IN movements for
// accepted quantities, and a return PO when anything was rejected. Either
// all of it lands or none of it does.
type GoodsReceiptService interface {
	Receive(ctx context.Context, req dto.ReceiveGoodsRequest) (*dto.GoodsReceiptResponse, error)
	GetByPOID(ctx context.Context, poID uuid.UUID) (*dto.GoodsReceiptResponse, error)
}

type goodsReceiptService struct {
	receiptRepo repository.GoodsReceiptRepository
	poRepo      repository.PurchaseOrderRepository
	inventory   InventoryService
	mail        EmailDispatcher
	purchasing  string
}

func NewGoodsReceiptService(
	receiptRepo repository.GoodsReceiptRepository,
	poRepo repository.PurchaseOrderRepository,
	inventory InventoryService,
	mail EmailDispatcher,
	purchasingTo string,
) GoodsReceiptService {
	return &goodsReceiptService{
		receiptRepo: receiptRepo,
		poRepo:      poRepo,
		inventory:   inventory,
		mail:        mail,
		purchasing:  purchasingTo,
	}
}

func (s *goodsReceiptService) Receive(ctx context.Context, req dto.ReceiveGoodsRequest) (*dto.GoodsReceiptResponse, error) {
	poID, err := uuid.Parse(req.POID)
	if err != nil {
		return nil, fmt.Errorf("po_id tidak valid: %w", err)
	}

	var (
		poNumber       string
		returnPONumber *string
	)
	err = runTx(ctx, s.poRepo.DB(), func(tx *gorm.DB) error {
		po, err := s.poRepo.FindByIDTx(tx, poID)
		if err != nil {
			return notFound(err)
		}
		poNumber = po.PONumber

		if !po.Status.CanTransition(model.POReceived) {
			return fmt.Errorf("%w: PO %s berstatus %s", ErrConflict, po.PONumber, po.Status)
		}
		exists, err := s.receiptRepo.ExistsForPOTx(tx, po.ID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: PO %s sudah memiliki penerimaan barang", ErrConflict, po.PONumber)
		}

		receipt := &model.GoodsReceipt{
			POID:         po.ID,
			DONumber:     req.DONumber,
			ReceivedAt:   req.ReceivedAt,
			Receiver:     req.Receiver,
			ReceiverSign: req.ReceiverSign,
			Courier:      req.Courier,
			CourierSign:  req.CourierSign,
			Condition:    req.Condition,
			Notes:        req.Notes,
		}

		// Original prices by product, for valuing the return PO.
		priceByProduct := make(map[uuid.UUID]struct {
			price decimal.Decimal
			unit  string
		}, len(po.Items))
		for _, item := range po.Items {
			priceByProduct[item.ProductID] = struct {
				price decimal.Decimal
				unit  string
			}{item.UnitPrice, item.Unit}
		}

		reference := po.PONumber + " / " + req.DONumber
		var rejected []model.PurchaseOrderItem
		for _, line := range req.Items {
			pid, err := uuid.Parse(line.ProductID)
			if err != nil {
				return fmt.Errorf("product_id tidak valid: %w", err)
			}
			original, ok := priceByProduct[pid]
			if !ok {
				return fmt.Errorf("produk %s tidak ada di PO %s", line.ProductID, po.PONumber)
			}

			receipt.Items = append(receipt.Items, model.GoodsReceiptItem{
				ProductID:        pid,
				Quantity:         line.Quantity,
				QuantityRejected: line.QuantityRejected,
				Condition:        line.Condition,
			})

			if line.Quantity.IsPositive() {
				if err := s.inventory.RecordMovementTx(tx, &model.StockMovement{
					ProductID: pid,
					Type:      model.MovementIn,
					Quantity:  line.Quantity,
					Reference: reference,
				}); err != nil {
					return err
				}
			}

			if line.QuantityRejected.IsPositive() {
				rejected = append(rejected, model.PurchaseOrderItem{
					ProductID: pid,
					Quantity:  line.QuantityRejected,
					UnitPrice: original.price,
					Total:     line.QuantityRejected.Mul(original.price),
					Unit:      original.unit,
				})
			}
		}

		if err := s.receiptRepo.CreateTx(tx, receipt); err != nil {
			return err
		}
		if err := s.poRepo.UpdateStatusTx(tx, po.ID, model.POReceived); err != nil {
			return err
		}

		if len(rejected) > 0 {
			number := returnNumberFor(po.PONumber)
			returnPONumber = &number
			if err := s.createReturnPOTx(tx, po, number, rejected); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyPurchasing(ctx, poNumber, req, returnPONumber)

	resp, err := s.GetByPOID(ctx, poID)
	if err != nil {
		return nil, err
	}
	resp.ReturnPONumber = returnPONumber
	return resp, nil
}

func (s *goodsReceiptService) GetByPOID(ctx context.Context, poID uuid.UUID) (*dto.GoodsReceiptResponse, error) {
	receipt, err := s.receiptRepo.FindByPOID(ctx, poID)
	if err != nil {
		return nil, notFound(err)
	}

	resp := &dto.GoodsReceiptResponse{
		ID:         receipt.ID.String(),
		POID:       receipt.POID.String(),
		DONumber:   receipt.DONumber,
		ReceivedAt: receipt.ReceivedAt.Format("2006-01-02T15:04:05Z"),
		Receiver:   receipt.Receiver,
		Courier:    receipt.Courier,
		Condition:  receipt.Condition,
	}
	if po, err := s.poRepo.FindByID(ctx, receipt.POID); err == nil {
		resp.PONumber = po.PONumber
	}
	for _, item := range receipt.Items {
		resp.Items = append(resp.Items, dto.ReceiptItemResponse{
			ProductID:        item.ProductID.String(),
			Quantity:         item.Quantity,
			QuantityRejected: item.QuantityRejected,
			Condition:        item.Condition,
		})
	}
	return resp, nil
}

// createReturnPOTx opens a return order for the rejected quantities, valued
// at the original purchase prices.
func (s *goodsReceiptService) createReturnPOTx(tx *gorm.DB, original *model.PurchaseOrder, number string, items []model.PurchaseOrderItem) error {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total)
	}
	notes := "Retur penolakan dari " + original.PONumber
	return s.poRepo.CreateTx(tx, &model.PurchaseOrder{
		PONumber:    number,
		SupplierID:  original.SupplierID,
		Date:        time.Now(),
		Status:      model.POPending,
		TotalAmount: total,
		Notes:       &notes,
		Items:       items,
	})
}

func (s *goodsReceiptService) notifyPurchasing(ctx context.Context, poNumber string, req dto.ReceiveGoodsRequest, returnPO *string) {
	if s.mail == nil || s.purchasing == "" {
		return
	}
	subject := "Penerimaan barang " + poNumber
	body := fmt.Sprintf("Barang untuk %s diterima oleh %s (surat jalan %s).",
		poNumber, req.Receiver, req.DONumber)
	if returnPO != nil {
		body += fmt.Sprintf(" Terdapat penolakan, retur %s telah dibuat.", *returnPO)
	}
	if err := s.mail.EnqueueEmail(ctx, []string{s.purchasing}, subject, body, ""); err != nil {
		log.Warn().Err(err).Str("po", poNumber).Msg("receipt mail enqueue failed")
	}
}

// returnNumberFor derives the return order number from the received PO:
// everything after the "PO-" prefix is kept, so PO-20260831-042-SAY becomes
// PO-RET-20260831-042-SAY.
func returnNumberFor(poNumber string) string {
	return "PO-RET-" + strings.TrimPrefix(poNumber, "PO-")
}
