package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"dapurstok/internal/classify"
	"dapurstok/internal/dto"
	"dapurstok/internal/infra"
	"dapurstok/internal/model"
	"dapurstok/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseOrderService owns the PO lifecycle: creation (manual and generated
// from a purchase request), guarded status changes and PENDING-only item
// edits. Totals are cached aggregates recomputed inside the same transaction
// as the item change that invalidated them.
type PurchaseOrderService interface {
	Create(ctx context.Context, req dto.CreatePORequest) (*dto.POResponse, error)
	GenerateFromRequest(ctx context.Context, req dto.GeneratePOsRequest) (*dto.GeneratePOsResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.POResponse, error)
	List(ctx context.Context, filter dto.POFilter) ([]dto.POResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.POResponse, error)
	UpdateItems(ctx context.Context, id uuid.UUID, req dto.UpdatePOItemsRequest) (*dto.POResponse, error)
}

type purchaseOrderService struct {
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	receiptRepo  repository.GoodsReceiptRepository
	inventory    InventoryService
	classifier   *classify.Classifier
	docs         *infra.DocumentStore
	mail         EmailDispatcher
	purchasingTo string
}

func NewPurchaseOrderService(
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	receiptRepo repository.GoodsReceiptRepository,
	inventory InventoryService,
	classifier *classify.Classifier,
	docs *infra.DocumentStore,
	mail EmailDispatcher,
	purchasingTo string,
) PurchaseOrderService {
	return &purchaseOrderService{
		poRepo:       poRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		receiptRepo:  receiptRepo,
		inventory:    inventory,
		classifier:   classifier,
		docs:         docs,
		mail:         mail,
		purchasingTo: purchasingTo,
	}
}

func (s *purchaseOrderService) Create(ctx context.Context, req dto.CreatePORequest) (*dto.POResponse, error) {
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("supplier_id tidak valid: %w", err)
	}
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, notFound(err)
	}

	count, err := s.poRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	po := &model.PurchaseOrder{
		PONumber:   fmt.Sprintf("PO-%d-%03d", time.Now().Year(), count+1),
		SupplierID: supplierID,
		Date:       time.Now(),
		Status:     model.POPending,
		Notes:      req.Notes,
	}

	total := decimal.Zero
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product_id tidak valid: %w", err)
		}
		if !item.Quantity.IsPositive() {
			return nil, fmt.Errorf("jumlah item harus lebih dari 0")
		}
		lineTotal := item.Quantity.Mul(item.UnitPrice)
		po.Items = append(po.Items, model.PurchaseOrderItem{
			ProductID: pid,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     lineTotal,
			Unit:      item.Unit,
		})
		total = total.Add(lineTotal)
	}
	po.TotalAmount = total

	if err := s.poRepo.Create(ctx, po); err != nil {
		return nil, err
	}

	s.attachDocument(ctx, po)
	return s.GetByID(ctx, po.ID)
}

// GenerateFromRequest splits a purchase request into one PO per supplier
// bucket. Unknown items and missing bucket suppliers are created on the fly
// so a request can never be partially placeable; the whole split commits or
// nothing does.
func (s *purchaseOrderService) GenerateFromRequest(ctx context.Context, req dto.GeneratePOsRequest) (*dto.GeneratePOsResponse, error) {
	// Bucket the request lines first; the transaction below only does writes.
	buckets := make(map[string][]dto.RequestItem)
	for _, item := range req.Items {
		bucket := item.Category
		if bucket == "" {
			bucket = s.classifier.Category(item.Name)
		}
		buckets[bucket] = append(buckets[bucket], item)
	}
	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	var created []*model.PurchaseOrder
	err := runTx(ctx, s.poRepo.DB(), func(tx *gorm.DB) error {
		for _, bucketName := range names {
			supplier, err := s.supplierRepo.FindByNameTx(tx, bucketName)
			if err != nil {
				supplier = placeholderSupplier(bucketName)
				if err := s.supplierRepo.CreateTx(tx, supplier); err != nil {
					return err
				}
			}

			po := &model.PurchaseOrder{
				PONumber:     generatedPONumber(supplier.Name),
				SupplierID:   supplier.ID,
				Date:         time.Now(),
				Status:       model.POPending,
				DocumentPath: req.DocumentPath,
			}
			notes := "Generated from request " + req.RequestNumber
			po.Notes = &notes

			total := decimal.Zero
			for _, line := range buckets[bucketName] {
				product, err := s.resolveProductTx(tx, line, bucketName, supplier.ID)
				if err != nil {
					return err
				}
				lineTotal := line.Quantity.Mul(line.Price)
				po.Items = append(po.Items, model.PurchaseOrderItem{
					ProductID: product.ID,
					Quantity:  line.Quantity,
					UnitPrice: line.Price,
					Total:     lineTotal,
					Unit:      line.Unit,
				})
				total = total.Add(lineTotal)
			}
			po.TotalAmount = total

			if err := s.poRepo.CreateTx(tx, po); err != nil {
				return err
			}
			created = append(created, po)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(created))
	for _, po := range created {
		s.attachDocument(ctx, po)
		ids = append(ids, po.ID.String())
	}

	return &dto.GeneratePOsResponse{
		Count:   len(created),
		Message: fmt.Sprintf("%d purchase order dibuat dari permintaan %s", len(created), req.RequestNumber),
		POIDs:   ids,
	}, nil
}

func (s *purchaseOrderService) GetByID(ctx context.Context, id uuid.UUID) (*dto.POResponse, error) {
	po, err := s.poRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return poToResponse(po), nil
}

func (s *purchaseOrderService) List(ctx context.Context, filter dto.POFilter) ([]dto.POResponse, error) {
	orders, err := s.poRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.POResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *poToResponse(&orders[i]))
	}
	return out, nil
}

// UpdateStatus moves a PO along its lifecycle. Marking a PO RECEIVED without
// a goods receipt still books the stock in, so the ledger and the status can
// never disagree; when a receipt already exists the receipt flow has booked
// the movements and the transition is a no-op on stock.
func (s *purchaseOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.POResponse, error) {
	next := model.POStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("status tidak dikenal: %s", status)
	}

	err := runTx(ctx, s.poRepo.DB(), func(tx *gorm.DB) error {
		po, err := s.poRepo.FindByIDTx(tx, id)
		if err != nil {
			return notFound(err)
		}
		if !po.Status.CanTransition(next) {
			return fmt.Errorf("%w: %s -> %s", ErrConflict, po.Status, next)
		}

		if next == model.POReceived {
			exists, err := s.receiptRepo.ExistsForPOTx(tx, po.ID)
			if err != nil {
				return err
			}
			if !exists {
				for _, item := range po.Items {
					if err := s.inventory.RecordMovementTx(tx, &model.StockMovement{
						ProductID: item.ProductID,
						Type:      model.MovementIn,
						Quantity:  item.Quantity,
						Reference: po.PONumber,
					}); err != nil {
						return err
					}
				}
			}
		}

		return s.poRepo.UpdateStatusTx(tx, po.ID, next)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// UpdateItems edits quantities on a PENDING order and recomputes line and
// order totals in one transaction.
func (s *purchaseOrderService) UpdateItems(ctx context.Context, id uuid.UUID, req dto.UpdatePOItemsRequest) (*dto.POResponse, error) {
	err := runTx(ctx, s.poRepo.DB(), func(tx *gorm.DB) error {
		po, err := s.poRepo.FindByIDTx(tx, id)
		if err != nil {
			return notFound(err)
		}
		if po.Status != model.POPending {
			return ErrNotEditable
		}

		for _, edit := range req.Items {
			itemID, err := uuid.Parse(edit.ID)
			if err != nil {
				return fmt.Errorf("item id tidak valid: %w", err)
			}
			if !edit.Quantity.IsPositive() {
				return fmt.Errorf("jumlah item harus lebih dari 0")
			}
			item, err := s.poRepo.FindItemTx(tx, itemID)
			if err != nil {
				return notFound(err)
			}
			if item.PurchaseOrderID != po.ID {
				return ErrNotFound
			}
			if err := s.poRepo.UpdateItemTx(tx, item.ID, edit.Quantity, edit.Quantity.Mul(item.UnitPrice)); err != nil {
				return err
			}
		}

		items, err := s.poRepo.ItemsByPOTx(tx, po.ID)
		if err != nil {
			return err
		}
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Total)
		}
		return s.poRepo.UpdateTotalTx(tx, po.ID, total)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// resolveProductTx maps a request line to a catalog product: SKU first, then
// case-insensitive name, creating the product when neither matches.
func (s *purchaseOrderService) resolveProductTx(tx *gorm.DB, line dto.RequestItem, bucket string, supplierID uuid.UUID) (*model.Product, error) {
	sku := NormalizeSKU(line.Name)
	if product, err := s.productRepo.FindBySKUTx(tx, sku); err == nil {
		return product, nil
	}
	if product, err := s.productRepo.FindByNameFoldTx(tx, line.Name); err == nil {
		return product, nil
	}

	category := bucket
	product := &model.Product{
		SKU:        sku,
		Name:       line.Name,
		Category:   &category,
		Unit:       line.Unit,
		Price:      line.Price,
		Quantity:   decimal.Zero,
		SupplierID: &supplierID,
	}
	if err := s.productRepo.CreateTx(tx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// attachDocument renders the PO sheet, stores it and emails purchasing.
// Both are post-commit conveniences: a failure is logged, never rolled back
// into the order itself.
func (s *purchaseOrderService) attachDocument(ctx context.Context, po *model.PurchaseOrder) {
	if s.docs == nil {
		return
	}

	full, err := s.poRepo.FindByID(ctx, po.ID)
	if err != nil {
		log.Warn().Err(err).Str("po", po.PONumber).Msg("reload for pdf failed")
		return
	}
	path, err := infra.RenderPurchaseOrderPDF(full, s.docs)
	if err != nil {
		log.Warn().Err(err).Str("po", po.PONumber).Msg("po pdf render failed")
		return
	}
	if err := s.poRepo.UpdateDocumentPath(ctx, po.ID, path); err != nil {
		log.Warn().Err(err).Str("po", po.PONumber).Msg("po document path update failed")
		return
	}

	if s.mail != nil && s.purchasingTo != "" {
		subject := "Purchase Order " + po.PONumber
		body := fmt.Sprintf("Purchase order %s telah dibuat dengan total %s.",
			po.PONumber, full.TotalAmount.StringFixed(2))
		if err := s.mail.EnqueueEmail(ctx, []string{s.purchasingTo}, subject, body, s.docs.Resolve(path)); err != nil {
			log.Warn().Err(err).Str("po", po.PONumber).Msg("po mail enqueue failed")
		}
	}
}

// generatedPONumber builds PO-{yyyymmdd}-{rand}-{prefix}. The random segment
// keeps numbers unique across concurrent request splits on the same day.
func generatedPONumber(supplierName string) string {
	return fmt.Sprintf("PO-%s-%03d-%s",
		time.Now().Format("20060102"), rand.Intn(1000), supplierPrefix(supplierName))
}

func supplierPrefix(name string) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(name, " ", ""))
	if len(cleaned) > 3 {
		cleaned = cleaned[:3]
	}
	if cleaned == "" {
		cleaned = "GEN"
	}
	return cleaned
}

func poToResponse(po *model.PurchaseOrder) *dto.POResponse {
	resp := &dto.POResponse{
		ID:           po.ID.String(),
		PONumber:     po.PONumber,
		SupplierID:   po.SupplierID.String(),
		Date:         po.Date.Format("2006-01-02"),
		Status:       string(po.Status),
		TotalAmount:  po.TotalAmount,
		DocumentPath: po.DocumentPath,
		Notes:        po.Notes,
		Items:        make([]dto.POItemResponse, 0, len(po.Items)),
	}
	if po.Supplier != nil {
		resp.Supplier = po.Supplier.Name
	}
	for _, item := range po.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		resp.Items = append(resp.Items, dto.POItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Product:   name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
			Unit:      item.Unit,
		})
	}
	return resp
}
