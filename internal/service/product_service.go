package service

import (
	"context"
	"errors"
	"strings"

	"dapurstok/internal/classify"
	"dapurstok/internal/dto"
	"dapurstok/internal/model"
	"dapurstok/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ProductService defines the business logic contract for the product registry.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Categories(ctx context.Context) ([]string, error)
	Classify(name string) string
}

type productService struct {
	repo       repository.ProductRepository
	classifier *classify.Classifier
	rdb        *redis.Client
}

func NewProductService(repo repository.ProductRepository, classifier *classify.Classifier, rdb *redis.Client) ProductService {
	return &productService{repo: repo, classifier: classifier, rdb: rdb}
}

// NormalizeSKU derives a stable SKU from a product name: uppercase, spaces
// collapsed to dashes. "Bawang Merah" → "BAWANG-MERAH".
func NormalizeSKU(name string) string {
	return strings.Join(strings.Fields(strings.ToUpper(strings.TrimSpace(name))), "-")
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := req.SKU
	if sku == "" {
		sku = NormalizeSKU(req.Name)
	}

	// Supplier assignment is derived from the classification bucket when the
	// caller does not name one, so products cannot land in a bucket that
	// disagrees with their supplier.
	category := req.Category
	if category == nil {
		c := s.classifier.Category(req.Name)
		category = &c
	}

	product := &model.Product{
		SKU:         sku,
		Name:        req.Name,
		Description: req.Description,
		Category:    category,
		Unit:        req.Unit,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}
	if req.SupplierID != nil {
		sid, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			return nil, errors.New("supplier_id tidak valid")
		}
		product.SupplierID = &sid
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return s.toResponse(ctx, product, false), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return s.toResponse(ctx, product, true), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, *s.toResponse(ctx, &products[i], true))
	}
	return &dto.ProductListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Update never touches Quantity: on-hand stock only changes through ledger
// movements.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Category != nil {
		product.Category = req.Category
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.SupplierID != nil {
		sid, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			return nil, errors.New("supplier_id tidak valid")
		}
		product.SupplierID = &sid
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return s.toResponse(ctx, product, false), nil
}

func (s *productService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *productService) Classify(name string) string {
	return s.classifier.Category(name)
}

// invalidateCache drops the cached catalog listing. Best effort: a stale
// catalog entry is tolerable, a failed write is not.
func (s *productService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, "cache:products").Err(); err != nil {
		log.Warn().Err(err).Msg("product cache invalidation failed")
	}
}

func (s *productService) toResponse(ctx context.Context, p *model.Product, withActivity bool) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:          p.ID.String(),
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Unit:        p.Unit,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
	if p.SupplierID != nil {
		sid := p.SupplierID.String()
		resp.SupplierID = &sid
	}
	if withActivity {
		if d, err := s.repo.LatestPurchaseDate(ctx, p.ID); err == nil && d != nil {
			formatted := d.Format("2006-01-02")
			resp.LastPurchaseDate = &formatted
		}
		if d, err := s.repo.LatestUsageDate(ctx, p.ID); err == nil && d != nil {
			formatted := d.Format("2006-01-02")
			resp.LastUsageDate = &formatted
		}
	}
	return resp
}
