package service

import (
	"context"

	"dapurstok/internal/dto"
	"dapurstok/internal/model"
	"dapurstok/internal/repository"

	"github.com/shopspring/decimal"
)

// lowStockThreshold marks products needing reorder attention on the dashboard.
var lowStockThreshold = decimal.NewFromInt(10)

type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	poRepo       repository.PurchaseOrderRepository
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	poRepo repository.PurchaseOrderRepository,
) DashboardService {
	return &dashboardService{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		poRepo:       poRepo,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	totalProducts, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.productRepo.CountLowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	totalSuppliers, err := s.supplierRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingPOs, err := s.poRepo.CountByStatus(ctx, model.POPending)
	if err != nil {
		return nil, err
	}
	recent, err := s.poRepo.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}

	recentPOs := make([]dto.POResponse, 0, len(recent))
	for i := range recent {
		recentPOs = append(recentPOs, *poToResponse(&recent[i]))
	}

	return &dto.DashboardResponse{
		TotalProducts:    totalProducts,
		LowStockProducts: lowStock,
		TotalSuppliers:   totalSuppliers,
		PendingPOs:       pendingPOs,
		RecentPOs:        recentPOs,
	}, nil
}
