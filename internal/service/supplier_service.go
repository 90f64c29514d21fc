package service

import (
	"context"
	"strings"

	"dapurstok/internal/dto"
	"dapurstok/internal/model"
	"dapurstok/internal/repository"

	"github.com/google/uuid"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SupplierRequest) (*dto.SupplierResponse, error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &model.Supplier{
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, *supplierToResponse(&suppliers[i]))
	}
	return out, nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	supplier.Name = req.Name
	supplier.Contact = req.Contact
	supplier.Address = req.Address
	supplier.Email = req.Email
	supplier.Phone = req.Phone
	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

// placeholderSupplier builds the auto-created supplier record for a
// classification bucket that has no supplier yet. Contact data is filler for
// an admin to complete, matching how buckets were provisioned historically.
func placeholderSupplier(bucketName string) *model.Supplier {
	return &model.Supplier{
		Name:    bucketName,
		Address: "Alamat " + bucketName,
		Contact: "Contact " + bucketName,
		Email:   "email@" + strings.ReplaceAll(strings.ToLower(bucketName), " ", "") + ".com",
		Phone:   "08123456789",
	}
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:      s.ID.String(),
		Name:    s.Name,
		Contact: s.Contact,
		Address: s.Address,
		Email:   s.Email,
		Phone:   s.Phone,
	}
}
