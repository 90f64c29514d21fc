package service

import (
	"context"
	"fmt"
	"time"

	"dapurstok/internal/dto"
	"dapurstok/internal/model"
	"dapurstok/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DistributionService drives the post-cook QC and shipment state machine.
// QC rejection is a disposition decision only: consumed ingredients stay
// consumed, the batch just never ships.
type DistributionService interface {
	List(ctx context.Context) ([]dto.DeliveryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DeliveryResponse, error)
	SubmitQC(ctx context.Context, id uuid.UUID, req dto.SubmitQCRequest) (*dto.DeliveryResponse, error)
	Ship(ctx context.Context, id uuid.UUID, req dto.ShipItemRequest) (*dto.DeliveryResponse, error)
	// CleanupOld deletes entries cooked before now minus retentionDays.
	CleanupOld(ctx context.Context, retentionDays int) (int64, error)
}

type distributionService struct {
	repo repository.DeliveryRepository
}

func NewDistributionService(repo repository.DeliveryRepository) DistributionService {
	return &distributionService{repo: repo}
}

func (s *distributionService) List(ctx context.Context) ([]dto.DeliveryResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeliveryResponse, 0, len(items))
	for i := range items {
		out = append(out, *deliveryToResponse(&items[i]))
	}
	return out, nil
}

func (s *distributionService) GetByID(ctx context.Context, id uuid.UUID) (*dto.DeliveryResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return deliveryToResponse(d), nil
}

func (s *distributionService) SubmitQC(ctx context.Context, id uuid.UUID, req dto.SubmitQCRequest) (*dto.DeliveryResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	next := model.DeliveryReadyToShip
	if req.Status == "REJECT" {
		next = model.DeliveryRejected
	}
	if !d.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: QC untuk batch %s berstatus %s", ErrConflict, d.MenuName, d.Status)
	}

	now := time.Now()
	d.Status = next
	d.QCStatus = &req.Status
	d.QCBy = &req.QCBy
	d.QCDate = &now
	if req.Notes != "" {
		d.QCNotes = &req.Notes
	}
	d.PhotoURL = req.PhotoURL

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return deliveryToResponse(d), nil
}

func (s *distributionService) Ship(ctx context.Context, id uuid.UUID, req dto.ShipItemRequest) (*dto.DeliveryResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !d.Status.CanTransition(model.DeliveryShipped) {
		return nil, fmt.Errorf("%w: batch %s berstatus %s, belum lolos QC", ErrConflict, d.MenuName, d.Status)
	}

	shippedAt := time.Now()
	if req.ShippedAt != nil {
		shippedAt = *req.ShippedAt
	}

	d.Status = model.DeliveryShipped
	d.ShippedAt = &shippedAt
	d.SenderName = &req.SenderName
	d.ReceiverName = &req.ReceiverName
	d.Destination = &req.Destination
	d.ArrivalTime = req.ArrivalTime
	if req.SenderSign != "" {
		d.SenderSign = &req.SenderSign
	}
	if req.ReceiverSign != "" {
		d.ReceiverSign = &req.ReceiverSign
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return deliveryToResponse(d), nil
}

func (s *distributionService) CleanupOld(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention days must be positive, got %d", retentionDays)
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	n, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info().Int64("deleted", n).Time("cutoff", cutoff).Msg("delivery queue retention cleanup")
	}
	return n, nil
}

func deliveryToResponse(d *model.DeliveryQueue) *dto.DeliveryResponse {
	fmtTime := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format("2006-01-02T15:04:05Z")
		return &s
	}
	return &dto.DeliveryResponse{
		ID:           d.ID.String(),
		MenuName:     d.MenuName,
		Quantity:     d.Quantity,
		Status:       string(d.Status),
		CookDate:     d.CookDate.Format("2006-01-02"),
		QCStatus:     d.QCStatus,
		QCBy:         d.QCBy,
		QCDate:       fmtTime(d.QCDate),
		QCNotes:      d.QCNotes,
		PhotoURL:     d.PhotoURL,
		ShippedAt:    fmtTime(d.ShippedAt),
		SenderName:   d.SenderName,
		ReceiverName: d.ReceiverName,
		Destination:  d.Destination,
		ArrivalTime:  fmtTime(d.ArrivalTime),
	}
}
