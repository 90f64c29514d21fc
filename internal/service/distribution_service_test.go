package service

import (
	"context"
	"testing"
	"time"

	"dapurstok/internal/dto"
	"dapurstok/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDistributionFixture() (DistributionService, *stubDeliveryRepo) {
	repo := newStubDeliveryRepo()
	return NewDistributionService(repo), repo
}

func seedDelivery(repo *stubDeliveryRepo, status model.DeliveryStatus, cookDate time.Time) *model.DeliveryQueue {
	d := &model.DeliveryQueue{
		ID:       uuid.New(),
		MenuName: "Soto Ayam",
		Quantity: 50,
		Status:   status,
		CookDate: cookDate,
	}
	repo.entries[d.ID] = d
	return d
}

func TestSubmitQCPassMovesToReadyToShip(t *testing.T) {
	svc, repo := newDistributionFixture()
	d := seedDelivery(repo, model.DeliveryPendingQC, time.Now())

	resp, err := svc.SubmitQC(context.Background(), d.ID, dto.SubmitQCRequest{
		Status: "PASS", QCBy: "Sari", Notes: "layak kirim",
	})
	require.NoError(t, err)
	assert.Equal(t, string(model.DeliveryReadyToShip), resp.Status)
	require.NotNil(t, d.QCStatus)
	assert.Equal(t, "PASS", *d.QCStatus)
	assert.NotNil(t, d.QCDate)
}

func TestSubmitQCRejectIsTerminal(t *testing.T) {
	svc, repo := newDistributionFixture()
	d := seedDelivery(repo, model.DeliveryPendingQC, time.Now())

	_, err := svc.SubmitQC(context.Background(), d.ID, dto.SubmitQCRequest{Status: "REJECT", QCBy: "Sari"})
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryRejected, d.Status)

	// No way out of REJECTED: neither a second QC nor a shipment.
	_, err = svc.SubmitQC(context.Background(), d.ID, dto.SubmitQCRequest{Status: "PASS", QCBy: "Sari"})
	assert.ErrorIs(t, err, ErrConflict)
	_, err = svc.Ship(context.Background(), d.ID, dto.ShipItemRequest{
		SenderName: "Agus", Destination: "Sekolah 04", ReceiverName: "Rina",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestShipRequiresPassedQC(t *testing.T) {
	svc, repo := newDistributionFixture()
	d := seedDelivery(repo, model.DeliveryPendingQC, time.Now())

	_, err := svc.Ship(context.Background(), d.ID, dto.ShipItemRequest{
		SenderName: "Agus", Destination: "Sekolah 04", ReceiverName: "Rina",
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, model.DeliveryPendingQC, d.Status)
}

func TestShipRecordsShipmentMetadata(t *testing.T) {
	svc, repo := newDistributionFixture()
	d := seedDelivery(repo, model.DeliveryReadyToShip, time.Now())

	resp, err := svc.Ship(context.Background(), d.ID, dto.ShipItemRequest{
		SenderName: "Agus", Destination: "Sekolah 04", ReceiverName: "Rina",
	})
	require.NoError(t, err)
	assert.Equal(t, string(model.DeliveryShipped), resp.Status)
	require.NotNil(t, d.ShippedAt)
	assert.Equal(t, "Sekolah 04", *d.Destination)

	// SHIPPED is terminal.
	_, err = svc.Ship(context.Background(), d.ID, dto.ShipItemRequest{
		SenderName: "Agus", Destination: "Sekolah 04", ReceiverName: "Rina",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCleanupOldHonorsRetentionWindow(t *testing.T) {
	svc, repo := newDistributionFixture()
	old := seedDelivery(repo, model.DeliveryShipped, time.Now().AddDate(0, 0, -120))
	recent := seedDelivery(repo, model.DeliveryShipped, time.Now().AddDate(0, 0, -5))

	n, err := svc.CleanupOld(context.Background(), 90)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	_, ok := repo.entries[old.ID]
	assert.False(t, ok)
	_, ok = repo.entries[recent.ID]
	assert.True(t, ok)

	_, err = svc.CleanupOld(context.Background(), 0)
	assert.Error(t, err)
}
