package handler

import (
	"net/http"

	"dapurstok/internal/apierror"
	"dapurstok/internal/dto"
	"dapurstok/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// CreateGoodsIssue books an outbound withdrawal (kitchen usage, write-off).
func (h *InventoryHandler) CreateGoodsIssue(c *gin.Context) {
	var req dto.GoodsIssueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.CreateGoodsIssue(c.Request.Context(), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Pengeluaran barang tercatat"})
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var filter dto.MovementFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListMovements(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal memuat riwayat stok"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
