package handler

import (
	"net/http"

	"dapurstok/internal/apierror"
	"dapurstok/internal/dto"
	"dapurstok/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReceiptHandler struct{ svc service.GoodsReceiptService }

func NewReceiptHandler(svc service.GoodsReceiptService) *ReceiptHandler {
	return &ReceiptHandler{svc: svc}
}

func (h *ReceiptHandler) Receive(c *gin.Context) {
	var req dto.ReceiveGoodsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Receive(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReceiptHandler) GetByPOID(c *gin.Context) {
	poID, err := uuid.Parse(c.Param("poId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}
	resp, err := h.svc.GetByPOID(c.Request.Context(), poID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
