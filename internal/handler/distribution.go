package handler

import (
	"net/http"

	"dapurstok/internal/apierror"
	"dapurstok/internal/dto"
	"dapurstok/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DistributionHandler struct{ svc service.DistributionService }

func NewDistributionHandler(svc service.DistributionService) *DistributionHandler {
	return &DistributionHandler{svc: svc}
}

func (h *DistributionHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal memuat antrian distribusi"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistributionHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistributionHandler) SubmitQC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}
	var req dto.SubmitQCRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SubmitQC(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DistributionHandler) Ship(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}
	var req dto.ShipItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Ship(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
