package handler

import (
	"net/http"

	"dapurstok/internal/apierror"
	"dapurstok/internal/dto"
	"dapurstok/internal/infra"
	"dapurstok/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseOrderHandler struct {
	svc  service.PurchaseOrderService
	docs *infra.DocumentStore
}

func NewPurchaseOrderHandler(svc service.PurchaseOrderService, docs *infra.DocumentStore) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{svc: svc, docs: docs}
}

func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req dto.CreatePORequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Generate splits a purchase request into per-supplier POs.
func (h *PurchaseOrderHandler) Generate(c *gin.Context) {
	var req dto.GeneratePOsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GenerateFromRequest(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var filter dto.POFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal memuat daftar PO"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
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

// ServePDF streams the rendered PO sheet from the document archive.
func (h *PurchaseOrderHandler) ServePDF(c *gin.Context) {
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
	if resp.DocumentPath == nil {
		c.JSON(http.StatusNotFound, apierror.New("Dokumen PO belum tersedia"))
		return
	}
	c.File(h.docs.Resolve(*resp.DocumentPath))
}

func (h *PurchaseOrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}
	var req dto.UpdatePOStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PurchaseOrderHandler) UpdateItems(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}
	var req dto.UpdatePOItemsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateItems(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
