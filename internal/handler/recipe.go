package handler

import (
	"net/http"

	"dapurstok/internal/apierror"
	"dapurstok/internal/dto"
	"dapurstok/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecipeHandler struct{ svc service.RecipeService }

func NewRecipeHandler(svc service.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

// Extract parses material-request lines into cook batches.
func (h *RecipeHandler) Extract(c *gin.Context) {
	var req dto.ExtractRecipesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ExtractAndSave(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RecipeHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Gagal memuat daftar resep"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) GetByID(c *gin.Context) {
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

func (h *RecipeHandler) Cook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID tidak valid"))
		return
	}
	var req dto.CookMenuRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Cook(c.Request.Context(), id, req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu dimasak, menunggu QC"})
}
