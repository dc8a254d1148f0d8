package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"farmsight/internal/auth"
	"farmsight/internal/estimate"
)

type EstimateHandler struct {
	Service *estimate.Service
	Logger  *zap.Logger
}

func (h *EstimateHandler) Register(r gin.IRouter) {
	group := r.Group("/estimates")
	group.POST("", h.create)
	group.GET("", h.list)
	group.GET("/:id", h.get)
	group.DELETE("/:id", h.remove)
}

type estimateRequest struct {
	CropID         string             `json:"cropId" binding:"required"`
	RegionID       string             `json:"regionId" binding:"required"`
	LandSizeAcres  decimal.Decimal    `json:"landSizeAcres"`
	IrrigationType string             `json:"irrigationType" binding:"required"`
	Costs          estimate.CostInput `json:"costs"`
}

// @Summary Compute and store a profitability estimate
// @Tags estimates
// @Accept json
// @Param request body estimateRequest true "estimate inputs"
// @Success 200 {object} apiResponse
// @Router /api/estimates [post]
func (h *EstimateHandler) create(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	result, err := h.Service.Calculate(c.Request.Context(), auth.UserID(c), estimate.Input{
		CropID:         req.CropID,
		RegionID:       req.RegionID,
		LandSizeAcres:  req.LandSizeAcres,
		IrrigationType: req.IrrigationType,
		Costs:          req.Costs,
	})
	if err != nil {
		h.fail(c, "estimate failed", err)
		return
	}
	Ok(c, result, nil)
}

// @Summary List the caller's past estimates
// @Tags estimates
// @Param limit query int false "page size"
// @Param offset query int false "offset"
// @Success 200 {object} apiResponse
// @Router /api/estimates [get]
func (h *EstimateHandler) list(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	items, total, err := h.Service.History(c.Request.Context(), auth.UserID(c), limit, offset)
	if err != nil {
		h.fail(c, "list estimates failed", err)
		return
	}
	Ok(c, items, paginationMeta(limit, offset, total))
}

// @Summary Get one of the caller's estimates
// @Tags estimates
// @Param id path string true "estimate id"
// @Success 200 {object} apiResponse
// @Router /api/estimates/{id} [get]
func (h *EstimateHandler) get(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	item, err := h.Service.Get(c.Request.Context(), auth.UserID(c), id)
	if err != nil {
		h.fail(c, "get estimate failed", err)
		return
	}
	Ok(c, item, nil)
}

// @Summary Soft-delete one of the caller's estimates
// @Tags estimates
// @Param id path string true "estimate id"
// @Success 200 {object} apiResponse
// @Router /api/estimates/{id} [delete]
func (h *EstimateHandler) remove(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	if err := h.Service.Delete(c.Request.Context(), auth.UserID(c), id); err != nil {
		h.fail(c, "delete estimate failed", err)
		return
	}
	Ok(c, gin.H{"id": id, "deleted": true}, nil)
}

func (h *EstimateHandler) fail(c *gin.Context, msg string, err error) {
	var verr *estimate.ValidationError
	if errors.As(err, &verr) {
		Error(c, http.StatusBadRequest, verr.Error(), nil)
		return
	}
	var nferr *estimate.NotFoundError
	if errors.As(err, &nferr) {
		Error(c, http.StatusNotFound, nferr.Error(), nil)
		return
	}
	if h.Logger != nil {
		h.Logger.Warn(msg, zap.Error(err))
	}
	Error(c, http.StatusBadGateway, err.Error(), nil)
}
