package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmsight/internal/models"
	"farmsight/internal/repository"
)

type ReferenceHandler struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (h *ReferenceHandler) Register(r gin.IRouter) {
	r.GET("/reference-data", h.referenceData)
}

type referenceData struct {
	Crops           []models.Crop               `json:"crops"`
	Regions         []models.Region             `json:"regions"`
	IrrigationTypes []models.IrrigationModifier `json:"irrigationTypes"`
	CropRegionMap   map[string][]string         `json:"cropRegionMap"`
}

// @Summary Reference data for the estimator form
// @Tags reference
// @Success 200 {object} apiResponse
// @Router /api/reference-data [get]
func (h *ReferenceHandler) referenceData(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	ctx := c.Request.Context()

	crops, err := h.Repo.ListActiveCrops(ctx)
	if err != nil {
		h.fail(c, "list crops failed", err)
		return
	}
	regions, err := h.Repo.ListActiveRegions(ctx)
	if err != nil {
		h.fail(c, "list regions failed", err)
		return
	}
	modifiers, err := h.Repo.ListActiveIrrigationModifiers(ctx)
	if err != nil {
		h.fail(c, "list irrigation modifiers failed", err)
		return
	}
	coverage, err := h.Repo.ListActiveYieldCoverage(ctx)
	if err != nil {
		h.fail(c, "list yield coverage failed", err)
		return
	}

	cropRegions := make(map[string][]string, len(crops))
	for _, row := range coverage {
		cropRegions[row.CropID] = append(cropRegions[row.CropID], row.RegionID)
	}

	Ok(c, referenceData{
		Crops:           crops,
		Regions:         regions,
		IrrigationTypes: modifiers,
		CropRegionMap:   cropRegions,
	}, nil)
}

func (h *ReferenceHandler) fail(c *gin.Context, msg string, err error) {
	if h.Logger != nil {
		h.Logger.Warn(msg, zap.Error(err))
	}
	Error(c, http.StatusBadGateway, err.Error(), nil)
}
