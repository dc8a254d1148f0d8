package estimate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"farmsight/internal/models"
	"farmsight/internal/repository"
)

// Service runs the estimate pipeline: reference lookups, pure computation,
// one estimate write. Each call is a single all-or-nothing pass; all lookups
// happen before the write, so a failed lookup leaves no partial record. There
// is no caching, no retrying and no internal concurrency.
type Service struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

// Calculate turns the farmer's inputs into a profitability and risk estimate,
// persists the immutable record owned by userID, and returns the result.
func (s *Service) Calculate(ctx context.Context, userID string, in Input) (*Result, error) {
	if err := validate(userID, in); err != nil {
		return nil, err
	}

	profile, err := s.Repo.FindActiveYieldProfile(ctx, in.CropID, in.RegionID)
	if err != nil {
		return nil, fmt.Errorf("yield profile lookup: %w", err)
	}
	if profile == nil {
		return nil, &NotFoundError{Resource: "yield profile", Key: in.CropID + "/" + in.RegionID}
	}

	modifier, err := s.Repo.FindActiveIrrigationModifier(ctx, in.IrrigationType)
	if err != nil {
		return nil, fmt.Errorf("irrigation modifier lookup: %w", err)
	}
	if modifier == nil {
		return nil, &NotFoundError{Resource: "irrigation modifier", Key: in.IrrigationType}
	}

	expectedYield := ExpectedYield(profile.BaseYieldPerAcre, in.LandSizeAcres, modifier.YieldMultiplier)

	prices, err := s.Repo.FindActivePriceData(ctx, in.CropID)
	if err != nil {
		return nil, fmt.Errorf("price data lookup: %w", err)
	}
	if prices == nil {
		return nil, &NotFoundError{Resource: "price data", Key: in.CropID}
	}

	selectedPrice := SelectPrice(prices.MSP, prices.AvgMarketPrice)
	revenue := Revenue(expectedYield, selectedPrice)
	totalCost := in.Costs.Total()
	netProfit := NetProfit(revenue, totalCost)
	riskScore, breakdown := ScoreRisk(RiskInput{
		IrrigationType:   in.IrrigationType,
		ReliabilityScore: modifier.ReliabilityScore,
		YieldVariance:    profile.YieldVariance,
		MSP:              prices.MSP,
		AvgMarketPrice:   prices.AvgMarketPrice,
	})

	result := &Result{
		ExpectedYield: expectedYield,
		SelectedPrice: selectedPrice,
		Revenue:       revenue,
		TotalCost:     totalCost,
		NetProfit:     netProfit,
		RiskScore:     riskScore,
		RiskBreakdown: breakdown,
	}

	record, err := buildRecord(userID, in, result)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.CreateEstimate(ctx, record); err != nil {
		return nil, fmt.Errorf("persist estimate: %w", err)
	}

	if s.Logger != nil {
		s.Logger.Info("estimate computed",
			zap.String("user_id", userID),
			zap.String("crop_id", in.CropID),
			zap.String("region_id", in.RegionID),
			zap.String("irrigation_type", in.IrrigationType),
			zap.String("net_profit", netProfit.String()),
			zap.Int("risk_score", riskScore),
		)
	}
	return result, nil
}

// History lists the caller's past estimates, newest first. Soft-deleted
// records are excluded.
func (s *Service) History(ctx context.Context, userID string, limit, offset int) ([]models.Estimate, int64, error) {
	status := models.StatusActive
	params := repository.ListEstimatesParams{Limit: limit, Offset: offset, Status: &status}
	items, err := s.Repo.ListEstimatesByUser(ctx, userID, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Repo.CountEstimatesByUser(ctx, userID, params)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Get fetches one estimate owned by userID. Records of other users and
// soft-deleted records are reported as not found rather than forbidden, so
// existence of foreign estimates never leaks.
func (s *Service) Get(ctx context.Context, userID, estimateID string) (*models.Estimate, error) {
	item, err := s.Repo.GetEstimateByID(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("estimate lookup: %w", err)
	}
	if item == nil || item.UserID != userID || item.Status == models.StatusDeleted {
		return nil, &NotFoundError{Resource: "estimate", Key: estimateID}
	}
	return item, nil
}

// Delete soft-deletes an estimate owned by userID. The record body is never
// touched, only its status flag.
func (s *Service) Delete(ctx context.Context, userID, estimateID string) error {
	affected, err := s.Repo.SetEstimateStatus(ctx, estimateID, userID, models.StatusDeleted)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Resource: "estimate", Key: estimateID}
	}
	return nil
}

func validate(userID string, in Input) error {
	if strings.TrimSpace(userID) == "" {
		return &ValidationError{Field: "userId", Reason: "required"}
	}
	if strings.TrimSpace(in.CropID) == "" {
		return &ValidationError{Field: "cropId", Reason: "required"}
	}
	if strings.TrimSpace(in.RegionID) == "" {
		return &ValidationError{Field: "regionId", Reason: "required"}
	}
	if strings.TrimSpace(in.IrrigationType) == "" {
		return &ValidationError{Field: "irrigationType", Reason: "required"}
	}
	if !in.LandSizeAcres.IsPositive() {
		return &ValidationError{Field: "landSizeAcres", Reason: "must be positive"}
	}
	for field, v := range map[string]decimal.Decimal{
		"seeds":         in.Costs.Seeds,
		"fertilizer":    in.Costs.Fertilizer,
		"pesticides":    in.Costs.Pesticides,
		"labor":         in.Costs.Labor,
		"irrigation":    in.Costs.Irrigation,
		"equipment":     in.Costs.Equipment,
		"transport":     in.Costs.Transport,
		"miscellaneous": in.Costs.Miscellaneous,
	} {
		if v.IsNegative() {
			return &ValidationError{Field: "costs." + field, Reason: "must not be negative"}
		}
	}
	return nil
}

func buildRecord(userID string, in Input, res *Result) (*models.Estimate, error) {
	costsJSON, err := json.Marshal(in.Costs)
	if err != nil {
		return nil, fmt.Errorf("marshal costs: %w", err)
	}
	breakdownJSON, err := json.Marshal(res.RiskBreakdown)
	if err != nil {
		return nil, fmt.Errorf("marshal risk breakdown: %w", err)
	}
	return &models.Estimate{
		ID:             uuid.NewString(),
		UserID:         userID,
		CropID:         in.CropID,
		RegionID:       in.RegionID,
		LandSizeAcres:  in.LandSizeAcres,
		IrrigationType: in.IrrigationType,
		Costs:          costsJSON,
		ExpectedYield:  res.ExpectedYield,
		SelectedPrice:  res.SelectedPrice,
		Revenue:        res.Revenue,
		TotalCost:      res.TotalCost,
		NetProfit:      res.NetProfit,
		RiskScore:      res.RiskScore,
		RiskBreakdown:  breakdownJSON,
		Status:         models.StatusActive,
	}, nil
}
