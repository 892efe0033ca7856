package services

import (
	"context"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/Patricia-Kubende/MaizeMate-Backend/ml"
	"github.com/Patricia-Kubende/MaizeMate-Backend/models"
)

type PredictionService interface {
	Predict(ctx context.Context, rec models.CropRecord) (*models.PredictionResult, error)
}

type predictionService struct {
	db    *gorm.DB
	model *ml.Model
}

func NewPredictionService(db *gorm.DB, model *ml.Model) PredictionService {
	return &predictionService{db: db, model: model}
}

// Predict runs the full pipeline: encode the raw record into the model's
// feature schema, run inference, derive bounds/category/recommendation, and
// append one prediction row. The stored row keeps the raw input verbatim;
// the one-hot vector is ephemeral. Nothing is written unless every step
// before persistence succeeded.
func (s *predictionService) Predict(ctx context.Context, rec models.CropRecord) (*models.PredictionResult, error) {
	// All eight raw columns are required for the stored row, so reject
	// incomplete records before doing any work.
	if err := validateRecord(rec); err != nil {
		return nil, err
	}

	vector := ml.Encode(rec, s.model.Schema())

	predictedYield, err := s.model.Predict(vector)
	if err != nil {
		return nil, err
	}

	// Confidence range (±10%)
	lowerBound := round2(predictedYield * 0.9)
	upperBound := round2(predictedYield * 1.1)
	confidenceRange := fmt.Sprintf("%v - %v bags per acre", lowerBound, upperBound)

	category, recommendation := ml.Derive(predictedYield, rec)

	row := models.Prediction{
		SoilType:        *rec.SoilType,
		PH:              *rec.PH,
		SeedVariety:     *rec.SeedVariety,
		RainfallMM:      *rec.RainfallMM,
		TemperatureC:    *rec.TemperatureC,
		HumidityPct:     *rec.HumidityPct,
		PlantingDate:    *rec.PlantingDate,
		FertilizerType:  *rec.FertilizerType,
		PredictedYield:  predictedYield,
		ConfidenceRange: confidenceRange,
		Category:        category,
		Recommendation:  recommendation,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to store prediction: %w", err)
	}

	return &models.PredictionResult{
		PredictedYield:  round2(predictedYield),
		LowerBound:      lowerBound,
		UpperBound:      upperBound,
		ConfidenceRange: confidenceRange,
		Category:        category,
		Recommendation:  recommendation,
		InputEcho:       rec,
	}, nil
}

func validateRecord(rec models.CropRecord) error {
	missing := func(name string) error {
		return fmt.Errorf("missing required field: %s", name)
	}

	switch {
	case rec.SoilType == nil:
		return missing("Soil_Type")
	case rec.PH == nil:
		return missing("pH")
	case rec.SeedVariety == nil:
		return missing("Seed_Variety")
	case rec.RainfallMM == nil:
		return missing("Rainfall_mm")
	case rec.TemperatureC == nil:
		return missing("Temperature_C")
	case rec.HumidityPct == nil:
		return missing("Humidity_%")
	case rec.PlantingDate == nil:
		return missing("Planting_Date")
	case rec.FertilizerType == nil:
		return missing("Fertilizer_Type")
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
