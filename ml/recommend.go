package ml

import (
	"strings"

	"github.com/Patricia-Kubende/MaizeMate-Backend/models"
)

// Yield categories (bags per acre).
const (
	CategoryHigh     = "High Yield"
	CategoryModerate = "Moderate Yield"
	CategoryLow      = "Low Yield"
)

// Derive maps a predicted yield and the raw record to a category and a
// composed recommendation. The threshold checks use the raw predicted value;
// the six advisory checks below all run every time, in this order, and each
// appends independently of the others.
func Derive(predictedYield float64, rec models.CropRecord) (string, string) {
	var category string
	var sb strings.Builder

	switch {
	case predictedYield > 30:
		category = CategoryHigh
		sb.WriteString("✅ Maintain current farming practices.")
	case predictedYield > 20:
		category = CategoryModerate
		sb.WriteString("⚠️ Consider improving soil quality and irrigation.")
	default:
		category = CategoryLow
		sb.WriteString("❌ Apply more fertilizer and optimize planting date.")
	}

	if rec.SoilType != nil && (*rec.SoilType == "Sandy" || *rec.SoilType == "Silt") {
		sb.WriteString(" 🌱 Sandy/Silt soil may require more organic matter for better water retention.")
	}

	// Defaults: neutral pH, no rainfall, full humidity when absent.
	if valueOr(rec.PH, 7.0) < 5.5 {
		sb.WriteString(" 🔬 The soil is too acidic! Consider adding lime to increase pH.")
	}

	if valueOr(rec.RainfallMM, 0) < 400 {
		sb.WriteString(" ☔️ Rainfall is low! Implement irrigation techniques for better results.")
	}

	if valueOr(rec.HumidityPct, 100) < 40 {
		sb.WriteString(" 💦 Low humidity detected! Monitor moisture levels to prevent crop stress.")
	}

	if rec.FertilizerType != nil && *rec.FertilizerType == "Organic" {
		sb.WriteString(" 🌿 Organic fertilizer is good for sustainability but may take longer to release nutrients.")
	}

	if rec.PlantingDate != nil && *rec.PlantingDate == "March" {
		sb.WriteString(" 📅 Early planting may expose crops to dry conditions. Monitor weather patterns.")
	}

	return category, sb.String()
}

func valueOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
