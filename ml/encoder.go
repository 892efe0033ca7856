package ml

import (
	"github.com/Patricia-Kubende/MaizeMate-Backend/models"
)

// Encode turns a raw crop record into the feature vector the model expects.
// Categorical fields one-hot expand into "<field>_<value>" columns; numeric
// fields pass through under their own column names. The expansion is then
// projected onto schema: columns the record did not produce are 0, and
// columns the schema does not know (a categorical value never seen during
// training) are silently dropped.
func Encode(rec models.CropRecord, schema []string) []float64 {
	expanded := make(map[string]float64)

	if rec.SoilType != nil {
		expanded["Soil_Type_"+*rec.SoilType] = 1
	}
	if rec.SeedVariety != nil {
		expanded["Seed_Variety_"+*rec.SeedVariety] = 1
	}
	if rec.PlantingDate != nil {
		expanded["Planting_Date_"+*rec.PlantingDate] = 1
	}
	if rec.FertilizerType != nil {
		expanded["Fertilizer_Type_"+*rec.FertilizerType] = 1
	}

	if rec.PH != nil {
		expanded["pH"] = *rec.PH
	}
	if rec.RainfallMM != nil {
		expanded["Rainfall_mm"] = *rec.RainfallMM
	}
	if rec.TemperatureC != nil {
		expanded["Temperature_C"] = *rec.TemperatureC
	}
	if rec.HumidityPct != nil {
		expanded["Humidity_%"] = *rec.HumidityPct
	}

	vector := make([]float64, len(schema))
	for i, column := range schema {
		vector[i] = expanded[column]
	}
	return vector
}
