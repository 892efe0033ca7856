package models

import "time"

// CropRecord is one prediction request as it arrives on the wire. Every field
// is optional at this level; absent fields stay nil so downstream code can
// tell "missing" from a genuine zero. JSON names match the column names the
// model was trained against.
type CropRecord struct {
	SoilType       *string  `json:"Soil_Type,omitempty"`
	PH             *float64 `json:"pH,omitempty"`
	SeedVariety    *string  `json:"Seed_Variety,omitempty"`
	RainfallMM     *float64 `json:"Rainfall_mm,omitempty"`
	TemperatureC   *float64 `json:"Temperature_C,omitempty"`
	HumidityPct    *float64 `json:"Humidity_%,omitempty"`
	PlantingDate   *string  `json:"Planting_Date,omitempty"`
	FertilizerType *string  `json:"Fertilizer_Type,omitempty"`
}

// Prediction is one stored prediction: the raw input columns verbatim plus
// the derived outputs. Rows are append-only.
type Prediction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	SoilType        string    `gorm:"not null" json:"soil_type"`
	PH              float64   `gorm:"not null" json:"ph"`
	SeedVariety     string    `gorm:"not null" json:"seed_variety"`
	RainfallMM      float64   `gorm:"not null" json:"rainfall_mm"`
	TemperatureC    float64   `gorm:"not null" json:"temperature_c"`
	HumidityPct     float64   `gorm:"column:humidity_percent;not null" json:"humidity_percent"`
	PlantingDate    string    `gorm:"not null" json:"planting_date"`
	FertilizerType  string    `gorm:"not null" json:"fertilizer_type"`
	PredictedYield  float64   `gorm:"not null" json:"predicted_yield"`
	ConfidenceRange string    `gorm:"not null" json:"confidence_range"`
	Category        string    `gorm:"not null" json:"category"`
	Recommendation  string    `gorm:"not null" json:"recommendation"`
	CreatedAt       time.Time `json:"created_at"`
}

type PredictionResult struct {
	PredictedYield  float64    `json:"predicted_yield"`
	LowerBound      float64    `json:"lower_bound"`
	UpperBound      float64    `json:"upper_bound"`
	ConfidenceRange string     `json:"confidence_range"`
	Category        string     `json:"category"`
	Recommendation  string     `json:"recommendation"`
	InputEcho       CropRecord `json:"input_echo"`
}
