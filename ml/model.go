package ml

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Model is a trained linear regression artifact. It is loaded once at
// startup and never mutated afterwards, so it is safe for concurrent use;
// picking up a newly trained artifact requires a restart.
type Model struct {
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Load reads a model artifact from path and validates its shape.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model: %w", err)
	}

	if len(model.FeatureNames) == 0 {
		return nil, fmt.Errorf("model has no features")
	}
	if len(model.Coefficients) != len(model.FeatureNames) {
		return nil, fmt.Errorf("model has %d coefficients for %d features",
			len(model.Coefficients), len(model.FeatureNames))
	}

	log.Info().Str("path", path).Int("features", len(model.FeatureNames)).Msg("Loaded model")
	return &model, nil
}

// Schema returns the ordered feature columns the model was trained on.
func (m *Model) Schema() []string {
	return m.FeatureNames
}

// Predict computes the regression output for one feature vector. The vector
// must follow Schema() exactly.
func (m *Model) Predict(vector []float64) (float64, error) {
	if len(vector) != len(m.Coefficients) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d",
			len(vector), len(m.Coefficients))
	}

	score := m.Intercept
	for i, coef := range m.Coefficients {
		score += coef * vector[i]
	}
	return score, nil
}
