package ml

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModelFile(t *testing.T, model Model) string {
	t.Helper()

	data, err := json.Marshal(model)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadAndPredict(t *testing.T) {
	path := writeModelFile(t, Model{
		FeatureNames: []string{"pH", "Rainfall_mm"},
		Coefficients: []float64{2.0, 0.01},
		Intercept:    5.0,
	})

	model, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pH", "Rainfall_mm"}, model.Schema())

	got, err := model.Predict([]float64{6.0, 500})
	require.NoError(t, err)
	assert.InDelta(t, 22.0, got, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRejectsArityMismatch(t *testing.T) {
	path := writeModelFile(t, Model{
		FeatureNames: []string{"pH", "Rainfall_mm"},
		Coefficients: []float64{2.0},
		Intercept:    5.0,
	})

	_, err := Load(path)
	assert.ErrorContains(t, err, "coefficients")
}

func TestLoadRejectsEmptyModel(t *testing.T) {
	path := writeModelFile(t, Model{})

	_, err := Load(path)
	assert.ErrorContains(t, err, "no features")
}

func TestPredictRejectsWrongVectorLength(t *testing.T) {
	model := Model{
		FeatureNames: []string{"pH", "Rainfall_mm"},
		Coefficients: []float64{2.0, 0.01},
	}

	_, err := model.Predict([]float64{6.0})
	assert.ErrorContains(t, err, "model expects 2")
}
