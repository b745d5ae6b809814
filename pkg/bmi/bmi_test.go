package bmi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMetric(t *testing.T) {
	res, ok := Calculate(70, Kilograms, 175, Centimeters)
	require.True(t, ok)

	assert.Equal(t, "22.86", res.Value)
	assert.Equal(t, CategoryNormal, res.Category)
	assert.Equal(t, HealthyRange, res.HealthyRange)
	assert.Equal(t, "56.7 kg - 76.6 kg", res.HealthyWeightRange)
	assert.Equal(t, "0.91", res.BMIPrime)
	assert.Equal(t, "13.1 kg/m³", res.PonderalIndex)
}

func TestCalculateEqualsMetricFormulaInEveryUnit(t *testing.T) {
	tests := []struct {
		name       string
		weight     float64
		weightUnit WeightUnit
		height     float64
		heightUnit HeightUnit
		kg, m      float64
	}{
		{"kg/cm", 70, Kilograms, 175, Centimeters, 70, 1.75},
		{"kg/m", 70, Kilograms, 1.75, Meters, 70, 1.75},
		{"lbs/in", 154, Pounds, 69, Inches, 154 * 0.453592, 69 * 0.0254},
		{"lbs/ft", 200, Pounds, 6, Feet, 200 * 0.453592, 6 * 0.3048},
		{"kg/in", 90, Kilograms, 70, Inches, 90, 70 * 0.0254},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := Calculate(tt.weight, tt.weightUnit, tt.height, tt.heightUnit)
			require.True(t, ok)
			assert.InDelta(t, tt.kg/(tt.m*tt.m), res.BMI, 1e-9)
		})
	}
}

func TestCalculatePoundsWeightRange(t *testing.T) {
	res, ok := Calculate(154, Pounds, 175, Centimeters)
	require.True(t, ok)
	assert.Equal(t, "124.9 lbs - 168.8 lbs", res.HealthyWeightRange)
}

func TestCalculateRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name           string
		weight, height float64
	}{
		{"zero weight", 0, 175},
		{"zero height", 70, 0},
		{"negative weight", -70, 175},
		{"negative height", 70, -1},
		{"NaN", math.NaN(), 175},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Calculate(tt.weight, Kilograms, tt.height, Centimeters)
			assert.False(t, ok)
		})
	}
}

func TestCategoryBoundariesAreStrict(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{18.49, CategoryUnderweight},
		{18.5, CategoryNormal},
		{24.99, CategoryNormal},
		{25, CategoryOverweight},
		{29.99, CategoryOverweight},
		{30, CategoryObese},
		{45, CategoryObese},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Category(tt.bmi), "bmi %v", tt.bmi)
	}
}

func TestParseUnits(t *testing.T) {
	assert.Equal(t, Pounds, ParseWeightUnit("lbs"))
	assert.Equal(t, Kilograms, ParseWeightUnit(""))
	assert.Equal(t, Kilograms, ParseWeightUnit("stone"))
	assert.Equal(t, Feet, ParseHeightUnit("ft"))
	assert.Equal(t, Meters, ParseHeightUnit("m"))
	assert.Equal(t, Centimeters, ParseHeightUnit(""))
}

func TestRound(t *testing.T) {
	assert.Equal(t, "22.86", Round(70/(1.75*1.75), 2).String())
}
