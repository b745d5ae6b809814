// Package bmi converts body measurements to metric units and derives the
// body mass index and its descriptors.
package bmi

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"
)

type HeightUnit string

const (
	Centimeters HeightUnit = "cm"
	Meters      HeightUnit = "m"
	Inches      HeightUnit = "in"
	Feet        HeightUnit = "ft"
)

const (
	poundsToKg   = 0.453592
	kgToPounds   = 2.20462
	inchesToM    = 0.0254
	feetToM      = 0.3048
	healthyMin   = 18.5
	healthyMax   = 25.0
	overweight   = 30.0
	HealthyRange = "18.5 – 25 kg/m²"
)

// Category names
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// Result carries the BMI and the display strings derived from it.
type Result struct {
	BMI                float64 `json:"-"`
	Value              string  `json:"bmi"`
	Category           string  `json:"category"`
	HealthyRange       string  `json:"healthy_range"`
	HealthyWeightRange string  `json:"healthy_weight_range"`
	BMIPrime           string  `json:"bmi_prime"`
	PonderalIndex      string  `json:"ponderal_index"`
}

// ParseWeightUnit falls back to kilograms for anything unrecognized.
func ParseWeightUnit(s string) WeightUnit {
	if WeightUnit(s) == Pounds {
		return Pounds
	}
	return Kilograms
}

// ParseHeightUnit falls back to centimeters for anything unrecognized.
func ParseHeightUnit(s string) HeightUnit {
	switch u := HeightUnit(s); u {
	case Meters, Inches, Feet:
		return u
	default:
		return Centimeters
	}
}

func ToKilograms(weight float64, unit WeightUnit) float64 {
	if unit == Pounds {
		return weight * poundsToKg
	}
	return weight
}

func ToMeters(height float64, unit HeightUnit) float64 {
	switch unit {
	case Centimeters:
		return height / 100
	case Inches:
		return height * inchesToM
	case Feet:
		return height * feetToM
	default:
		return height
	}
}

// Category uses strict upper bounds: 25.0 is Overweight, not Normal.
func Category(bmi float64) string {
	switch {
	case bmi < healthyMin:
		return CategoryUnderweight
	case bmi < healthyMax:
		return CategoryNormal
	case bmi < overweight:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// Calculate returns false when the converted weight or height is not positive.
func Calculate(weight float64, weightUnit WeightUnit, height float64, heightUnit HeightUnit) (Result, bool) {
	kg := ToKilograms(weight, weightUnit)
	m := ToMeters(height, heightUnit)
	if !(kg > 0) || !(m > 0) || math.IsInf(kg, 0) || math.IsInf(m, 0) {
		return Result{}, false
	}

	value := kg / (m * m)
	minKg := healthyMin * m * m
	maxKg := healthyMax * m * m

	weightRange := fmt.Sprintf("%s kg - %s kg", fixed(minKg, 1), fixed(maxKg, 1))
	if weightUnit == Pounds {
		weightRange = fmt.Sprintf("%s lbs - %s lbs", fixed(minKg*kgToPounds, 1), fixed(maxKg*kgToPounds, 1))
	}

	return Result{
		BMI:                value,
		Value:              fixed(value, 2),
		Category:           Category(value),
		HealthyRange:       HealthyRange,
		HealthyWeightRange: weightRange,
		BMIPrime:           fixed(value/healthyMax, 2),
		PonderalIndex:      fixed(kg/(m*m*m), 1) + " kg/m³",
	}, true
}

// Round rounds v to places decimal digits, as stored in the healthinfos table.
func Round(v float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(places)
}

func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
