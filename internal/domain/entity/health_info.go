package entity

import "github.com/shopspring/decimal"

// HealthInfo stores body measurements in metric units.
type HealthInfo struct {
	HealthInfoID uint            `gorm:"column:health_info_id;primaryKey;autoIncrement" json:"health_info_id"`
	ProfileID    uint            `gorm:"column:profile_id;uniqueIndex;not null" json:"profile_id"`
	HeightCM     decimal.Decimal `gorm:"column:height_cm;type:decimal(6,2);not null" json:"height_cm"`
	WeightKG     decimal.Decimal `gorm:"column:weight_kg;type:decimal(6,2);not null" json:"weight_kg"`
	BMI          decimal.Decimal `gorm:"column:bmi;type:decimal(6,2);not null" json:"bmi"`
	HealthStatus string          `gorm:"type:varchar(30);not null" json:"health_status"`

	// Relationships
	MedicalConditions []MedicalCondition `gorm:"foreignKey:HealthInfoID" json:"medical_conditions,omitempty"`
}

func (HealthInfo) TableName() string {
	return "healthinfos"
}

// Health status constants
const (
	HealthStatusHealthy       = "Healthy"
	HealthStatusHasConditions = "Has Conditions"
)
