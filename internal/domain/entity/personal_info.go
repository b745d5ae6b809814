package entity

import "gorm.io/datatypes"

// PersonalInfo holds demographic and fitness preference fields for a profile.
type PersonalInfo struct {
	ProfileID   uint            `gorm:"column:profile_id;primaryKey;autoIncrement:false" json:"profile_id"`
	Gender      string          `gorm:"type:varchar(20);not null" json:"gender,omitempty"`
	Nationality string          `gorm:"type:varchar(100);not null" json:"nationality,omitempty"`
	BirthDate   *datatypes.Date `gorm:"type:date" json:"birth_date,omitempty"`
	FitnessType string          `gorm:"type:varchar(100);not null" json:"fitness_type,omitempty"`
	FitnessGoal string          `gorm:"type:varchar(255);not null" json:"fitness_goal,omitempty"`
}

func (PersonalInfo) TableName() string {
	return "personalinfos"
}
