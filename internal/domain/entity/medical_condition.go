package entity

import "gorm.io/datatypes"

type MedicalCondition struct {
	MedicalConditionID   uint            `gorm:"column:medical_condition_id;primaryKey;autoIncrement" json:"medical_condition_id"`
	HealthInfoID         uint            `gorm:"column:health_info_id;index;not null" json:"health_info_id"`
	ConditionName        string          `gorm:"type:varchar(255);not null" json:"condition_name"`
	ConditionDescription string          `gorm:"type:text;not null" json:"condition_description,omitempty"`
	StartDate            *datatypes.Date `gorm:"type:date" json:"start_date,omitempty"`
	EndDate              *datatypes.Date `gorm:"type:date" json:"end_date,omitempty"`
}

func (MedicalCondition) TableName() string {
	return "medicalconditions"
}
