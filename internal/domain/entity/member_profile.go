package entity

// MemberProfile is the 1:1 child of User holding contact details.
type MemberProfile struct {
	ProfileID   uint   `gorm:"column:profile_id;primaryKey;autoIncrement" json:"profile_id"`
	UserID      uint   `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	FirstName   string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string `gorm:"type:varchar(100);not null" json:"last_name"`
	PhoneNumber string `gorm:"type:varchar(30);not null" json:"phone_number,omitempty"`

	// Relationships
	PersonalInfo *PersonalInfo `gorm:"foreignKey:ProfileID" json:"personal_info,omitempty"`
	HealthInfo   *HealthInfo   `gorm:"foreignKey:ProfileID" json:"health_info,omitempty"`
}

func (MemberProfile) TableName() string {
	return "memberprofiles"
}
