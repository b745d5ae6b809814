package entity

import "time"

// User is the login identity created once per successful signup.
type User struct {
	UserID         uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserName       string    `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	Email          string    `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHashed string    `gorm:"column:password_hashed;type:text;not null" json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	MemberProfile *MemberProfile `gorm:"foreignKey:UserID" json:"member_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}
