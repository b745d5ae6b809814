package dto

import "time"

type UserResponse struct {
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
