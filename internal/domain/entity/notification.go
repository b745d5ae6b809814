package entity

import "time"

// Notification is a dashboard message. Notifications live in Redis, not in
// the relational store.
type Notification struct {
	ID      int       `json:"id"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// Notification types
const (
	NotificationTypeInfo    = "info"
	NotificationTypeAlert   = "alert"
	NotificationTypeSuccess = "success"
)
