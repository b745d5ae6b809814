package dto

import "time"

type NotificationResponse struct {
	ID      int       `json:"id"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

type ProgressDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type ProgressResponse struct {
	Title    string            `json:"title"`
	Labels   []string          `json:"labels"`
	Datasets []ProgressDataset `json:"datasets"`
}
