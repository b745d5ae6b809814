package converter

import (
	"gym-portal/internal/delivery/dto"
	"gym-portal/internal/domain/entity"
)

func NotificationToResponse(n entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:      n.ID,
		Type:    n.Type,
		Message: n.Message,
		Date:    n.Date,
	}
}

func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = NotificationToResponse(n)
	}
	return responses
}
