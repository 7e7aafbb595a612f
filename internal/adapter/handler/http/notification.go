package http

import (
	"net/http"
	"time"

	"github.com/adinugroho/laundryhub/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	Handler
	service port.Service
}

func NewNotificationHandler(service port.Service, logger *zap.Logger) (*NotificationHandler, error) {
	return &NotificationHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type notificationResp struct {
	ID           string    `json:"id"`
	OrderID      uint64    `json:"order_id"`
	Kind         string    `json:"kind"`
	Message      string    `json:"message"`
	WhatsAppLink string    `json:"whatsapp_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	Read         bool      `json:"read"`
}

func (nh *NotificationHandler) ListNotifications(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := nh.service.ListNotifications(ctx, userID)
	if err != nil {
		nh.handleError(ctx, err)
		return
	}

	unread := 0
	result := make([]notificationResp, 0, len(list))
	for _, n := range list {
		if !n.Read {
			unread++
		}
		result = append(result, notificationResp{
			ID:           n.ID,
			OrderID:      n.OrderID,
			Kind:         string(n.Kind),
			Message:      n.Message,
			WhatsAppLink: n.WhatsAppLink,
			CreatedAt:    n.CreatedAt,
			Read:         n.Read,
		})
	}

	nh.handleSuccess(ctx, gin.H{
		"notifications": result,
		"unread":        unread,
	})
}

func (nh *NotificationHandler) MarkNotificationsRead(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	if err := nh.service.MarkNotificationsRead(ctx, userID); err != nil {
		nh.handleError(ctx, err)
		return
	}

	nh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
