// Package notifier turns order events into stored notifications for the
// UI toast/badge layer. It is injected into the service instead of a
// global trigger, so either persistence backend picks it up unchanged.
package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/adinugroho/laundryhub/internal/adapter/metrics"
	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/adinugroho/laundryhub/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Emitter struct {
	repo   port.Repository
	logger *zap.Logger
}

func New(repo port.Repository, logger *zap.Logger) (*Emitter, error) {
	return &Emitter{repo: repo, logger: logger}, nil
}

var _ port.Notifier = (*Emitter)(nil)

func (e *Emitter) Notify(ctx context.Context, order *domain.Order, kind domain.NotificationKind) error {
	message := Message(order, kind)

	notification := &domain.Notification{
		ID:           uuid.NewString(),
		UserID:       order.UserID,
		OrderID:      order.ID,
		Kind:         kind,
		Message:      message,
		WhatsAppLink: BuildWhatsAppLink(order.Customer.Phone, message),
		CreatedAt:    time.Now(),
	}

	if err := e.repo.CreateNotification(ctx, notification); err != nil {
		return err
	}

	metrics.NotificationsEmitted.WithLabelValues(string(kind)).Inc()
	e.logger.Debug("notification emitted",
		zap.Uint64("order", order.ID), zap.String("kind", string(kind)))

	return nil
}

// Message builds the customer-facing text for an order event.
func Message(order *domain.Order, kind domain.NotificationKind) string {
	switch kind {
	case domain.NotificationNew:
		return fmt.Sprintf("Pesanan baru #%d untuk %s telah dibuat", order.ID, order.Customer.Name)
	case domain.NotificationProcessing:
		return fmt.Sprintf("Pesanan #%d sedang diproses", order.ID)
	case domain.NotificationCompleted:
		return fmt.Sprintf("Pesanan #%d selesai dan siap diambil", order.ID)
	case domain.NotificationPickedUp:
		return fmt.Sprintf("Pesanan #%d telah diambil", order.ID)
	default:
		return fmt.Sprintf("Pesanan #%d diperbarui", order.ID)
	}
}
