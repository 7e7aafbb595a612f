package port

import (
	"context"

	"github.com/adinugroho/laundryhub/internal/core/domain"
)

// Notifier announces order events to the UI toast/badge layer. Emission is
// fire-and-forget: the order store logs notifier errors and never fails a
// mutation over them.
//
//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	Notify(ctx context.Context, order *domain.Order, kind domain.NotificationKind) error
}
