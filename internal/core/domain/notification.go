package domain

import (
	"strings"
	"time"
)

// NotificationKind is the toast/badge category shown by the UI layer.
type NotificationKind string

const (
	NotificationNew        NotificationKind = "new"
	NotificationProcessing NotificationKind = "processing"
	NotificationCompleted  NotificationKind = "completed"
	NotificationPickedUp   NotificationKind = "picked_up"
)

type Notification struct {
	ID           string
	UserID       uint64
	OrderID      uint64
	Kind         NotificationKind
	Message      string
	WhatsAppLink string
	CreatedAt    time.Time
	Read         bool
}

// statusKinds maps every recognized status spelling, English and
// Indonesian, to a notification kind. Lookup is case-insensitive.
var statusKinds = map[string]NotificationKind{
	"new":     NotificationNew,
	"pending": NotificationNew,
	"baru":    NotificationNew,

	"processing":      NotificationProcessing,
	"diproses":        NotificationProcessing,
	"sedang diproses": NotificationProcessing,

	"completed": NotificationCompleted,
	"ready":     NotificationCompleted,
	"selesai":   NotificationCompleted,
	"siap":      NotificationCompleted,

	"picked_up": NotificationPickedUp,
	"delivered": NotificationPickedUp,
	"diambil":   NotificationPickedUp,
}

var kindStatuses = map[NotificationKind]OrderStatus{
	NotificationNew:        OrderStatusNew,
	NotificationProcessing: OrderStatusProcessing,
	NotificationCompleted:  OrderStatusCompleted,
	NotificationPickedUp:   OrderStatusPickedUp,
}

// NotificationKindForStatus maps a status spelling to its notification
// kind. The second result is false for unrecognized input, in which case
// no notification should be emitted.
func NotificationKindForStatus(status string) (NotificationKind, bool) {
	kind, ok := statusKinds[strings.ToLower(strings.TrimSpace(status))]
	return kind, ok
}

// CanonicalStatus normalizes any recognized synonym to the canonical
// stored spelling.
func CanonicalStatus(status string) (OrderStatus, bool) {
	kind, ok := NotificationKindForStatus(status)
	if !ok {
		return "", false
	}
	return kindStatuses[kind], true
}
